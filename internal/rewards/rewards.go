// Package rewards derives the gamified rewards state (points, streaks, tax
// incentives, badges) for a household identity.
package rewards

import (
	"math"
	"math/rand"
	"time"

	"github.com/adityab24840/SwachItHackathon/internal/model"
	"github.com/adityab24840/SwachItHackathon/internal/synth"
)

// Tax incentive caps and divisors. Each incentive is min(cap, points/divisor):
// monotone in points, saturating at the cap.
const (
	propertyTaxCap     = 10.0
	propertyTaxDivisor = 20.0
	swmCap             = 15.0
	swmDivisor         = 15.0
	waterBillCap       = 7.5
	waterBillDivisor   = 25.0
)

// CertificateThreshold is the points floor for the Swachhata certificate.
const CertificateThreshold = 100

// Compute derives the full reward profile for an identity. Points are drawn
// from [75, 180] using the identity-seeded generator, so the same key always
// yields the same profile within a run and across runs.
func Compute(key string) model.RewardProfile {
	r := synth.NewRand("rewards:" + key)
	return compute(r, synthPoints(r), time.Now())
}

// ComputeWithPoints derives the profile for a known points balance, e.g. the
// persisted rewards row. Streaks, history, and badges still come from the
// identity seed.
func ComputeWithPoints(key string, points int) model.RewardProfile {
	r := synth.NewRand("rewards:" + key)
	synthPoints(r) // keep the draw sequence aligned with Compute
	return compute(r, points, time.Now())
}

func synthPoints(r *rand.Rand) int {
	return 75 + r.Intn(106) // [75, 180]
}

func compute(r *rand.Rand, points int, now time.Time) model.RewardProfile {
	current := 3 + r.Intn(12) // [3, 14]
	longest := 7 + r.Intn(15) // [7, 21]
	if current > longest {
		longest = current
	}

	p := model.RewardProfile{
		Points:               points,
		CurrentStreak:        current,
		LongestStreak:        longest,
		PropertyTaxRebatePct: incentive(points, propertyTaxCap, propertyTaxDivisor),
		SWMDiscountPct:       incentive(points, swmCap, swmDivisor),
		WaterBillDiscountPct: incentive(points, waterBillCap, waterBillDivisor),
		CertificateEligible:  points >= CertificateThreshold,
		NextMilestone:        nextMilestone(points),
		History:              history(r, now),
		Achievements:         achievements(r, points),
	}
	return p
}

func incentive(points int, limit, divisor float64) float64 {
	return math.Min(limit, float64(points)/divisor)
}

func nextMilestone(points int) int {
	switch {
	case points < 100:
		return 100
	case points < 200:
		return 200
	default:
		return 300
	}
}

// history draws the trailing six months of point totals, oldest first.
func history(r *rand.Rand, now time.Time) []model.MonthPoints {
	out := make([]model.MonthPoints, 0, 6)
	for i := 5; i >= 0; i-- {
		out = append(out, model.MonthPoints{
			Month:  now.AddDate(0, -i, 0).Format("Jan"),
			Points: 50 + r.Intn(101), // [50, 150]
		})
	}
	return out
}

// achievements evaluates the fixed badge list. Clean Street Leader is drawn
// from the identity-seeded generator rather than an unseeded coin flip, so
// badge state is stable per identity across calls.
func achievements(r *rand.Rand, points int) []model.Achievement {
	composter := points >= CertificateThreshold
	leader := r.Intn(2) == 1

	badges := []model.Achievement{
		{
			Name:        "Waste Warrior",
			Description: "Maintained 90%+ waste segregation compliance for a month",
			Earned:      true,
			EarnedOn:    "2025-03-15",
		},
		{
			Name:        "Compost Champion",
			Description: "Successfully implemented home composting",
			Earned:      composter,
		},
		{
			Name:        "Clean Street Leader",
			Description: "Organized community clean-up drive",
			Earned:      leader,
		},
		{
			Name:        "Zero Waste Household",
			Description: "Achieved near-zero waste in household for 3 consecutive months",
			Earned:      false,
		},
	}
	if composter {
		badges[1].EarnedOn = "2025-04-01"
	}
	if leader {
		badges[2].EarnedOn = "2025-02-22"
	}
	return badges
}
