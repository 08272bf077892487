// Package rank assigns comparative cleanliness scores across the fixed set
// of named wards.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/adityab24840/SwachItHackathon/internal/model"
	"github.com/adityab24840/SwachItHackathon/internal/synth"
)

var bengaluruWards = []string{
	"Koramangala", "Indiranagar", "Jayanagar", "JP Nagar", "HSR Layout",
	"Malleswaram", "Shivajinagar", "Hebbal", "Yelahanka", "Mahadevpura",
	"Whitefield", "Electronic City",
}

// Wards returns the fixed ward list in canonical order.
func Wards() []string {
	out := make([]string, len(bengaluruWards))
	copy(out, bengaluruWards)
	return out
}

// Zones scores each named zone and returns them sorted descending by score
// with 1-based ranks assigned after the sort. Equal scores keep their input
// order. Scoring is seeded by the zone list, so repeated calls rank alike.
func Zones(names []string) []model.WardScore {
	r := synth.NewRand("zones:" + strings.Join(names, ","))

	scores := make([]model.WardScore, 0, len(names))
	for _, name := range names {
		score := 40 + r.Intn(56) // [40, 95]
		scores = append(scores, model.WardScore{
			Ward:      name,
			Score:     score,
			Category:  synth.ScoreCategory(score),
			ChangePct: round1(-5 + r.Float64()*13), // [-5, 8]
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores
}

// Find returns the entry for a ward, or nil if it is not in the list.
func Find(scores []model.WardScore, ward string) *model.WardScore {
	for i := range scores {
		if scores[i].Ward == ward {
			return &scores[i]
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
