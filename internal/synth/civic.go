package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

var cleanlinessTrends = []string{"improving", "stable", "needs attention"}

// CleanlinessScore blends four component scores into the identity's overall
// cleanliness rating. Weights: segregation 35%, collection 25%, black spots
// 25%, citizen rating 15%.
func CleanlinessScore(key string) model.CleanlinessReport {
	r := NewRand("cleanliness:" + key)

	c := model.CleanlinessComponents{
		SegregationScore: randInt(r, 60, 95),
		CollectionScore:  randInt(r, 70, 95),
		BlackSpotsScore:  randInt(r, 50, 90),
		CitizenRating:    randInt(r, 60, 90),
	}
	overall := 0.35*float64(c.SegregationScore) +
		0.25*float64(c.CollectionScore) +
		0.25*float64(c.BlackSpotsScore) +
		0.15*float64(c.CitizenRating)

	return model.CleanlinessReport{
		OverallScore: round1(overall),
		Components:   c,
		Trend:        cleanlinessTrends[r.Intn(len(cleanlinessTrends))],
	}
}

var complaintTypes = []string{
	"Missed garbage collection",
	"Black spot not cleared",
	"Overflowing bin",
	"Improper segregation by neighbors",
	"Waste burning incident",
	"Littering in public space",
	"Commercial waste dumping",
	"Construction debris",
	"Drain blockage due to waste",
}

var complaintLocations = []string{
	"Main Road", "Cross Road", "Park", "Market", "Bus Stop",
	"Residential Layout", "Commercial Complex", "School Area",
}

var complaintStatuses = []string{"Pending", "In Progress", "Resolved", "Closed"}

// Complaints synthesizes the active complaint list for a ward. Priority is
// derived from age: over 7 days is High, over 3 is Medium, else Low.
func Complaints(ward string, now time.Time) []model.Complaint {
	r := NewRand("complaints:" + ward)

	n := randInt(r, 5, 15)
	complaints := make([]model.Complaint, 0, n)
	for i := 0; i < n; i++ {
		age := randInt(r, 1, 10)
		reported := now.AddDate(0, 0, -age)

		location := complaintLocations[r.Intn(len(complaintLocations))]
		if ward != "" {
			location = fmt.Sprintf("%s, %s", location, ward)
		}

		priority := "Low"
		switch {
		case age > 7:
			priority = "High"
		case age > 3:
			priority = "Medium"
		}

		complaints = append(complaints, model.Complaint{
			ID:           fmt.Sprintf("BBMP-WM-%d", randInt(r, 10000, 99999)),
			Type:         complaintTypes[r.Intn(len(complaintTypes))],
			Location:     location,
			DateReported: reported.Format("2006-01-02"),
			AgeDays:      age,
			Status:       complaintStatuses[r.Intn(len(complaintStatuses))],
			Priority:     priority,
			Votes:        randInt(r, 0, 15),
		})
	}
	return complaints
}

// Bengaluru city centroid used to place wards on the map.
const (
	bengaluruLat = 12.9716
	bengaluruLon = 77.5946
)

// WardMapPoints places each named ward radially around the city centroid with
// synthesized performance figures for the map overlay.
func WardMapPoints(key string, wards []string) []model.WardMapPoint {
	r := NewRand("map:" + key)

	points := make([]model.WardMapPoint, 0, len(wards))
	for i, ward := range wards {
		angle := float64(i) / float64(len(wards)) * 2 * math.Pi
		radius := uniform(r, 0.01, 0.08)
		score := randInt(r, 40, 95)

		points = append(points, model.WardMapPoint{
			Ward:            ward,
			Latitude:        bengaluruLat + radius*math.Sin(angle),
			Longitude:       bengaluruLon + radius*math.Cos(angle),
			Score:           score,
			Category:        ScoreCategory(score),
			CollectedTonnes: round1(uniform(r, 5, 15)),
			SegregationPct:  round1(uniform(r, 50, 95)),
			CollectionPct:   round1(uniform(r, 70, 99)),
		})
	}
	return points
}

// ScoreCategory maps a cleanliness score to its display band.
func ScoreCategory(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	default:
		return "Needs Improvement"
	}
}
