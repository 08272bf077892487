package synth

import (
	"math/rand"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

// wasteTypeBaselines are the fixed per-category draw ranges. Baseline amounts
// set each category's proportion of a day's total; segregated fractions set
// how much of that category is correctly sorted.
var wasteTypeBaselines = []struct {
	name         string
	minKg, maxKg float64
	minSeg       float64
	maxSeg       float64
}{
	{"Wet", 15, 25, 0.70, 0.95},
	{"Dry", 10, 20, 0.80, 0.98},
	{"Hazardous", 1, 5, 0.60, 0.90},
	{"E-waste", 0.5, 3, 0.70, 1.00},
	{"Garden", 3, 8, 0.80, 1.00},
}

// WasteTypes returns the five fixed category names in generation order.
func WasteTypes() []string {
	names := make([]string, len(wasteTypeBaselines))
	for i, b := range wasteTypeBaselines {
		names[i] = b.name
	}
	return names
}

// TypeShares splits a day's total across the five categories. Each share gets
// an independent ±20% jitter, so the amounts approximate but do not re-sum
// exactly to dayTotal; callers wanting exact totals must reconcile themselves.
func TypeShares(r *rand.Rand, dayTotal float64) []model.WasteTypeShare {
	bases := make([]float64, len(wasteTypeBaselines))
	segs := make([]float64, len(wasteTypeBaselines))
	var sum float64
	for i, b := range wasteTypeBaselines {
		bases[i] = uniform(r, b.minKg, b.maxKg)
		segs[i] = uniform(r, b.minSeg, b.maxSeg)
		sum += bases[i]
	}

	shares := make([]model.WasteTypeShare, len(wasteTypeBaselines))
	for i, b := range wasteTypeBaselines {
		fraction := bases[i] / sum
		shares[i] = model.WasteTypeShare{
			Type:               b.name,
			AmountKg:           round2(dayTotal * fraction * uniform(r, 0.8, 1.2)),
			SegregatedFraction: round2(segs[i]),
		}
	}
	return shares
}

// TypeSeries expands a daily series into dated per-category entries for the
// stacked trend and day-of-week charts. Segregated is a weighted draw against
// the category's segregated fraction.
func TypeSeries(key string, records []model.DailyRecord) []model.TypeEntry {
	r := NewRand("types:" + key)

	entries := make([]model.TypeEntry, 0, len(records)*len(wasteTypeBaselines))
	for _, rec := range records {
		for _, share := range TypeShares(r, rec.WasteGeneratedKg) {
			entries = append(entries, model.TypeEntry{
				Date:       rec.Date,
				Type:       share.Type,
				AmountKg:   share.AmountKg,
				Segregated: r.Float64() < share.SegregatedFraction,
			})
		}
	}
	return entries
}

// recyclableBaselines are the fixed draw ranges for the recycling breakdown,
// in tonnes.
var recyclableBaselines = []struct {
	name       string
	minT, maxT float64
}{
	{"Paper & Cardboard", 20, 35},
	{"Plastic", 15, 25},
	{"Glass", 5, 15},
	{"Metal", 3, 10},
	{"E-Waste", 1, 5},
	{"Organic/Compost", 30, 50},
}

var recyclingTrends = []string{"increasing", "stable", "decreasing"}

// RecyclingBreakdown synthesizes the ward's recyclable-category tonnage with
// each category's percentage of the whole. Percentages sum to 100 within
// rounding error.
func RecyclingBreakdown(key string) []model.TypeSummary {
	r := NewRand("recycling:" + key)

	out := make([]model.TypeSummary, len(recyclableBaselines))
	var total float64
	for i, b := range recyclableBaselines {
		qty := round1(uniform(r, b.minT, b.maxT))
		total += qty
		out[i] = model.TypeSummary{
			Category: b.name,
			TotalKg:  qty,
			Trend:    recyclingTrends[r.Intn(len(recyclingTrends))],
		}
	}
	for i := range out {
		out[i].Percentage = round1(out[i].TotalKg / total * 100)
	}
	return out
}
