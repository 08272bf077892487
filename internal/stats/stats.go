// Package stats reduces generated daily and per-category records into the
// summary figures shared by the dashboard, metrics, and rewards views.
package stats

import (
	"math"
	"math/rand"
	"time"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

// Summarize reduces a daily series to totals and means, all rounded to one
// decimal. An empty series yields zeros rather than dividing by zero.
//
// The trend label is a biased draw ("improving" with p=0.7, else "stable")
// from the supplied generator, not a statistic of the series; it is only
// deterministic when the caller seeds r by identity.
func Summarize(records []model.DailyRecord, r *rand.Rand) model.SummaryStats {
	s := model.SummaryStats{Days: len(records)}
	if len(records) == 0 {
		return s
	}

	var seg, coll, proc, recyc float64
	for _, rec := range records {
		s.TotalWasteKg += rec.WasteGeneratedKg
		seg += rec.SegregationRatePct
		coll += rec.CollectionEfficiencyPct
		proc += rec.ProcessingRatePct
		recyc += rec.RecyclingRatePct
	}

	n := float64(len(records))
	s.TotalWasteKg = round1(s.TotalWasteKg)
	s.AvgDailyWasteKg = round1(s.TotalWasteKg / n)
	s.AvgSegregationPct = round1(seg / n)
	s.AvgCollectionPct = round1(coll / n)
	s.AvgProcessingPct = round1(proc / n)
	s.AvgRecyclingPct = round1(recyc / n)

	s.Trend = "stable"
	if r.Float64() > 0.3 {
		s.Trend = "improving"
	}
	return s
}

// ByType reduces category shares to per-category totals with each category's
// percentage of the whole. Percentages sum to 100 within rounding error; an
// empty or all-zero input yields zero percentages.
func ByType(shares []model.WasteTypeShare) []model.TypeSummary {
	totals := make(map[string]float64)
	var order []string
	for _, share := range shares {
		if _, ok := totals[share.Type]; !ok {
			order = append(order, share.Type)
		}
		totals[share.Type] += share.AmountKg
	}

	var whole float64
	for _, t := range totals {
		whole += t
	}

	out := make([]model.TypeSummary, 0, len(order))
	for _, category := range order {
		ts := model.TypeSummary{Category: category, TotalKg: round2(totals[category])}
		if whole > 0 {
			ts.Percentage = round1(totals[category] / whole * 100)
		}
		out = append(out, ts)
	}
	return out
}

// ByTypeEntries aggregates dated per-category entries across the whole
// window and returns each category's share, like ByType.
func ByTypeEntries(entries []model.TypeEntry) []model.TypeSummary {
	shares := make([]model.WasteTypeShare, 0, len(entries))
	for _, e := range entries {
		shares = append(shares, model.WasteTypeShare{Type: e.Type, AmountKg: e.AmountKg})
	}
	return ByType(shares)
}

// MonthStats filters a disposal history to one calendar month and summarizes
// it. A month with no matching days yields zero counts and rates.
func MonthStats(history []model.DisposalDay, month time.Month, year int) model.CalendarStats {
	var cs model.CalendarStats
	for _, day := range history {
		if day.Date.Month() != month || day.Date.Year() != year {
			continue
		}
		cs.TotalDays++
		switch day.Status {
		case model.Disposed:
			cs.Disposed++
		default:
			cs.Missed++
		}
	}

	if cs.TotalDays > 0 {
		cs.DisposalRatePct = round1(float64(cs.Disposed) / float64(cs.TotalDays) * 100)
		cs.MissedRatePct = round1(100 - cs.DisposalRatePct)
	}
	return cs
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
