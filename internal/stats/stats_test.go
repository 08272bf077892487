package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityab24840/SwachItHackathon/internal/model"
	"github.com/adityab24840/SwachItHackathon/internal/synth"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, synth.NewRand("demo"))

	assert.Zero(t, s.Days)
	assert.Zero(t, s.TotalWasteKg)
	assert.Zero(t, s.AvgDailyWasteKg)
	assert.Zero(t, s.AvgSegregationPct)
	assert.Empty(t, s.Trend)
}

func TestSummarizeDemoSeries(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	records := synth.DailySeries("demo", 30, now)
	require.Len(t, records, 31)

	s := Summarize(records, synth.NewRand("trend:demo"))

	assert.Equal(t, 31, s.Days)
	assert.Greater(t, s.TotalWasteKg, 0.0)
	assert.GreaterOrEqual(t, s.AvgSegregationPct, 0.0)
	assert.LessOrEqual(t, s.AvgSegregationPct, 100.0)
	assert.Contains(t, []string{"improving", "stable"}, s.Trend)

	// Same seed, same summary.
	again := Summarize(records, synth.NewRand("trend:demo"))
	assert.Equal(t, s, again)
}

func TestByTypePercentagesSumTo100(t *testing.T) {
	shares := []model.WasteTypeShare{
		{Type: "Wet", AmountKg: 3.33},
		{Type: "Dry", AmountKg: 2.17},
		{Type: "Hazardous", AmountKg: 0.61},
		{Type: "E-waste", AmountKg: 0.29},
		{Type: "Garden", AmountKg: 1.07},
	}

	out := ByType(shares)
	require.Len(t, out, 5)

	var sum float64
	for _, ts := range out {
		sum += ts.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.5)
}

func TestByTypeGeneratedShares(t *testing.T) {
	out := ByType(synth.TypeShares(synth.NewRand("demo"), 6.0))

	var sum float64
	for _, ts := range out {
		sum += ts.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.5)
}

func TestByTypeEmpty(t *testing.T) {
	assert.Empty(t, ByType(nil))
}

func TestByTypeZeroTotal(t *testing.T) {
	out := ByType([]model.WasteTypeShare{{Type: "Wet"}, {Type: "Dry"}})
	require.Len(t, out, 2)
	for _, ts := range out {
		assert.Zero(t, ts.Percentage)
	}
}

func TestByTypeEntriesAggregatesAcrossDays(t *testing.T) {
	day1 := time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	entries := []model.TypeEntry{
		{Date: day1, Type: "Wet", AmountKg: 2},
		{Date: day2, Type: "Wet", AmountKg: 2},
		{Date: day1, Type: "Dry", AmountKg: 1},
		{Date: day2, Type: "Dry", AmountKg: 3},
	}

	out := ByTypeEntries(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "Wet", out[0].Category)
	assert.InDelta(t, 4.0, out[0].TotalKg, 0.001)
	assert.InDelta(t, 50.0, out[0].Percentage, 0.1)
	assert.InDelta(t, 50.0, out[1].Percentage, 0.1)
}

func TestMonthStats(t *testing.T) {
	history := []model.DisposalDay{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Status: model.Disposed},
		{Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Status: model.Missed},
		{Date: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), Status: model.NoData},
		{Date: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), Status: model.Disposed},
	}

	cs := MonthStats(history, time.May, 2025)
	assert.Equal(t, 3, cs.TotalDays)
	assert.Equal(t, 1, cs.Disposed)
	assert.Equal(t, 2, cs.Missed)
	assert.InDelta(t, 33.3, cs.DisposalRatePct, 0.1)
	assert.InDelta(t, 66.7, cs.MissedRatePct, 0.1)
}

func TestMonthStatsEmptyWindow(t *testing.T) {
	history := []model.DisposalDay{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Status: model.Disposed},
	}

	cs := MonthStats(history, time.January, 2025)
	assert.Zero(t, cs.TotalDays)
	assert.Zero(t, cs.DisposalRatePct)
	assert.Zero(t, cs.MissedRatePct)
}
