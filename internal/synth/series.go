package synth

import (
	"time"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

// Weekday/weekend draw ranges for daily generation. Weekends produce more
// waste and worse segregation.
const (
	weekdayVolumeMin = 3.0
	weekdayVolumeMax = 6.0
	weekendVolumeMin = 5.0
	weekendVolumeMax = 9.0

	weekdaySegregationMin = 80.0
	weekdaySegregationMax = 95.0
	weekendSegregationMin = 70.0
	weekendSegregationMax = 85.0
)

// DailySeries synthesizes one record per day from now-windowDays through now,
// oldest first (windowDays+1 records). The same key always yields the same
// series for a given window.
func DailySeries(key string, windowDays int, now time.Time) []model.DailyRecord {
	if windowDays < 0 {
		windowDays = 0
	}
	r := NewRand(key)

	end := now
	start := end.AddDate(0, 0, -windowDays)

	records := make([]model.DailyRecord, 0, windowDays+1)
	for d := 0; d <= windowDays; d++ {
		date := start.AddDate(0, 0, d)
		weekend := isWeekend(date)

		volMin, volMax := weekdayVolumeMin, weekdayVolumeMax
		segMin, segMax := weekdaySegregationMin, weekdaySegregationMax
		if weekend {
			volMin, volMax = weekendVolumeMin, weekendVolumeMax
			segMin, segMax = weekendSegregationMin, weekendSegregationMax
		}

		records = append(records, model.DailyRecord{
			Date:                    date,
			WasteGeneratedKg:        round1(uniform(r, volMin, volMax)),
			SegregationRatePct:      round1(uniform(r, segMin, segMax)),
			CollectionEfficiencyPct: round1(uniform(r, 85, 98)),
			ProcessingRatePct:       round1(uniform(r, 70, 85)),
			RecyclingRatePct:        round1(uniform(r, 30, 50)),
		})
	}
	return records
}

// WeekdayProfile synthesizes the Mon-Sun generation pattern for an identity.
func WeekdayProfile(key string) []model.WeekdayStat {
	r := NewRand("weekday:" + key)
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	stats := make([]model.WeekdayStat, 0, len(days))
	for i, day := range days {
		weekend := i >= 5

		volMin, volMax := weekdayVolumeMin, weekdayVolumeMax
		segMin, segMax := weekdaySegregationMin, weekdaySegregationMax
		if weekend {
			volMin, volMax = weekendVolumeMin, weekendVolumeMax
			segMin, segMax = weekendSegregationMin, weekendSegregationMax
		}

		stats = append(stats, model.WeekdayStat{
			Day:                day,
			WasteGeneratedKg:   round1(uniform(r, volMin, volMax)),
			SegregationRatePct: round1(uniform(r, segMin, segMax)),
		})
	}
	return stats
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
