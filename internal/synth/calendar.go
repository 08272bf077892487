package synth

import (
	"time"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

// Disposal probabilities: households mostly dispose on weekdays and mostly
// miss on weekends; a 10% slice of days has no data either way.
const (
	weekdayDisposedP = 0.7
	weekdayMissedP   = 0.2
	weekendDisposedP = 0.3
	weekendMissedP   = 0.6
)

// DisposalHistory synthesizes the household's trailing disposal calendar,
// one entry per day from now-days through now, oldest first.
func DisposalHistory(key string, days int, now time.Time) []model.DisposalDay {
	if days < 0 {
		days = 0
	}
	r := NewRand("calendar:" + key)

	start := now.AddDate(0, 0, -days)
	history := make([]model.DisposalDay, 0, days+1)
	for d := 0; d <= days; d++ {
		date := start.AddDate(0, 0, d)

		disposedP, missedP := weekdayDisposedP, weekdayMissedP
		if isWeekend(date) {
			disposedP, missedP = weekendDisposedP, weekendMissedP
		}

		status := model.NoData
		switch p := r.Float64(); {
		case p < disposedP:
			status = model.Disposed
		case p < disposedP+missedP:
			status = model.Missed
		}

		history = append(history, model.DisposalDay{Date: date, Status: status})
	}
	return history
}
