// Package calendar projects tasks onto calendar days for date-based lookup.
package calendar

import (
	"time"

	"github.com/taskquest/backend/domain"
)

// DateKey renders the date-only portion of a timestamp. Comparison works on
// the value's own year/month/day, so a due date stored at midnight UTC keys
// to that calendar date regardless of time-of-day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// GroupByDueDate indexes tasks by the date-only portion of their due date.
// Tasks without a due date are excluded rather than grouped under a null
// bucket. Within each day, insertion order is preserved.
func GroupByDueDate(tasks []domain.Task) map[string][]domain.Task {
	grouped := make(map[string][]domain.Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := DateKey(*t.DueDate)
		grouped[key] = append(grouped[key], t)
	}
	return grouped
}

// TasksOnDate returns the tasks due on the same calendar day as date,
// independent of time-of-day.
func TasksOnDate(tasks []domain.Task, date time.Time) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.DueDate != nil && sameDay(*t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
