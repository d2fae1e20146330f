// Package stats derives read-only statistics from the current load
// collection. Nothing here is persisted; everything is recomputed on
// demand after each change.
package stats

import (
	"time"

	"github.com/washwatch/washwatch/internal/model"
)

// Summary holds the derived statistics shown in the dashboard panel
type Summary struct {
	Active             int     // running + paused
	StartedToday       int
	StartedThisWeek    int     // trailing 7 days
	Total              int
	AvgDurationMinutes float64 // over completed loads, 0 if none
	TopCategory        string  // most frequent, first encountered wins ties
}

// Compute scans the collection once and derives the summary. The
// most-frequent-category tie-break is the first category to reach the
// maximum count during a single left-to-right scan of the collection.
func Compute(loads []*model.Load, now time.Time) Summary {
	summary := Summary{Total: len(loads)}

	weekAgo := now.AddDate(0, 0, -7)
	counts := make(map[string]int)
	best := 0
	completed := 0
	var durationSum int

	for _, l := range loads {
		if l.Status.IsActive() {
			summary.Active++
		}
		if sameDay(l.StartTime, now) {
			summary.StartedToday++
		}
		if l.StartTime.After(weekAgo) {
			summary.StartedThisWeek++
		}
		if l.Status == model.StatusCompleted {
			completed++
			durationSum += l.DurationMinutes
		}
		if l.Category != "" {
			counts[l.Category]++
			if counts[l.Category] > best {
				best = counts[l.Category]
				summary.TopCategory = l.Category
			}
		}
	}

	if completed > 0 {
		summary.AvgDurationMinutes = float64(durationSum) / float64(completed)
	}
	return summary
}

// sameDay reports whether two instants fall on the same calendar day in
// the reference time's location
func sameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
