package model

import (
	"fmt"
	"strings"
	"time"
)

// Load kinds
const (
	KindWash = "wash"
	KindDry  = "dry"
)

// Load represents a single tracked wash/dry cycle
type Load struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`     // wash or dry
	Location        string     `json:"location"` // site code, resolved to a display name by the site registry
	Category        string     `json:"category"` // free-form classification (e.g., fabric type)
	DurationMinutes int        `json:"durationMinutes"`
	Notes           string     `json:"notes,omitempty"`
	Status          LoadStatus `json:"status"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`  // zero until the terminal transition, then set exactly once
	PausedMS        int64      `json:"pausedMs"` // cumulative paused time, only grows when a pause ends
	PausedAt        time.Time  `json:"pausedAt"` // zero unless currently paused
}

// DurationMS returns the planned cycle duration in milliseconds
func (l *Load) DurationMS() int64 {
	return int64(l.DurationMinutes) * 60 * 1000
}

// Elapsed returns wall-clock time spent in the cycle at the given instant,
// excluding every paused interval. The open pause interval (when status is
// paused) has not been folded into PausedMS yet, so it is subtracted here.
// Never negative. All remaining/progress displays derive from this.
func (l *Load) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(l.StartTime) - time.Duration(l.PausedMS)*time.Millisecond
	if l.Status == StatusPaused && !l.PausedAt.IsZero() {
		elapsed -= now.Sub(l.PausedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns how much cycle time is left at the given instant.
// Negative values mean the cycle is overdue.
func (l *Load) Remaining(now time.Time) time.Duration {
	return time.Duration(l.DurationMS())*time.Millisecond - l.Elapsed(now)
}

// Expired returns true if the cycle duration has fully elapsed
func (l *Load) Expired(now time.Time) bool {
	return l.Remaining(now) <= 0
}

// Progress returns cycle completion in the range 0.0 to 1.0
func (l *Load) Progress(now time.Time) float64 {
	total := l.DurationMS()
	if total <= 0 {
		return 0
	}
	p := float64(l.Elapsed(now).Milliseconds()) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// RemainingString formats remaining time as mm:ss, or hh:mm:ss for long
// cycles. Overdue loads show 00:00.
func (l *Load) RemainingString(now time.Time) string {
	remaining := l.Remaining(now)
	if remaining < 0 {
		remaining = 0
	}

	total := int(remaining.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DisplayTitle returns category and kind combined for list rows, falling
// back to the kind alone when no category was given
func (l *Load) DisplayTitle() string {
	category := strings.TrimSpace(l.Category)
	if category == "" {
		return l.Kind
	}
	return category + " · " + l.Kind
}

// ValidationError reports a rejected field on load creation
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidKind returns true for the known load kinds
func ValidKind(kind string) bool {
	return kind == KindWash || kind == KindDry
}
