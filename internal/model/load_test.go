package model

import (
	"testing"
	"time"
)

func TestLoad_Elapsed(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		load     Load
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "running with no pauses",
			load:     Load{Status: StatusRunning, StartTime: start},
			now:      start.Add(5 * time.Minute),
			expected: 5 * time.Minute,
		},
		{
			name:     "running after a folded pause",
			load:     Load{Status: StatusRunning, StartTime: start, PausedMS: (3 * time.Minute).Milliseconds()},
			now:      start.Add(33 * time.Minute),
			expected: 30 * time.Minute,
		},
		{
			name:     "currently paused subtracts the open interval",
			load:     Load{Status: StatusPaused, StartTime: start, PausedAt: start.Add(5 * time.Minute)},
			now:      start.Add(9 * time.Minute),
			expected: 5 * time.Minute,
		},
		{
			name:     "paused with earlier folded pauses",
			load:     Load{Status: StatusPaused, StartTime: start, PausedMS: time.Minute.Milliseconds(), PausedAt: start.Add(10 * time.Minute)},
			now:      start.Add(12 * time.Minute),
			expected: 9 * time.Minute,
		},
		{
			name:     "clamped to zero",
			load:     Load{Status: StatusRunning, StartTime: start, PausedMS: (10 * time.Minute).Milliseconds()},
			now:      start.Add(5 * time.Minute),
			expected: 0,
		},
	}

	for _, test := range tests {
		result := test.load.Elapsed(test.now)
		if result != test.expected {
			t.Errorf("%s: Elapsed() = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestLoad_ElapsedNeverExceedsWallClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	load := Load{Status: StatusRunning, StartTime: start, DurationMinutes: 60}

	// Simulate pause/resume sequences and verify elapsed stays within
	// now - startTime and never goes backwards while running.
	now := start
	var lastElapsed time.Duration
	for i := 0; i < 5; i++ {
		now = now.Add(2 * time.Minute)
		elapsed := load.Elapsed(now)
		if elapsed > now.Sub(start) {
			t.Fatalf("step %d: elapsed %v exceeds wall clock %v", i, elapsed, now.Sub(start))
		}
		if elapsed < lastElapsed {
			t.Fatalf("step %d: elapsed went backwards: %v -> %v", i, lastElapsed, elapsed)
		}
		lastElapsed = elapsed

		// Pause for a minute, then resume.
		load.Status = StatusPaused
		load.PausedAt = now
		now = now.Add(time.Minute)
		if got := load.Elapsed(now); got != lastElapsed {
			t.Fatalf("step %d: elapsed advanced during pause: %v -> %v", i, lastElapsed, got)
		}
		load.PausedMS += now.Sub(load.PausedAt).Milliseconds()
		load.PausedAt = time.Time{}
		load.Status = StatusRunning
	}
}

func TestLoad_ZeroLengthPauseIsContinuous(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	load := Load{Status: StatusRunning, StartTime: start}
	now := start.Add(10 * time.Minute)

	before := load.Elapsed(now)

	// Pause and immediately resume at the same instant.
	load.Status = StatusPaused
	load.PausedAt = now
	load.PausedMS += now.Sub(load.PausedAt).Milliseconds()
	load.PausedAt = time.Time{}
	load.Status = StatusRunning

	after := load.Elapsed(now)
	if before != after {
		t.Errorf("Expected elapsed to be continuous across zero-length pause, got %v then %v", before, after)
	}
}

func TestLoad_Remaining(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	load := Load{Status: StatusRunning, StartTime: start, DurationMinutes: 30}

	if got := load.Remaining(start.Add(10 * time.Minute)); got != 20*time.Minute {
		t.Errorf("Remaining() = %v, expected %v", got, 20*time.Minute)
	}

	if !load.Expired(start.Add(31 * time.Minute)) {
		t.Error("Expected load to be expired after duration elapsed")
	}

	if load.Expired(start.Add(29 * time.Minute)) {
		t.Error("Expected load to not be expired before duration elapsed")
	}
}

func TestLoad_Progress(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	load := Load{Status: StatusRunning, StartTime: start, DurationMinutes: 60}

	tests := []struct {
		now      time.Time
		expected float64
	}{
		{start, 0.0},
		{start.Add(30 * time.Minute), 0.5},
		{start.Add(60 * time.Minute), 1.0},
		{start.Add(90 * time.Minute), 1.0}, // clamped
	}

	for _, test := range tests {
		result := load.Progress(test.now)
		if result != test.expected {
			t.Errorf("Progress() at %v = %f, expected %f", test.now, result, test.expected)
		}
	}

	zeroDur := Load{Status: StatusRunning, StartTime: start, DurationMinutes: 0}
	if got := zeroDur.Progress(start.Add(time.Minute)); got != 0 {
		t.Errorf("Progress() with zero duration = %f, expected 0", got)
	}
}

func TestLoad_RemainingString(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		durationMinutes int
		elapsed         time.Duration
		expected        string
	}{
		{30, 0, "30:00"},
		{30, 10*time.Minute + 30*time.Second, "19:30"},
		{90, 0, "01:30:00"},
		{1, 2 * time.Minute, "00:00"}, // overdue clamps to zero
	}

	for _, test := range tests {
		load := Load{Status: StatusRunning, StartTime: start, DurationMinutes: test.durationMinutes}
		result := load.RemainingString(start.Add(test.elapsed))
		if result != test.expected {
			t.Errorf("RemainingString() with duration=%dm elapsed=%v = %s, expected %s",
				test.durationMinutes, test.elapsed, result, test.expected)
		}
	}
}

func TestLoad_DisplayTitle(t *testing.T) {
	tests := []struct {
		category string
		kind     string
		expected string
	}{
		{"cotton", KindWash, "cotton · wash"},
		{"", KindDry, "dry"},
		{"  ", KindWash, "wash"},
	}

	for _, test := range tests {
		load := Load{Kind: test.kind, Category: test.category}
		result := load.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with category='%s', kind='%s' = '%s', expected '%s'",
				test.category, test.kind, result, test.expected)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "durationMinutes", Reason: "must be a positive integer"}
	expected := "invalid durationMinutes: must be a positive integer"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, expected %s", err.Error(), expected)
	}
}

func TestValidKind(t *testing.T) {
	if !ValidKind(KindWash) || !ValidKind(KindDry) {
		t.Error("Expected wash and dry to be valid kinds")
	}
	if ValidKind("rinse") {
		t.Error("Expected unknown kind to be invalid")
	}
}
