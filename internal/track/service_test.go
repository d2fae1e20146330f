package track

import (
	"errors"
	"testing"
	"time"

	"github.com/washwatch/washwatch/internal/model"
)

// fakeClock provides a controllable time source for deterministic tests
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// fakeStore records snapshots instead of writing to preferences
type fakeStore struct {
	saved    [][]*model.Load
	restore  []*model.Load
	failSave bool
}

func (f *fakeStore) SaveLoads(loads []*model.Load) error {
	if f.failSave {
		return errors.New("storage quota exceeded")
	}
	f.saved = append(f.saved, loads)
	return nil
}

func (f *fakeStore) LoadLoads() []*model.Load {
	return f.restore
}

// newTestService builds a service with an injected clock and timers that
// never fire on their own, so expiry checks run only when tests call them
func newTestService(store *fakeStore, clock *fakeClock) *Service {
	service := NewService(store)
	service.UseClock(clock.Now)
	service.UseTickInterval(time.Hour)
	return service
}

func TestCreate(t *testing.T) {
	store := &fakeStore{}
	clock := newFakeClock()
	service := newTestService(store, clock)

	load, err := service.Create(model.KindWash, "campus-north", "cotton", 30, "delicates")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if load.Status != model.StatusRunning {
		t.Errorf("Expected status running, got %s", load.Status)
	}
	if !load.StartTime.Equal(clock.Now()) {
		t.Errorf("Expected StartTime %v, got %v", clock.Now(), load.StartTime)
	}
	if load.PausedMS != 0 {
		t.Errorf("Expected PausedMS 0, got %d", load.PausedMS)
	}
	if len(store.saved) != 1 {
		t.Errorf("Expected 1 persisted snapshot, got %d", len(store.saved))
	}
	if service.timerCount() != 1 {
		t.Errorf("Expected 1 live timer, got %d", service.timerCount())
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name            string
		kind            string
		durationMinutes int
		wantField       string
	}{
		{"unknown kind", "rinse", 30, "kind"},
		{"zero duration", model.KindWash, 0, "durationMinutes"},
		{"negative duration", model.KindDry, -5, "durationMinutes"},
	}

	for _, test := range tests {
		store := &fakeStore{}
		service := newTestService(store, newFakeClock())

		_, err := service.Create(test.kind, "home", "", test.durationMinutes, "")
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}

		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %T", test.name, err)
			continue
		}
		if verr.Field != test.wantField {
			t.Errorf("%s: expected field %s, got %s", test.name, test.wantField, verr.Field)
		}
		if len(store.saved) != 0 {
			t.Errorf("%s: rejected load must not be persisted", test.name)
		}
	}
}

func TestCreateAcceptsUnknownLocation(t *testing.T) {
	service := newTestService(&fakeStore{}, newFakeClock())

	load, err := service.Create(model.KindWash, "no-such-site", "", 30, "")
	if err != nil {
		t.Fatalf("Expected unknown location to be accepted, got %v", err)
	}
	if load.Location != "no-such-site" {
		t.Errorf("Expected location kept verbatim, got %s", load.Location)
	}
}

func TestNewestFirstOrdering(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	first, _ := service.Create(model.KindWash, "home", "", 30, "")
	clock.Advance(time.Minute)
	second, _ := service.Create(model.KindDry, "home", "", 45, "")

	loads := service.Loads()
	if len(loads) != 2 {
		t.Fatalf("Expected 2 loads, got %d", len(loads))
	}
	if loads[0].ID != second.ID || loads[1].ID != first.ID {
		t.Error("Expected most recently created load first")
	}
}

func TestPauseResumeAccounting(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	load, _ := service.Create(model.KindWash, "home", "cotton", 30, "")
	start := clock.Now()

	// Pause at t=5min.
	clock.Advance(5 * time.Minute)
	service.Pause(load.ID)

	if load.Status != model.StatusPaused {
		t.Fatalf("Expected paused, got %s", load.Status)
	}
	if !load.PausedAt.Equal(clock.Now()) {
		t.Errorf("Expected PausedAt %v, got %v", clock.Now(), load.PausedAt)
	}
	if service.timerCount() != 0 {
		t.Errorf("Expected timer stopped on pause, got %d live", service.timerCount())
	}

	// Resume at t=8min: three minutes of pause accumulated.
	clock.Advance(3 * time.Minute)
	service.Resume(load.ID)

	if load.Status != model.StatusRunning {
		t.Fatalf("Expected running, got %s", load.Status)
	}
	if load.PausedMS != (3 * time.Minute).Milliseconds() {
		t.Errorf("Expected PausedMS 3min, got %dms", load.PausedMS)
	}
	if !load.PausedAt.IsZero() {
		t.Error("Expected PausedAt cleared on resume")
	}
	if service.timerCount() != 1 {
		t.Errorf("Expected timer restarted on resume, got %d live", service.timerCount())
	}

	// At t=33min elapsed is 30min, so the cycle is due.
	clock.Advance(25 * time.Minute)
	if got := load.Elapsed(clock.Now()); got != 30*time.Minute {
		t.Errorf("Expected elapsed 30min at t=33min, got %v", got)
	}

	service.sweepExpired()

	if load.Status != model.StatusCompleted {
		t.Errorf("Expected auto-completion at expiry, got %s", load.Status)
	}
	if !load.EndTime.Equal(start.Add(33 * time.Minute)) {
		t.Errorf("Expected EndTime at t=33min, got %v", load.EndTime)
	}
}

func TestAutoCompleteAfterExpiry(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	load, _ := service.Create(model.KindWash, "home", "", 1, "")
	start := clock.Now()

	// Just before expiry nothing happens.
	clock.Advance(59 * time.Second)
	if done := service.checkLoad(load.ID); done {
		t.Error("Expected timer to keep running before expiry")
	}
	if load.Status != model.StatusRunning {
		t.Fatalf("Expected still running, got %s", load.Status)
	}

	// At t=61s the check completes the load.
	clock.Advance(2 * time.Second)
	if done := service.checkLoad(load.ID); !done {
		t.Error("Expected timer to end at expiry")
	}
	if load.Status != model.StatusCompleted {
		t.Errorf("Expected completed, got %s", load.Status)
	}
	if !load.EndTime.Equal(start.Add(61 * time.Second)) {
		t.Errorf("Expected EndTime at t=61s, got %v", load.EndTime)
	}
	if load.PausedMS != 0 {
		t.Errorf("Expected PausedMS 0, got %d", load.PausedMS)
	}
	if service.timerCount() != 0 {
		t.Errorf("Expected no live timers after completion, got %d", service.timerCount())
	}
}

func TestTerminalTransitionsAreFinal(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	load, _ := service.Create(model.KindDry, "home", "", 45, "")
	clock.Advance(10 * time.Minute)
	service.Complete(load.ID)

	endTime := load.EndTime
	if endTime.IsZero() {
		t.Fatal("Expected EndTime set on completion")
	}

	// Every further transition is a no-op.
	clock.Advance(time.Minute)
	service.Pause(load.ID)
	service.Resume(load.ID)
	service.Cancel(load.ID)
	service.Complete(load.ID)

	if load.Status != model.StatusCompleted {
		t.Errorf("Expected status to stay completed, got %s", load.Status)
	}
	if !load.EndTime.Equal(endTime) {
		t.Errorf("Expected EndTime unchanged, got %v", load.EndTime)
	}
	if !load.PausedAt.IsZero() || load.PausedMS != 0 {
		t.Error("Expected pause fields untouched after terminal state")
	}
}

func TestCancelFromPausedFoldsOpenPause(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	load, _ := service.Create(model.KindWash, "home", "", 30, "")
	clock.Advance(5 * time.Minute)
	service.Pause(load.ID)
	clock.Advance(2 * time.Minute)
	service.Cancel(load.ID)

	if load.Status != model.StatusCancelled {
		t.Fatalf("Expected cancelled, got %s", load.Status)
	}
	if load.PausedMS != (2 * time.Minute).Milliseconds() {
		t.Errorf("Expected open pause folded into PausedMS, got %dms", load.PausedMS)
	}
	if !load.PausedAt.IsZero() {
		t.Error("Expected PausedAt cleared on terminal transition")
	}
	if service.timerCount() != 0 {
		t.Errorf("Expected no live timers, got %d", service.timerCount())
	}
}

func TestUnknownIDIsIgnored(t *testing.T) {
	store := &fakeStore{}
	service := newTestService(store, newFakeClock())

	service.Pause("no-such-load")
	service.Resume("no-such-load")
	service.Complete("no-such-load")
	service.Cancel("no-such-load")

	if len(store.saved) != 0 {
		t.Error("Expected no persistence for ignored operations")
	}
}

func TestClearHistory(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	running, _ := service.Create(model.KindWash, "home", "", 30, "")
	paused, _ := service.Create(model.KindWash, "home", "", 30, "")
	completed, _ := service.Create(model.KindDry, "home", "", 45, "")
	cancelled, _ := service.Create(model.KindDry, "home", "", 45, "")

	service.Pause(paused.ID)
	service.Complete(completed.ID)
	service.Cancel(cancelled.ID)

	removed := service.ClearHistory()
	if removed != 2 {
		t.Errorf("Expected 2 removed loads, got %d", removed)
	}

	loads := service.Loads()
	if len(loads) != 2 {
		t.Fatalf("Expected 2 retained loads, got %d", len(loads))
	}
	for _, l := range loads {
		if !l.Status.IsActive() {
			t.Errorf("Expected only active loads retained, found %s", l.Status)
		}
	}
	if _, exists := service.Get(running.ID); !exists {
		t.Error("Expected running load retained")
	}
	if _, exists := service.Get(completed.ID); exists {
		t.Error("Expected completed load removed")
	}

	// Nothing terminal left, second clear is a no-op.
	if removed := service.ClearHistory(); removed != 0 {
		t.Errorf("Expected 0 removed on second clear, got %d", removed)
	}
}

func TestHistory(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	var finished []*model.Load
	for i := 0; i < 12; i++ {
		load, _ := service.Create(model.KindWash, "home", "", 30, "")
		service.Complete(load.ID)
		finished = append(finished, load)
		clock.Advance(time.Minute)
	}
	active, _ := service.Create(model.KindWash, "home", "", 30, "")

	history := service.History(10)
	if len(history) != 10 {
		t.Fatalf("Expected history capped at 10, got %d", len(history))
	}
	// Most recently finished load first; the active load excluded.
	if history[0].ID != finished[len(finished)-1].ID {
		t.Error("Expected most recently finished load first")
	}
	for _, l := range history {
		if l.ID == active.ID {
			t.Error("Expected active load excluded from history")
		}
	}

	if got := len(service.History(0)); got != 12 {
		t.Errorf("Expected unlimited history of 12, got %d", got)
	}
}

func TestHistoryOrderedByCompletionTime(t *testing.T) {
	clock := newFakeClock()
	service := newTestService(&fakeStore{}, clock)

	early, _ := service.Create(model.KindWash, "home", "", 30, "")
	clock.Advance(time.Minute)
	late, _ := service.Create(model.KindDry, "home", "", 45, "")

	// The newer load finishes first, the older one finishes last.
	service.Complete(late.ID)
	clock.Advance(time.Minute)
	service.Complete(early.ID)

	history := service.History(10)
	if len(history) != 2 {
		t.Fatalf("Expected 2 terminal loads, got %d", len(history))
	}
	if history[0].ID != early.ID {
		t.Errorf("Expected load finished last to come first, got %s", history[0].ID)
	}
	if history[1].ID != late.ID {
		t.Errorf("Expected load finished first to come last, got %s", history[1].ID)
	}
}

func TestChangeCallback(t *testing.T) {
	service := newTestService(&fakeStore{}, newFakeClock())

	changes := 0
	service.SetCallbacks(func() { changes++ }, nil, nil)

	load, _ := service.Create(model.KindWash, "home", "", 30, "")
	service.Pause(load.ID)
	service.Resume(load.ID)
	service.Complete(load.ID)
	service.ClearHistory()

	if changes != 5 {
		t.Errorf("Expected 5 change notifications, got %d", changes)
	}
}

func TestStoreErrorIsReportedNotFatal(t *testing.T) {
	store := &fakeStore{failSave: true}
	service := newTestService(store, newFakeClock())

	var reported error
	service.SetCallbacks(nil, nil, func(err error) { reported = err })

	load, err := service.Create(model.KindWash, "home", "", 30, "")
	if err != nil {
		t.Fatalf("Expected create to succeed despite store failure, got %v", err)
	}
	if reported == nil {
		t.Error("Expected store error to be reported")
	}
	if _, exists := service.Get(load.ID); !exists {
		t.Error("Expected load kept in memory despite store failure")
	}
}
