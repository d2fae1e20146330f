package track

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/model"
)

// Default timer cadence for countdown updates and the expiry sweep
const DefaultTickInterval = time.Second

// Storage persists the load collection as a single snapshot
type Storage interface {
	SaveLoads(loads []*model.Load) error
	LoadLoads() []*model.Load
}

// Service owns the load collection and applies every status transition.
// Timers are resources owned by the service, keyed by load ID; a timer
// exists exactly while its load is running.
type Service struct {
	mu     sync.RWMutex
	loads  []*model.Load // insertion order, newest first
	timers map[string]chan struct{}

	store        Storage
	tickInterval time.Duration
	now          func() time.Time

	onChange     func()                 // collection changed, re-render lists and stats
	onTick       func(load *model.Load) // countdown update for a single running load
	onStoreError func(err error)        // non-fatal persistence failure

	sweepStop chan struct{}
}

// NewService creates a new tracking service backed by the given storage
func NewService(store Storage) *Service {
	return &Service{
		timers:       make(map[string]chan struct{}),
		store:        store,
		tickInterval: DefaultTickInterval,
		now:          time.Now,
	}
}

// SetCallbacks sets the presentation-surface callbacks. Callbacks may be
// invoked from timer goroutines; UI code must hop to its own thread.
func (s *Service) SetCallbacks(onChange func(), onTick func(*model.Load), onStoreError func(error)) {
	s.onChange = onChange
	s.onTick = onTick
	s.onStoreError = onStoreError
}

// UseClock allows tests to inject a deterministic clock.
// Intended for test setup only.
func (s *Service) UseClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// UseTickInterval allows tests to shorten the timer cadence.
// Intended for test setup only.
func (s *Service) UseTickInterval(interval time.Duration) {
	s.mu.Lock()
	s.tickInterval = interval
	s.mu.Unlock()
}

// Start restores the persisted collection and begins timer processing.
// Running loads restored from disk get their countdown timers back; paused
// loads stay paused until resumed.
func (s *Service) Start() {
	restored := s.store.LoadLoads()

	s.mu.Lock()
	s.loads = restored
	for _, l := range s.loads {
		if l.Status == model.StatusRunning {
			s.startTimerLocked(l.ID)
		}
	}
	s.sweepStop = make(chan struct{})
	go s.runSweep(s.sweepStop)
	s.mu.Unlock()

	log.Info().Int("loads", len(restored)).Msg("tracking service started")
	s.notifyChange()
}

// Close stops the sweep and every per-load timer
func (s *Service) Close() {
	s.mu.Lock()
	if s.sweepStop != nil {
		close(s.sweepStop)
		s.sweepStop = nil
	}
	for id, stop := range s.timers {
		close(stop)
		delete(s.timers, id)
	}
	s.mu.Unlock()
	log.Debug().Msg("tracking service closed")
}

// Create starts tracking a new load. Duration must be a positive number of
// minutes and kind must be wash or dry; unknown location codes are accepted
// as-is and displayed verbatim.
func (s *Service) Create(kind, location, category string, durationMinutes int, notes string) (*model.Load, error) {
	if !model.ValidKind(kind) {
		return nil, &model.ValidationError{Field: "kind", Reason: "must be wash or dry"}
	}
	if durationMinutes <= 0 {
		return nil, &model.ValidationError{Field: "durationMinutes", Reason: "must be a positive integer"}
	}

	load := &model.Load{
		ID:              generateLoadID(),
		Kind:            kind,
		Location:        strings.TrimSpace(location),
		Category:        strings.TrimSpace(category),
		DurationMinutes: durationMinutes,
		Notes:           strings.TrimSpace(notes),
		Status:          model.StatusRunning,
		StartTime:       s.clock()(),
	}

	s.mu.Lock()
	// Newest load first.
	s.loads = append([]*model.Load{load}, s.loads...)
	s.startTimerLocked(load.ID)
	s.mu.Unlock()

	log.Info().Str("load_id", load.ID).Str("kind", kind).Str("location", load.Location).
		Int("duration_min", durationMinutes).Msg("load created")

	s.persistAndNotify()
	return load, nil
}

// Pause suspends a running load's countdown. Ignored unless running.
func (s *Service) Pause(id string) {
	s.mu.Lock()
	load := s.findLocked(id)
	if load == nil || load.Status != model.StatusRunning {
		s.mu.Unlock()
		log.Debug().Str("load_id", id).Msg("pause ignored")
		return
	}
	load.Status = model.StatusPaused
	load.PausedAt = s.now()
	s.stopTimerLocked(id)
	s.mu.Unlock()

	log.Info().Str("load_id", id).Msg("load paused")
	s.persistAndNotify()
}

// Resume continues a paused load. The open pause interval is folded into
// the cumulative paused total at this point. Ignored unless paused.
func (s *Service) Resume(id string) {
	s.mu.Lock()
	load := s.findLocked(id)
	if load == nil || load.Status != model.StatusPaused {
		s.mu.Unlock()
		log.Debug().Str("load_id", id).Msg("resume ignored")
		return
	}
	load.PausedMS += s.now().Sub(load.PausedAt).Milliseconds()
	load.PausedAt = time.Time{}
	load.Status = model.StatusRunning
	s.startTimerLocked(id)
	s.mu.Unlock()

	log.Info().Str("load_id", id).Msg("load resumed")
	s.persistAndNotify()
}

// Complete finishes a load, by user action or on expiry. Valid from running
// or paused; a no-op for terminal loads, so the per-load timer and the
// sweep may both race to complete the same load safely.
func (s *Service) Complete(id string) {
	s.terminate(id, model.StatusCompleted)
}

// Cancel abandons a load. Valid from running or paused; the confirmation
// prompt is the presentation surface's responsibility.
func (s *Service) Cancel(id string) {
	s.terminate(id, model.StatusCancelled)
}

// terminate applies a terminal transition with the shared guards: active
// loads only, open pause folded, end time set exactly once, timer stopped.
func (s *Service) terminate(id string, status model.LoadStatus) {
	s.mu.Lock()
	load := s.findLocked(id)
	if load == nil || !load.Status.IsActive() {
		s.mu.Unlock()
		log.Debug().Str("load_id", id).Str("to", status.String()).Msg("transition ignored")
		return
	}
	if load.Status == model.StatusPaused {
		load.PausedMS += s.now().Sub(load.PausedAt).Milliseconds()
		load.PausedAt = time.Time{}
	}
	load.Status = status
	load.EndTime = s.now()
	s.stopTimerLocked(id)
	s.mu.Unlock()

	log.Info().Str("load_id", id).Str("status", status.String()).Msg("load finished")
	s.persistAndNotify()
}

// ClearHistory removes every terminal load. Running and paused loads are
// retained unconditionally. Returns the number of removed loads.
func (s *Service) ClearHistory() int {
	s.mu.Lock()
	kept := s.loads[:0:0]
	for _, l := range s.loads {
		if l.Status.IsActive() {
			kept = append(kept, l)
		}
	}
	removed := len(s.loads) - len(kept)
	s.loads = kept
	s.mu.Unlock()

	if removed == 0 {
		return 0
	}
	log.Info().Int("removed", removed).Msg("history cleared")
	s.persistAndNotify()
	return removed
}

// Get returns a load by ID
func (s *Service) Get(id string) (*model.Load, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	load := s.findLocked(id)
	return load, load != nil
}

// Loads returns the full collection, newest first
func (s *Service) Loads() []*model.Load {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loads := make([]*model.Load, len(s.loads))
	copy(loads, s.loads)
	return loads
}

// ActiveLoads returns running and paused loads, newest first
func (s *Service) ActiveLoads() []*model.Load {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active []*model.Load
	for _, l := range s.loads {
		if l.Status.IsActive() {
			active = append(active, l)
		}
	}
	return active
}

// History returns up to limit terminal loads, most recently finished
// first. A limit of zero or less returns all of them.
func (s *Service) History(limit int) []*model.Load {
	s.mu.RLock()
	var history []*model.Load
	for _, l := range s.loads {
		if l.Status.IsTerminal() {
			history = append(history, l)
		}
	}
	s.mu.RUnlock()

	// Collection order is creation time; an older load finished later
	// still belongs at the top.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].EndTime.After(history[j].EndTime)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history
}

// Now returns the service clock's current time, for display math
func (s *Service) Now() time.Time {
	return s.clock()()
}

// findLocked returns the load with the given ID, or nil. Caller holds the lock.
func (s *Service) findLocked(id string) *model.Load {
	for _, l := range s.loads {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *Service) clock() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// persistAndNotify writes the full snapshot and tells the presentation
// surface to re-render. A failed write is reported, never fatal.
func (s *Service) persistAndNotify() {
	snapshot := s.Loads()
	if err := s.store.SaveLoads(snapshot); err != nil {
		log.Warn().Err(err).Msg("persist loads failed")
		if s.onStoreError != nil {
			s.onStoreError(err)
		}
	}
	s.notifyChange()
}

func (s *Service) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Service) notifyTick(load *model.Load) {
	if s.onTick != nil {
		s.onTick(load)
	}
}

// generateLoadID generates a unique load ID
func generateLoadID() string {
	return "load-" + uuid.NewString()
}
