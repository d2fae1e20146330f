package track

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/model"
)

// Timer lifecycle discipline: a per-load timer is started on create/resume
// and stopped on every exit from the running state (pause, complete,
// cancel). A global sweep runs alongside as a safety net so an expired load
// is completed even if its own timer was never started or was dropped.
// Both paths funnel into Complete, whose terminal guard makes the overlap
// a safe no-op.

// startTimerLocked registers and launches the countdown timer for a load.
// Idempotent: an already-running timer is kept. Caller holds the lock.
func (s *Service) startTimerLocked(id string) {
	if _, exists := s.timers[id]; exists {
		return
	}
	stop := make(chan struct{})
	s.timers[id] = stop
	go s.runTimer(id, stop)
}

// stopTimerLocked tears down the countdown timer for a load, if any.
// Caller holds the lock.
func (s *Service) stopTimerLocked(id string) {
	if stop, exists := s.timers[id]; exists {
		close(stop)
		delete(s.timers, id)
	}
}

// runTimer drives one load's countdown until stopped
func (s *Service) runTimer(id string, stop chan struct{}) {
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if done := s.checkLoad(id); done {
				return
			}
		}
	}
}

// checkLoad recomputes one load's countdown: completes it when the cycle
// duration has fully elapsed, otherwise pushes a display update. Returns
// true when the timer should end. Status and time fields are only read
// under the lock; mutations hold it exclusively. The tick callback gets a
// copy so the UI never touches live fields.
func (s *Service) checkLoad(id string) bool {
	s.mu.RLock()
	load := s.findLocked(id)
	if load == nil || load.Status != model.StatusRunning {
		s.mu.RUnlock()
		return true
	}
	now := s.now()
	expired := load.Expired(now)
	snapshot := *load
	s.mu.RUnlock()

	if expired {
		log.Debug().Str("load_id", id).Msg("cycle expired, completing")
		s.Complete(id)
		return true
	}
	s.notifyTick(&snapshot)
	return false
}

// runSweep periodically scans all running loads for expiry, independent of
// their per-load timers
func (s *Service) runSweep(stop chan struct{}) {
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.sweepExpired()
		}
	}
}

// sweepExpired completes every running load whose duration has elapsed
func (s *Service) sweepExpired() {
	s.mu.RLock()
	now := s.now()
	var expired []string
	for _, l := range s.loads {
		if l.Status == model.StatusRunning && l.Expired(now) {
			expired = append(expired, l.ID)
		}
	}
	s.mu.RUnlock()

	for _, id := range expired {
		log.Debug().Str("load_id", id).Msg("sweep found expired load")
		s.Complete(id)
	}
}

func (s *Service) interval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickInterval
}

// timerCount reports how many per-load timers are live, for tests
func (s *Service) timerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.timers)
}
