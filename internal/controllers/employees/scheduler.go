package employeesController

import (
	"sync"
	"time"
)

// Scheduler runs the deferred callbacks behind toast dismissal and
// post-submit navigation. Its lifetime is tied to the owning controller:
// after Close, pending callbacks become no-ops, so a timer firing after the
// view is gone touches nothing.
type Scheduler struct {
	mu     sync.Mutex
	timers map[*time.Timer]struct{}
	closed bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[*time.Timer]struct{})}
}

func (s *Scheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.timers, timer)
		s.mu.Unlock()

		fn()
	})

	s.timers[timer] = struct{}{}
}

func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
}
