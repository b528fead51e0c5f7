package scheduler

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/strike/internal/common/scheduler Scheduler,Timer

// Scheduler fires one-shot deferred actions
type Scheduler interface {
	// AfterFunc runs f on its own goroutine once d has elapsed
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending action returned by AfterFunc
type Timer interface {
	// Stop cancels the action. It reports false if the action already
	// fired or was already stopped.
	Stop() bool
}

// DefaultScheduler implements Scheduler with time.AfterFunc
type DefaultScheduler struct{}

// New returns a scheduler backed by the runtime timers
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// AfterFunc schedules f to run after d
func (s *DefaultScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
