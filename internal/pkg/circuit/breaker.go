package circuit

import (
	"errors"
	"sync"
	"time"
)

var ErrOpen = errors.New("circuit open")

type State int

const (
	Closed   State = iota // normal operation
	Open                  // reject until the wait elapses
	HalfOpen              // limited trial requests
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// Breaker opens after threshold consecutive failures while closed, rejects
// everything for the wait period and then lets up to maxHalfOpen trial
// requests through. Callers report outcomes with Success and Failure.
type Breaker struct {
	mu                 sync.Mutex
	state              State
	errs, threshold    int
	halfOpenAfter      time.Duration
	lastChange         time.Time
	trial, maxHalfOpen int

	totalSuccess uint64
	totalFailure uint64
	lastSuccess  time.Time
	lastFailure  time.Time

	now func() time.Time
}

// Stats is a point-in-time snapshot for health and metrics endpoints.
type Stats struct {
	State        string    `json:"state"`
	TotalSuccess uint64    `json:"total_success"`
	TotalFailure uint64    `json:"total_failure"`
	LastSuccess  time.Time `json:"last_success,omitempty"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	Since        time.Time `json:"since"`
}

func New(threshold int, wait time.Duration, maxHalfOpen int) *Breaker {
	if threshold < 1 {
		threshold = 1
	}
	if maxHalfOpen < 1 {
		maxHalfOpen = 1
	}
	b := &Breaker{
		state:       Closed,
		threshold:   threshold,
		maxHalfOpen: maxHalfOpen,
		now:         time.Now,
	}
	b.halfOpenAfter = wait
	b.lastChange = b.now()
	return b
}

// Allow returns ErrOpen while the circuit is open or the half-open trial
// budget is spent. Open moves to HalfOpen once the wait has elapsed.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	switch b.state {
	case Open:
		if now.Sub(b.lastChange) >= b.halfOpenAfter {
			b.transitionTo(now, HalfOpen)
			b.trial++
			return nil
		}
		return ErrOpen
	case HalfOpen:
		if b.trial >= b.maxHalfOpen {
			return ErrOpen
		}
		b.trial++
		return nil
	default:
		return nil
	}
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.totalSuccess++
	b.lastSuccess = now

	switch b.state {
	case HalfOpen:
		b.transitionTo(now, Closed)
	case Closed:
		b.errs = 0
	}
}

func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.totalFailure++
	b.lastFailure = now

	switch b.state {
	case HalfOpen:
		b.transitionTo(now, Open)
	case Closed:
		b.errs++
		if b.errs >= b.threshold {
			b.transitionTo(now, Open)
		}
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		State:        b.state.String(),
		TotalSuccess: b.totalSuccess,
		TotalFailure: b.totalFailure,
		LastSuccess:  b.lastSuccess,
		LastFailure:  b.lastFailure,
		Since:        b.lastChange,
	}
}

func (b *Breaker) transitionTo(now time.Time, next State) {
	b.state = next
	b.lastChange = now
	b.trial = 0
	if next == Closed {
		b.errs = 0
	}
}
