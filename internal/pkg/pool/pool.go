// Package pool runs submitted jobs on a fixed set of goroutines.
package pool

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("pool is closed")

type Option func(*Pool)

// WithPanicHandler recovers job panics and hands the value to fn. Without it
// a panicking job crashes the process.
func WithPanicHandler(fn func(v any)) Option {
	return func(p *Pool) { p.onPanic = fn }
}

type Pool struct {
	jobs    chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	onPanic func(any)
}

func New(n int, opts ...Option) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				p.run(f)
			}
		}()
	}
	return p
}

func (p *Pool) run(f func()) {
	if f == nil {
		return
	}
	if p.onPanic != nil {
		defer func() {
			if v := recover(); v != nil {
				p.onPanic(v)
			}
		}()
	}
	f()
}

// Submit queues f, blocking while the queue is full. It gives up when ctx is
// done or the pool is closed.
func (p *Pool) Submit(ctx context.Context, f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.jobs <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs. Queued jobs still run. Safe to call twice.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// Wait blocks until every queued job has finished. Call Close first.
func (p *Pool) Wait() {
	p.wg.Wait()
}
