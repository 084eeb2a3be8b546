package gate

import (
	"context"
	"errors"
	"time"
)

var ErrAcquireTimeout = errors.New("gate acquire timeout")

// Gate serializes the reservation critical section process-wide.
// A single gate (not per-seminar) trades throughput for simplicity;
// expected concurrency is low and correctness only needs one writer
// touching seminar capacity at a time.
type Gate struct {
	slot chan struct{}
}

func New() *Gate {
	return &Gate{slot: make(chan struct{}, 1)}
}

// Acquire blocks until the gate is free, the wait bound elapses, or ctx is
// canceled. The wait is a blocking select, not spin-polling.
func (g *Gate) Acquire(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case g.slot <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrAcquireTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release must be called exactly once per successful Acquire.
// Callers defer it immediately so every exit path releases.
func (g *Gate) Release() {
	select {
	case <-g.slot:
	default:
		panic("gate: release without acquire")
	}
}
