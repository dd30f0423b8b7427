package semaphore

import (
	"context"
	"errors"
)

var ErrAcquireTimeout = errors.New("semaphore acquire timeout exceeded")

type Semaphore struct {
	semaCh chan struct{}
}

func New(capacity uint64) *Semaphore {
	if capacity == 0 {
		capacity = 1
	}
	return &Semaphore{
		semaCh: make(chan struct{}, capacity),
	}
}

// Acquire blocks until a slot is free or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrAcquireTimeout
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}

// InUse returns the number of held slots.
func (s *Semaphore) InUse() int {
	return len(s.semaCh)
}
