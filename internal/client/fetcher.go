package client

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSuperseded reports that a newer fetch (or an identity change) started
// while this one was in flight; its result was dropped.
var ErrSuperseded = errors.New("fetch superseded")

// Fetcher serializes identity-keyed fetches with a generation counter:
// only the newest generation's result is applied. Triggered explicitly on
// identity-change events rather than on every render.
type Fetcher[T any] struct {
	gen   atomic.Uint64
	apply func(T)
}

func NewFetcher[T any](apply func(T)) *Fetcher[T] {
	return &Fetcher[T]{apply: apply}
}

// Invalidate abandons any in-flight fetch; wire it to
// Session.OnIdentityChange.
func (f *Fetcher[T]) Invalidate() {
	f.gen.Add(1)
}

// Do runs fetch and applies its result unless a newer generation started in
// the meantime.
func (f *Fetcher[T]) Do(ctx context.Context, fetch func(context.Context) (T, error)) error {
	gen := f.gen.Add(1)

	v, err := fetch(ctx)
	if f.gen.Load() != gen {
		return ErrSuperseded
	}
	if err != nil {
		return err
	}
	f.apply(v)
	return nil
}
