package client

import (
	"context"
	"sync"
)

// FetchFunc loads a resource's current value from the API.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Resource is a cached view of one API resource. Near-static resources are
// fetched at most once and served from cache afterwards — no revalidation
// on a schedule or on reconnect. Mutable resources refetch on every Get.
// Mutate installs an optimistic value immediately, so callers see a change
// before the server confirms it; Revalidate reconciles with the server.
type Resource[T any] struct {
	fetch    FetchFunc[T]
	static   bool
	disabled bool

	mu     sync.Mutex
	loaded bool
	data   T
	err    error
}

func newResource[T any](fetch FetchFunc[T], static bool, initial T) *Resource[T] {
	return &Resource[T]{fetch: fetch, static: static, data: initial}
}

// disabledResource is a resource whose required parameter is absent. It
// never issues a request; Get returns the zero value with no error.
func disabledResource[T any]() *Resource[T] {
	return &Resource[T]{disabled: true}
}

// Get returns the resource's value. Near-static resources serve the cache
// after the first successful fetch; a previous failure is retried.
func (r *Resource[T]) Get(ctx context.Context) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disabled {
		return r.data, nil
	}
	if r.static && r.loaded {
		return r.data, nil
	}

	data, err := r.fetch(ctx)
	if err != nil {
		r.err = err
		return r.data, err
	}

	r.data = data
	r.err = nil
	r.loaded = true
	return r.data, nil
}

// Cached returns the current cached value without issuing a request, and
// whether a successful fetch has happened yet. Before the first fetch the
// value is the resource's initial value (an empty collection for lists).
func (r *Resource[T]) Cached() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.loaded
}

// Err returns the error of the most recent failed fetch, cleared by the
// next success.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Mutate installs an optimistic value immediately. The value is visible to
// Cached and (for near-static resources) Get until a later Revalidate or
// Invalidate reconciles with the server. Callers trigger the background
// revalidation once the server has confirmed the change, so a refetch
// cannot race the mutation and resurrect stale state.
func (r *Resource[T]) Mutate(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled {
		return
	}
	r.data = v
	r.loaded = true
}

// Revalidate refetches the resource synchronously, replacing the cache on
// success and keeping the current value on failure.
func (r *Resource[T]) Revalidate(ctx context.Context) error {
	if r.disabled {
		return nil
	}

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.err = err
		return err
	}
	r.data = data
	r.err = nil
	r.loaded = true
	return nil
}

// Invalidate drops the cached value; the next Get refetches.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	r.err = nil
}
