// Package store holds the client-side snapshots of the backend's resource
// collections. Each collection gets one Store, which tracks the last fetched
// snapshot plus a fetch status, and applies CRUD results as they arrive.
//
// Reads and writes are safe from parallel callers: fetches and mutations run
// inside bubbletea commands, which are goroutines.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/marcus/rd/internal/apiclient"
)

// Status is the fetch state of a store.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Ops are the remote operations backing a store. List is required; the
// mutation ops may be nil for read-only collections (rewards, adminActions).
type Ops[T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, entity T) (*T, error)
	Update func(ctx context.Context, id int, fields map[string]any) (*T, error)
	Delete func(ctx context.Context, id int) error
}

// Store caches one collection. The snapshot is replaced wholesale on each
// successful fetch; entries appended via AddLocal live in a separate pending
// list so a fetch cannot drop them.
type Store[T any] struct {
	name string
	ops  Ops[T]
	idOf func(T) int

	mu      sync.Mutex
	status  Status
	err     error
	data    []T
	pending []T
}

// New creates a store for the named collection. idOf extracts an entity's id
// for update/delete bookkeeping.
func New[T any](name string, ops Ops[T], idOf func(T) int) *Store[T] {
	return &Store[T]{
		name:   name,
		ops:    ops,
		idOf:   idOf,
		status: StatusIdle,
	}
}

// Name returns the collection name.
func (s *Store[T]) Name() string { return s.name }

// Status returns the current fetch status.
func (s *Store[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the last fetch error, or nil.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Items returns the fetched snapshot followed by locally appended entries.
// The slice is a copy; mutating it does not touch the store.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.data)+len(s.pending))
	out = append(out, s.data...)
	out = append(out, s.pending...)
	return out
}

// Pending returns only the locally appended entries.
func (s *Store[T]) Pending() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.pending))
	copy(out, s.pending)
	return out
}

// Len returns the number of visible entries (snapshot + pending).
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data) + len(s.pending)
}

// Fetch lists the collection and replaces the snapshot with the response.
// While a fetch is in flight further calls are no-ops, so re-renders cannot
// pile up duplicate requests. During the fetch the previous snapshot stays
// readable; on failure it is kept and the error recorded.
//
// Returns false when the call was a no-op.
//
// A fetch response landing after a concurrent Delete re-lists the deleted
// entity; that is inherent to replacing the snapshot wholesale and callers
// should not rely on the gap being closed.
func (s *Store[T]) Fetch(ctx context.Context) bool {
	s.mu.Lock()
	if s.status == StatusLoading {
		s.mu.Unlock()
		return false
	}
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()

	items, err := s.ops.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return true
	}
	s.status = StatusSucceeded
	s.data = items
	return true
}

// Create sends the entity to the backend and appends the server-assigned
// result to the snapshot. On failure the snapshot is untouched.
func (s *Store[T]) Create(ctx context.Context, entity T) (*T, error) {
	if s.ops.Create == nil {
		return nil, fmt.Errorf("%s: create not supported", s.name)
	}
	created, err := s.ops.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.data = append(s.data, *created)
	s.mu.Unlock()
	return created, nil
}

// Update sends a partial update and swaps the returned entity into the
// snapshot in place of the entry with the same id. On failure, or when the id
// is not present locally, the snapshot is untouched.
func (s *Store[T]) Update(ctx context.Context, id int, fields map[string]any) (*T, error) {
	if s.ops.Update == nil {
		return nil, fmt.Errorf("%s: update not supported", s.name)
	}
	updated, err := s.ops.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.data {
		if s.idOf(s.data[i]) == id {
			s.data[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the entity on the backend, then drops it from the snapshot.
// On failure the snapshot is untouched.
func (s *Store[T]) Delete(ctx context.Context, id int) error {
	if s.ops.Delete == nil {
		return fmt.Errorf("%s: delete not supported", s.name)
	}
	if err := s.ops.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.data[:0]
	for _, item := range s.data {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.data = kept
	s.mu.Unlock()
	return nil
}

// AddLocal appends an entry that exists only in this client: no round trip,
// cannot fail, never synced back. The entry survives subsequent fetches.
func (s *Store[T]) AddLocal(entity T) {
	s.mu.Lock()
	s.pending = append(s.pending, entity)
	s.mu.Unlock()
}

// ErrMessage returns a human-readable form of the last fetch error, or "".
func (s *Store[T]) ErrMessage() string {
	return apiclient.Humanize(s.Err())
}
