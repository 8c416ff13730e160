// Package stores implements the console's resource caches: each store wraps
// one resource's CRUD calls with loading/error state and an in-memory list
// that is patched in place after successful writes. Components read store
// state instead of talking to the HTTP layer, and no raw error ever escapes
// a store.
package stores

import (
	"context"
	"sync"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/services"
)

// Verbs are the service calls backing a store. Nil verbs mark operations the
// resource does not support.
type Verbs[T any, C any, U any] struct {
	Fetch  func(ctx context.Context, p services.ListParams) ([]T, int, error)
	Create func(ctx context.Context, req C) (*T, error)
	Update func(ctx context.Context, id string, req U) (*T, error)
	Delete func(ctx context.Context, id string) error
}

type Store[T any, C any, U any] struct {
	mu    sync.Mutex
	id    func(T) string
	verbs Verbs[T, C, U]
	log   logging.Logger

	items      []T
	total      int
	loading    bool
	err        string
	submitting bool
	submitErr  string

	fetchSeq uint64
}

func New[T any, C any, U any](id func(T) string, verbs Verbs[T, C, U], log logging.Logger) *Store[T, C, U] {
	return &Store[T, C, U]{id: id, verbs: verbs, log: log}
}

// Fetch replaces the cached list wholesale. On failure the previous list is
// left untouched; stale-but-present data beats a flash of emptiness. A fetch
// superseded by a newer one is discarded so an old response cannot overwrite
// newer state.
func (s *Store[T, C, U]) Fetch(ctx context.Context, p services.ListParams) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	items, total, err := s.verbs.Fetch(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		s.log.Debug(ctx, "discarding superseded fetch response")
		return
	}

	s.loading = false
	if err != nil {
		s.err = api.MessageFor(err)
		return
	}
	s.items = items
	s.total = total
}

// Create submits a new record. On success it is appended to the cached list
// and true is returned; on failure SubmitErr is set, the list is untouched,
// and false is returned so callers can keep their form open.
func (s *Store[T, C, U]) Create(ctx context.Context, req C) bool {
	if s.verbs.Create == nil {
		s.setSubmitErr("operation not supported")
		return false
	}

	s.beginSubmit()
	created, err := s.verbs.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.submitErr = api.MessageFor(err)
		return false
	}
	s.items = append(s.items, *created)
	s.total++
	return true
}

// Update submits a change and, on success, replaces the matching record in
// place, preserving list order.
func (s *Store[T, C, U]) Update(ctx context.Context, id string, req U) bool {
	if s.verbs.Update == nil {
		s.setSubmitErr("operation not supported")
		return false
	}

	s.beginSubmit()
	updated, err := s.verbs.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.submitErr = api.MessageFor(err)
		return false
	}
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = *updated
			break
		}
	}
	return true
}

// Delete removes the record from the cached list on success.
func (s *Store[T, C, U]) Delete(ctx context.Context, id string) bool {
	if s.verbs.Delete == nil {
		s.setSubmitErr("operation not supported")
		return false
	}

	s.beginSubmit()
	err := s.verbs.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.submitErr = api.MessageFor(err)
		return false
	}
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.total--
			break
		}
	}
	return true
}

func (s *Store[T, C, U]) beginSubmit() {
	s.mu.Lock()
	s.submitting = true
	s.submitErr = ""
	s.mu.Unlock()
}

func (s *Store[T, C, U]) setSubmitErr(msg string) {
	s.mu.Lock()
	s.submitErr = msg
	s.mu.Unlock()
}

// Items returns a copy of the cached list.
func (s *Store[T, C, U]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T, C, U]) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *Store[T, C, U]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store[T, C, U]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store[T, C, U]) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Store[T, C, U]) SubmitErr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitErr
}
