// Package store implements the cached entity stores of the console: one
// collection cache per entity with CRUD against the school service,
// classified failures, and notification emission. The cache is the single
// source of truth for consumers between fetches; it is replaced wholesale
// by FetchAll and patched surgically by Create/Update/Delete.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/escolar-hub/escolar-console/internal/classify"
	"github.com/escolar-hub/escolar-console/internal/domain/school"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
	"github.com/escolar-hub/escolar-console/internal/notify"
)

// validate checks write payloads before they leave the process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ActionMessages holds the success notifications of the mutating
// operations, worded per entity.
type ActionMessages struct {
	Created string
	Updated string
	Deleted string
}

// Descriptor parameterizes a Store for one entity type: its endpoint
// table, its classification context, and its notification wording.
type Descriptor struct {
	Entity    string
	Endpoints escolar.Endpoints
	Messages  ActionMessages
}

// Config carries the collaborators every store needs.
type Config struct {
	Client *escolar.Client
	Bus    *notify.Bus
	Logger *slog.Logger
}

// Store is the generic cached entity store. E is the entity type, P the
// write payload accepted by Create and Update.
//
// Concurrent calls are independent: nothing is cancelled or deduplicated.
// Overlapping FetchAll calls are fenced with a per-store sequence token,
// so a slow stale response never overwrites a fresher collection.
type Store[E school.Entity, P any] struct {
	client *escolar.Client
	bus    *notify.Bus
	logger *slog.Logger
	desc   Descriptor

	mu        sync.Mutex
	items     []E
	inFlight  int
	lastError *classify.Error
	fetchSeq  uint64
}

// New creates a store for the descriptor.
func New[E school.Entity, P any](cfg Config, desc Descriptor) *Store[E, P] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[E, P]{
		client: cfg.Client,
		bus:    cfg.Bus,
		logger: logger.With("entity", desc.Entity),
		desc:   desc,
	}
}

// Items returns a snapshot of the cached collection.
func (s *Store[E, P]) Items() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// IsLoading reports whether any operation is in flight. Each call tracks
// its own completion, so one finishing call never clears the flag of
// another still running.
func (s *Store[E, P]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// LastError returns the classified error of the most recent failed
// operation, or nil after a success.
func (s *Store[E, P]) LastError() *classify.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// begin marks one operation in flight and clears the sticky error.
func (s *Store[E, P]) begin() {
	s.mu.Lock()
	s.inFlight++
	s.lastError = nil
	s.mu.Unlock()
}

// end is deferred by every operation, on success and failure alike.
func (s *Store[E, P]) end() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

// fail classifies err, records it, and emits the error notification.
func (s *Store[E, P]) fail(op string, err error) *classify.Error {
	ce := classify.Classify(err, s.desc.Entity)
	s.mu.Lock()
	s.lastError = ce
	s.mu.Unlock()
	s.bus.Error(ce.Message)
	s.logger.Warn("store operation failed", "op", op, "kind", ce.Kind.String(), "error", err.Error())
	return ce
}

// FetchAll replaces the cache wholesale with the server's collection.
// On failure the previous cache stays available (stale but visible) and
// the failure is surfaced via LastError and a notification.
func (s *Store[E, P]) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.end()

	s.mu.Lock()
	s.fetchSeq++
	token := s.fetchSeq
	s.mu.Unlock()

	var items []E
	if err := s.client.Get(ctx, s.desc.Endpoints.Base, &items); err != nil {
		return s.fail("fetch_all", err)
	}
	if items == nil {
		items = []E{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Last-issued wins: a response racing in behind a newer fetch is
	// discarded rather than clobbering the fresher collection.
	if token != s.fetchSeq {
		return nil
	}
	s.items = items
	s.logger.Debug("collection fetched", "count", len(items))
	return nil
}

// FetchOne loads a single entity without touching the cache, for
// detail/edit flows that need the full record.
func (s *Store[E, P]) FetchOne(ctx context.Context, id string) (E, error) {
	s.begin()
	defer s.end()

	var entity E
	if err := s.client.Get(ctx, s.desc.Endpoints.ByID(id), &entity); err != nil {
		return entity, s.fail("fetch_one", err)
	}
	return entity, nil
}

// Create validates the payload, posts it, and prepends the created
// entity to the cache: new records appear at the top of lists.
func (s *Store[E, P]) Create(ctx context.Context, payload P) (E, error) {
	s.begin()
	defer s.end()

	var entity E
	if err := validate.Struct(payload); err != nil {
		return entity, s.fail("create", invalidPayload(s.desc.Entity, err))
	}

	if err := s.client.Post(ctx, s.desc.Endpoints.Base, payload, &entity); err != nil {
		return entity, s.fail("create", err)
	}

	s.mu.Lock()
	s.items = append([]E{entity}, s.items...)
	s.mu.Unlock()

	s.bus.Success(s.desc.Messages.Created)
	return entity, nil
}

// Update validates the payload, patches the entity, and replaces the
// cached element in place: list position is preserved.
func (s *Store[E, P]) Update(ctx context.Context, id string, payload P) (E, error) {
	s.begin()
	defer s.end()

	var entity E
	if err := validate.Struct(payload); err != nil {
		return entity, s.fail("update", invalidPayload(s.desc.Entity, err))
	}

	if err := s.client.Patch(ctx, s.desc.Endpoints.ByID(id), payload, &entity); err != nil {
		return entity, s.fail("update", err)
	}

	s.replaceInCache(entity)
	s.bus.Success(s.desc.Messages.Updated)
	return entity, nil
}

// Delete removes the entity remotely and drops it from the cache.
// Dropping an id the cache no longer holds is a no-op, so a double
// delete stays consistent locally while the 404 is surfaced normally.
func (s *Store[E, P]) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.client.Delete(ctx, s.desc.Endpoints.ByID(id)); err != nil {
		return s.fail("delete", err)
	}

	s.removeFromCache(id)
	s.bus.Success(s.desc.Messages.Deleted)
	return nil
}

// Count asks the server for the collection total. It is a best-effort
// counter: it never reads the cache, never notifies, and reports 0 on
// any failure instead of propagating it.
func (s *Store[E, P]) Count(ctx context.Context) int {
	var count escolar.CountDTO
	if err := s.client.Get(ctx, s.desc.Endpoints.Count, &count); err != nil {
		s.logger.Warn("count failed", "error", err.Error())
		return 0
	}
	return count.Count
}

// readList runs a read-only filter endpoint. The cache is untouched;
// failures are classified and notified like FetchOne.
func (s *Store[E, P]) readList(ctx context.Context, op, path string) ([]E, error) {
	s.begin()
	defer s.end()

	var items []E
	if err := s.client.Get(ctx, path, &items); err != nil {
		return nil, s.fail(op, err)
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

// readCount runs a read-only aggregate endpoint with the same
// best-effort policy as Count.
func (s *Store[E, P]) readCount(ctx context.Context, path string) int {
	var count escolar.CountDTO
	if err := s.client.Get(ctx, path, &count); err != nil {
		s.logger.Warn("count failed", "path", path, "error", err.Error())
		return 0
	}
	return count.Count
}

// mutateRelated runs a relationship sub-resource call (competencies,
// group rosters) that yields the updated parent entity, patches the
// cache in place, and emits one success notification.
func (s *Store[E, P]) mutateRelated(ctx context.Context, op string, call func(ctx context.Context, out *E) error, message string) (E, error) {
	s.begin()
	defer s.end()

	var entity E
	if err := call(ctx, &entity); err != nil {
		return entity, s.fail(op, err)
	}

	s.replaceInCache(entity)
	s.bus.Success(message)
	return entity, nil
}

func (s *Store[E, P]) replaceInCache(updated E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.EntityID() == updated.EntityID() {
			s.items[i] = updated
			return
		}
	}
}

func (s *Store[E, P]) removeFromCache(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// invalidPayload wraps a validator failure as a classified validation
// error so it rides the same path as a server-side 400.
func invalidPayload(entity string, err error) *classify.Error {
	ce := classify.Classify(&escolar.ResponseError{StatusCode: 400}, entity)
	ce.Err = err
	return ce
}
