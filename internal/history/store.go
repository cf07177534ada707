// Package history keeps the bounded, persisted collection of past
// assessments and the formatting helpers the history views need.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orensade/Intub/internal/assessment"
	"github.com/orensade/Intub/internal/shared/storage/kv"
	"github.com/orensade/Intub/internal/shared/telemetry"
)

const (
	// MaxItems bounds the collection; the oldest item is evicted beyond it.
	MaxItems = 10

	// storageKey names the single persisted record holding the whole
	// collection as a JSON array, newest first.
	storageKey = "airway.history.v1"
)

// Store owns the assessment history. Every mutation rewrites the whole
// persisted record; a mutex serializes the read-modify-write cycle so the
// store is safe under a multi-threaded host. Persistence failures are logged
// and swallowed: the in-memory collection stays authoritative for the
// session and history never blocks the analysis flow.
type Store struct {
	mu      sync.Mutex
	backend kv.Store
	items   []Item
	lastTS  int64
	now     func() time.Time
	newID   func() string
}

// NewStore constructs a Store over the given persistence backend.
func NewStore(backend kv.Store) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load reads the persisted collection. A missing record or any read or
// deserialization failure leaves the store empty rather than failing session
// startup.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.backend.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			telemetry.Warn("history.load.failed", map[string]any{"err": err.Error()})
		}
		s.items = nil
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		telemetry.Warn("history.load.failed", map[string]any{"err": err.Error()})
		s.items = nil
		return
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	s.items = items
	for _, item := range items {
		if item.Timestamp > s.lastTS {
			s.lastTS = item.Timestamp
		}
	}
}

// Add records a completed assessment: a fresh id and timestamp, prepend,
// truncate to MaxItems, persist. The result is accepted as-is; the producer
// owns score/category consistency. Add never fails: the new item's id is
// returned even when persistence does not succeed.
func (s *Store) Add(ctx context.Context, result assessment.Result, thumbnail string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:             s.newID(),
		Timestamp:      s.nextTimestamp(),
		Score:          result.Score,
		RiskCategory:   result.RiskCategory,
		Concerns:       append([]string(nil), result.Concerns...),
		ImagesAnalyzed: result.ImagesAnalyzed,
		Thumbnail:      thumbnail,
	}

	s.items = append([]Item{item}, s.items...)
	if len(s.items) > MaxItems {
		s.items = s.items[:MaxItems]
	}
	s.persist(ctx)
	return item.ID
}

// Get returns the item with the given id, or ErrNotFound. It has no side
// effects.
func (s *Store) Get(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Delete removes the item with the given id and persists. Deleting an absent
// id is a no-op; the collection (and the persisted record) stay unchanged.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the collection and persists the empty record.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// Items returns a snapshot of the collection, newest first.
func (s *Store) Items(ctx context.Context) []Item {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Len returns the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Result reconstructs the analysis result view of a stored item.
func (i Item) Result() assessment.Result {
	return assessment.Result{
		Score:          i.Score,
		RiskCategory:   i.RiskCategory,
		Concerns:       append([]string(nil), i.Concerns...),
		ImagesAnalyzed: i.ImagesAnalyzed,
	}
}

// nextTimestamp returns the current instant in ms, clamped so timestamps
// never decrease across insertions even if the wall clock steps backwards.
// Callers must hold s.mu.
func (s *Store) nextTimestamp() int64 {
	ts := s.now().UnixMilli()
	if ts < s.lastTS {
		ts = s.lastTS
	}
	s.lastTS = ts
	return ts
}

// persist serializes the whole collection to the backend. Callers must hold
// s.mu. Failures are logged, never propagated.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		telemetry.Error("history.persist.failed", map[string]any{"err": err.Error()})
		return
	}
	if err := s.backend.Set(ctx, storageKey, string(data)); err != nil {
		telemetry.Error("history.persist.failed", map[string]any{"err": err.Error(), "items": len(items)})
	}
}
