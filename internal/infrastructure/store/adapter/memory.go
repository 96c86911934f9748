package adapter

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"snapgram/internal/infrastructure/store/port"
)

// MemoryStore is an in-memory port.Store used by tests and local tooling.
// It mirrors the Postgres adapter's semantics, including uniqueness
// constraints registered per collection field.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]port.Document
	unique      map[string][]string // collection -> unique fields
	now         func() time.Time
}

// NewMemoryStore creates an empty store with the conversation participants
// uniqueness constraint pre-registered, matching the Postgres schema.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		collections: make(map[string]map[string]port.Document),
		unique:      make(map[string][]string),
		now:         time.Now,
	}
	s.RegisterUnique(port.CollectionConversations, "participants")
	return s
}

// Ensure interface compliance at compile time
var _ port.Store = (*MemoryStore)(nil)

// RegisterUnique adds a uniqueness constraint on a collection field.
func (s *MemoryStore) RegisterUnique(collection, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unique[collection] = append(s.unique[collection], field)
}

// SetClock overrides the timestamp source, for tests that pin time.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func matches(doc port.Document, f port.Filter) bool {
	got := doc.String(f.Field)
	switch f.Op {
	case port.OpContains:
		return strings.Contains(got, f.Value)
	default:
		return got == f.Value
	}
}

func (s *MemoryStore) List(ctx context.Context, collection string, q port.Query) ([]port.Document, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []port.Document
	for _, doc := range s.collections[collection] {
		ok := true
		for _, f := range q.Filters {
			if !matches(doc, f) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cloneDoc(doc))
		}
	}

	if q.Order != nil {
		field, desc := q.Order.Field, q.Order.Desc
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i].String(field), out[j].String(field)
			if desc {
				return a > b
			}
			return a < b
		})
	} else {
		// Stable order for callers that do not sort
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}

	total := len(out)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, total, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (port.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return port.Document{}, port.ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc port.Document) (port.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collections[collection]
	if coll == nil {
		coll = make(map[string]port.Document)
		s.collections[collection] = coll
	}
	if _, exists := coll[doc.ID]; exists {
		return port.Document{}, port.ErrConflict
	}
	for _, field := range s.unique[collection] {
		want := doc.String(field)
		for _, other := range coll {
			if other.String(field) == want {
				return port.Document{}, port.ErrConflict
			}
		}
	}

	now := s.now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	coll[doc.ID] = cloneDoc(doc)
	return doc, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, data map[string]any) (port.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return port.Document{}, port.ErrNotFound
	}
	doc = cloneDoc(doc)
	for k, v := range data {
		doc.Data[k] = v
	}
	doc.UpdatedAt = s.now()
	s.collections[collection][id] = cloneDoc(doc)
	return doc, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return port.ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func cloneDoc(doc port.Document) port.Document {
	data := make(map[string]any, len(doc.Data))
	for k, v := range doc.Data {
		data[k] = v
	}
	doc.Data = data
	return doc
}
