package port

import (
	"context"
	"time"
)

// Collection names used by the application. The store itself is
// collection-agnostic; these constants keep callers consistent.
const (
	CollectionConversations = "conversations"
	CollectionMessages      = "messages"
	CollectionFollowers     = "followers"
	CollectionUsers         = "users"
	CollectionPosts         = "posts"
	CollectionSaves         = "saves"
)

// TimeLayout is the wire format for instants stored inside documents.
// Fixed-width milliseconds keep string sort order equal to chronological
// order, which the store relies on for timestamp ordering.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// EncodeTime renders t in the document timestamp format (always UTC).
func EncodeTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// DecodeTime parses a document timestamp, tolerating plain RFC 3339 values
// written by earlier clients.
func DecodeTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Op is a filter operator.
type Op int

const (
	// OpEqual matches documents whose field equals the value exactly.
	OpEqual Op = iota
	// OpContains matches documents whose field contains the value as a substring.
	OpContains
)

// Filter restricts a List call to documents matching a field predicate.
type Filter struct {
	Field string
	Op    Op
	Value string
}

// Order sorts List results by a document field.
type Order struct {
	Field string
	Desc  bool
}

// Query combines filters, ordering and a result cap.
// A zero Limit means no cap.
type Query struct {
	Filters []Filter
	Order   *Order
	Limit   int
}

// Document is a stored record. Data holds the application-level fields;
// ID and the two instants are maintained by the store.
type Document struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      map[string]any
}

// String returns the named field as a string, or "" when absent or not a string.
func (d Document) String(field string) string {
	s, _ := d.Data[field].(string)
	return s
}

// Bool returns the named field as a bool.
func (d Document) Bool(field string) bool {
	b, _ := d.Data[field].(bool)
	return b
}

// Strings returns the named field as a string slice. JSON decoding yields
// []any, so both representations are handled.
func (d Document) Strings(field string) []string {
	switch v := d.Data[field].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Equal builds an equality filter.
func Equal(field, value string) Filter {
	return Filter{Field: field, Op: OpEqual, Value: value}
}

// Contains builds a substring filter.
func Contains(field, value string) Filter {
	return Filter{Field: field, Op: OpContains, Value: value}
}

// OrderAsc / OrderDesc build sort clauses.
func OrderAsc(field string) *Order  { return &Order{Field: field} }
func OrderDesc(field string) *Order { return &Order{Field: field, Desc: true} }

// Store is the generic document collaborator every repository is built on.
// Implementations must be safe for concurrent use.
type Store interface {
	// List returns documents matching q plus the total number of matches
	// before the limit was applied.
	List(ctx context.Context, collection string, q Query) ([]Document, int, error)

	// Get fetches one document by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Create inserts doc (caller supplies the id). Returns ErrConflict when
	// a uniqueness constraint on the collection is violated.
	Create(ctx context.Context, collection string, doc Document) (Document, error)

	// Update merges data into the document's fields and returns the result.
	// Returns ErrNotFound when the document does not exist.
	Update(ctx context.Context, collection, id string, data map[string]any) (Document, error)

	// Delete removes a document by id. Deleting a missing document is an error.
	Delete(ctx context.Context, collection, id string) error

	// Ping verifies connectivity with the backing store.
	Ping(ctx context.Context) error

	// Close releases resources held by the store.
	Close() error
}

// ErrNotFound is returned by Get/Update/Delete for missing documents.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "store: document not found" }

// ErrConflict is returned by Create when an insert violates a uniqueness
// constraint (e.g. the canonical participants string of a conversation).
var ErrConflict = errConflict{}

type errConflict struct{}

func (errConflict) Error() string { return "store: unique constraint conflict" }
