package adapter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/internal/infrastructure/store/port"
)

func TestMemoryStoreCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc, err := s.Create(ctx, port.CollectionMessages, port.Document{
		ID:   "m1",
		Data: map[string]any{"content": "hello"},
	})
	require.NoError(t, err)
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := s.Get(ctx, port.CollectionMessages, "m1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.String("content"))

	require.NoError(t, s.Delete(ctx, port.CollectionMessages, "m1"))
	_, err = s.Get(ctx, port.CollectionMessages, "m1")
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, port.CollectionMessages, "m1"), port.ErrNotFound)
}

func TestMemoryStoreUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Create(ctx, port.CollectionConversations, port.Document{
		ID:   "c1",
		Data: map[string]any{"participants": "alice,bob"},
	})
	require.NoError(t, err)

	_, err = s.Create(ctx, port.CollectionConversations, port.Document{
		ID:   "c2",
		Data: map[string]any{"participants": "alice,bob"},
	})
	assert.ErrorIs(t, err, port.ErrConflict)
}

func TestMemoryStoreListFilterSortLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, port.CollectionMessages, port.Document{
			ID: fmt.Sprintf("m%d", i),
			Data: map[string]any{
				"conversationId": "c1",
				"timestamp":      fmt.Sprintf("2025-01-01T00:00:0%d.000Z", i),
			},
		})
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, port.CollectionMessages, port.Document{
		ID:   "other",
		Data: map[string]any{"conversationId": "c2", "timestamp": "2025-01-01T00:00:09.000Z"},
	})
	require.NoError(t, err)

	docs, total, err := s.List(ctx, port.CollectionMessages, port.Query{
		Filters: []port.Filter{port.Equal("conversationId", "c1")},
		Order:   port.OrderDesc("timestamp"),
		Limit:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, docs, 3)
	assert.Equal(t, "m4", docs[0].ID)
	assert.Equal(t, "m2", docs[2].ID)
}

func TestMemoryStoreContainsFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Create(ctx, port.CollectionConversations, port.Document{
		ID:   "c1",
		Data: map[string]any{"participants": "alice,bob"},
	})
	require.NoError(t, err)

	docs, _, err := s.List(ctx, port.CollectionConversations, port.Query{
		Filters: []port.Filter{port.Contains("participants", "bob")},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	docs, _, err = s.List(ctx, port.CollectionConversations, port.Query{
		Filters: []port.Filter{port.Contains("participants", "carol")},
	})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Create(ctx, port.CollectionConversations, port.Document{
		ID:   "c1",
		Data: map[string]any{"participants": "a,b", "lastMessage": ""},
	})
	require.NoError(t, err)

	doc, err := s.Update(ctx, port.CollectionConversations, "c1", map[string]any{"lastMessage": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.String("lastMessage"))
	assert.Equal(t, "a,b", doc.String("participants"))

	_, err = s.Update(ctx, port.CollectionConversations, "nope", map[string]any{"x": "y"})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestTimeRoundTrip(t *testing.T) {
	encoded := port.EncodeTime(mustParse(t, "2025-06-01T12:30:45.123Z"))
	assert.Equal(t, "2025-06-01T12:30:45.123Z", encoded)

	decoded, err := port.DecodeTime(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, port.EncodeTime(decoded))

	// Plain RFC 3339 without millis still parses
	legacy, err := port.DecodeTime("2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, legacy.Year())
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(port.TimeLayout, s)
	require.NoError(t, err)
	return ts
}
