package adapter

import (
	"context"
	"errors"
	"fmt"

	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// DocMessageRepository persists messages in the generic document store.
type DocMessageRepository struct {
	store store.Store
}

func NewDocMessageRepository(s store.Store) *DocMessageRepository {
	return &DocMessageRepository{store: s}
}

// Ensure interface compliance at compile time
var _ repository.MessageRepository = (*DocMessageRepository)(nil)

func (r *DocMessageRepository) ListByConversation(ctx context.Context, conversationID string, limit int) ([]messaging.Message, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocMessageRepository: nil store")
	}
	docs, total, err := r.store.List(ctx, store.CollectionMessages, store.Query{
		Filters: []store.Filter{store.Equal("conversationId", conversationID)},
		Order:   store.OrderAsc("timestamp"),
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("message list: %w", err)
	}
	msgs := make([]messaging.Message, 0, len(docs))
	for _, doc := range docs {
		msgs = append(msgs, docToMessage(doc))
	}
	return msgs, total, nil
}

func (r *DocMessageRepository) Create(ctx context.Context, m messaging.Message) (messaging.Message, error) {
	if r == nil || r.store == nil {
		return messaging.Message{}, errors.New("DocMessageRepository: nil store")
	}
	doc, err := r.store.Create(ctx, store.CollectionMessages, store.Document{
		ID: m.ID,
		Data: map[string]any{
			"conversationId": m.ConversationID,
			"senderId":       m.SenderID,
			"content":        m.Content,
			"timestamp":      store.EncodeTime(m.Timestamp),
			"isRead":         m.IsRead,
		},
	})
	if err != nil {
		return messaging.Message{}, fmt.Errorf("message create: %w", err)
	}
	return docToMessage(doc), nil
}

func docToMessage(doc store.Document) messaging.Message {
	m := messaging.Message{
		ID:             doc.ID,
		ConversationID: doc.String("conversationId"),
		SenderID:       doc.String("senderId"),
		Content:        doc.String("content"),
		IsRead:         doc.Bool("isRead"),
	}
	if ts, err := store.DecodeTime(doc.String("timestamp")); err == nil {
		m.Timestamp = ts
	}
	return m
}
