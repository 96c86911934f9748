package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// DocConversationRepository persists conversations in the generic document
// store, one document per conversation keyed by the canonical participants
// string.
type DocConversationRepository struct {
	store store.Store
}

func NewDocConversationRepository(s store.Store) *DocConversationRepository {
	return &DocConversationRepository{store: s}
}

// Ensure interface compliance at compile time
var _ repository.ConversationRepository = (*DocConversationRepository)(nil)

func (r *DocConversationRepository) FindByParticipants(ctx context.Context, canonical string) (*messaging.Conversation, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocConversationRepository: nil store")
	}
	docs, _, err := r.store.List(ctx, store.CollectionConversations, store.Query{
		Filters: []store.Filter{store.Equal("participants", canonical)},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("conversation lookup: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	conv := docToConversation(docs[0])
	return &conv, nil
}

func (r *DocConversationRepository) GetByID(ctx context.Context, conversationID string) (*messaging.Conversation, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocConversationRepository: nil store")
	}
	doc, err := r.store.Get(ctx, store.CollectionConversations, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("conversation get: %w", err)
	}
	conv := docToConversation(doc)
	return &conv, nil
}

func (r *DocConversationRepository) Create(ctx context.Context, conv messaging.Conversation) (messaging.Conversation, error) {
	if r == nil || r.store == nil {
		return messaging.Conversation{}, errors.New("DocConversationRepository: nil store")
	}
	doc, err := r.store.Create(ctx, store.CollectionConversations, store.Document{
		ID: conv.ID,
		Data: map[string]any{
			"participants":         messaging.EncodeParticipants(conv.Participants),
			"lastMessage":          conv.LastMessage,
			"lastMessageTimestamp": store.EncodeTime(conv.LastMessageTimestamp),
		},
	})
	if err != nil {
		// store.ErrConflict passes through untouched so the usecase can
		// fetch-on-conflict.
		return messaging.Conversation{}, err
	}
	return docToConversation(doc), nil
}

func (r *DocConversationRepository) ListByParticipant(ctx context.Context, userID string, limit int) ([]messaging.Conversation, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocConversationRepository: nil store")
	}
	docs, total, err := r.store.List(ctx, store.CollectionConversations, store.Query{
		Filters: []store.Filter{store.Contains("participants", userID)},
		Order:   store.OrderDesc("lastMessageTimestamp"),
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("conversation list: %w", err)
	}
	convs := make([]messaging.Conversation, 0, len(docs))
	for _, doc := range docs {
		convs = append(convs, docToConversation(doc))
	}
	return convs, total, nil
}

func (r *DocConversationRepository) UpdateSummary(ctx context.Context, conversationID, preview string, ts time.Time) error {
	if r == nil || r.store == nil {
		return errors.New("DocConversationRepository: nil store")
	}
	_, err := r.store.Update(ctx, store.CollectionConversations, conversationID, map[string]any{
		"lastMessage":          preview,
		"lastMessageTimestamp": store.EncodeTime(ts),
	})
	if err != nil {
		return fmt.Errorf("conversation summary update: %w", err)
	}
	return nil
}

func docToConversation(doc store.Document) messaging.Conversation {
	conv := messaging.Conversation{
		ID:           doc.ID,
		Participants: messaging.DecodeParticipants(doc.String("participants")),
		LastMessage:  doc.String("lastMessage"),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if ts, err := store.DecodeTime(doc.String("lastMessageTimestamp")); err == nil {
		conv.LastMessageTimestamp = ts
	}
	return conv
}
