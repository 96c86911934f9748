package repository

import (
	"context"
	"time"

	messaging "snapgram/internal/pkg/messaging/application/domain"
)

// ConversationRepository defines persistence operations for 1:1 conversations.
type ConversationRepository interface {
	// FindByParticipants looks up a conversation by its canonical participants
	// string. Absence is a soft not-found: (nil, nil).
	FindByParticipants(ctx context.Context, canonical string) (*messaging.Conversation, error)

	// GetByID fetches a conversation by id. Absence is a soft not-found:
	// (nil, nil).
	GetByID(ctx context.Context, conversationID string) (*messaging.Conversation, error)

	// Create inserts a new conversation. Returns store.ErrConflict when a
	// conversation with the same canonical participants string already exists.
	Create(ctx context.Context, conv messaging.Conversation) (messaging.Conversation, error)

	// ListByParticipant returns conversations containing userID ordered by
	// lastMessageTimestamp descending, plus the total match count.
	ListByParticipant(ctx context.Context, userID string, limit int) ([]messaging.Conversation, int, error)

	// UpdateSummary refreshes the conversation's lastMessage preview and
	// lastMessageTimestamp.
	UpdateSummary(ctx context.Context, conversationID, preview string, ts time.Time) error
}

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	// ListByConversation returns messages ordered by timestamp ascending,
	// capped at limit, plus the total match count.
	ListByConversation(ctx context.Context, conversationID string, limit int) ([]messaging.Message, int, error)

	// Create appends a message to its conversation.
	Create(ctx context.Context, m messaging.Message) (messaging.Message, error)
}
