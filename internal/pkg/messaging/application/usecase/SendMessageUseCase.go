package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"snapgram/internal/auth"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageInput carries the data needed to send a new message. The sender
// is the authenticated principal; content length is validated at the
// presentation boundary, not here.
type SendMessageInput struct {
	ConversationID string
	Content        string
}

// SendMessageUseCase appends a message and refreshes the parent
// conversation's summary fields.
type SendMessageUseCase struct {
	Messages      repository.MessageRepository
	Conversations repository.ConversationRepository
}

func NewSendMessageUseCase(messages repository.MessageRepository, conversations repository.ConversationRepository) *SendMessageUseCase {
	return &SendMessageUseCase{Messages: messages, Conversations: conversations}
}

// Execute inserts the message, then updates the conversation's lastMessage
// preview and lastMessageTimestamp. The summary update is a second,
// independent write: when it fails after the insert succeeded, the message
// stands and the stale summary is logged, not rolled back.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*messaging.Message, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if in.ConversationID == "" {
		return nil, fmt.Errorf("conversationId is required")
	}

	msg := messaging.Message{
		ID:             uuid.NewString(),
		ConversationID: in.ConversationID,
		SenderID:       principal.ID,
		Content:        in.Content,
		Timestamp:      time.Now().UTC(),
		IsRead:         false,
	}
	created, err := uc.Messages.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	preview := messaging.Preview(in.Content)
	if err := uc.Conversations.UpdateSummary(ctx, in.ConversationID, preview, time.Now().UTC()); err != nil {
		log.Warn().
			Str("conversation_id", in.ConversationID).
			Str("message_id", created.ID).
			Err(err).
			Msg("conversation summary update failed, summary is stale")
	}

	return &created, nil
}
