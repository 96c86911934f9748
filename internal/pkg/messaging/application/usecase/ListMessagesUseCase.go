package usecase

import (
	"context"
	"fmt"

	messaging "snapgram/internal/pkg/messaging/application/domain"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// messageListLimit caps the message history returned per conversation; there
// is no pagination beyond the cap.
const messageListLimit = 100

// ListMessagesInput wraps the conversation identifier.
type ListMessagesInput struct {
	ConversationID string
}

// ListMessagesUseCase fetches a conversation's messages ordered by timestamp
// ascending.
type ListMessagesUseCase struct {
	Repo repository.MessageRepository
}

func NewListMessagesUseCase(repo repository.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

// Execute returns the messages plus the total match count.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]messaging.Message, int, error) {
	if in.ConversationID == "" {
		return nil, 0, fmt.Errorf("conversationId is required")
	}
	msgs, total, err := uc.Repo.ListByConversation(ctx, in.ConversationID, messageListLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, total, nil
}
