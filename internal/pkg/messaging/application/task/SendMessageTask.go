package task

import (
	"context"
	"encoding/json"
	"time"

	"snapgram/internal/auth"
	qport "snapgram/internal/infrastructure/queue/port"
	"snapgram/internal/pkg/messaging/application/usecase"
	repository "snapgram/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageTaskType is the queue task name for deferred message sends.
const SendMessageTaskType = "messaging:send_message"

// SendMessageTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type SendMessageTaskPayload struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Content        string `json:"content"`
}

// RegisterSendMessageTask binds the deferred-send handler to the provided
// server. The sender identity travels in the payload and is restored onto the
// context the usecase sees.
func RegisterSendMessageTask(srv qport.Server, messages repository.MessageRepository, conversations repository.ConversationRepository) {
	srv.Register(SendMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendMessageTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return err
		}

		uc := usecase.NewSendMessageUseCase(messages, conversations)

		ctx = auth.WithPrincipal(ctx, auth.Principal{ID: p.SenderID})
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := uc.Execute(ctx, usecase.SendMessageInput{
			ConversationID: p.ConversationID,
			Content:        p.Content,
		})
		return err
	})
}
