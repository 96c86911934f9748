package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snapgram/internal/auth"
	"snapgram/internal/client"
	queueport "snapgram/internal/infrastructure/queue/port"
	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	"snapgram/internal/pkg/messaging/application/task"
	"snapgram/internal/pkg/messaging/application/usecase"
	"snapgram/internal/pkg/messaging/persistence/repository/adapter"
)

// SendMessageController handles the send-message endpoint. Content length is
// enforced here, at the boundary; the repository below accepts any length.
type SendMessageController struct {
	UC            *usecase.SendMessageUseCase
	Conversations *adapter.DocConversationRepository
	Q             queueport.Client
	Queries       *client.QueryCache
}

func NewSendMessageController(s store.Store, q queueport.Client, queries *client.QueryCache) *SendMessageController {
	conversations := adapter.NewDocConversationRepository(s)
	messages := adapter.NewDocMessageRepository(s)
	uc := usecase.NewSendMessageUseCase(messages, conversations)
	return &SendMessageController{UC: uc, Conversations: conversations, Q: q, Queries: queries}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	// Deferred routes the send through the background queue instead of
	// writing inline; the response is 202 with the task id.
	Deferred bool `json:"deferred"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := messaging.ValidateContent(req.Content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		principal, err := auth.RequirePrincipal(ctx)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if req.Deferred && h.Q != nil {
			payload := task.SendMessageTaskPayload{
				ConversationID: conversationID,
				SenderID:       principal.ID,
				Content:        req.Content,
			}
			b, err := json.Marshal(payload)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode task payload"})
				return
			}
			opts := queueport.EnqueueOption{Queue: "messaging", MaxRetry: 10}
			id, err := h.Q.Enqueue(ctx, queueport.Task{Type: task.SendMessageTaskType, Payload: b}, opts)
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue message"})
				return
			}
			c.JSON(http.StatusAccepted, gin.H{
				"status":         "queued",
				"taskId":         id,
				"conversationId": conversationID,
			})
			return
		}

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ConversationID: conversationID,
			Content:        req.Content,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if h.Queries != nil {
			participants := []string{principal.ID}
			if conv, convErr := h.Conversations.GetByID(ctx, conversationID); convErr == nil && conv != nil {
				participants = conv.Participants
			}
			h.Queries.InvalidateAfterSendMessage(ctx, conversationID, participants)
		}
		c.JSON(http.StatusCreated, msg)
	}
}
