package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snapgram/internal/auth"
	"snapgram/internal/client"
	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
	"snapgram/internal/pkg/messaging/application/usecase"
	"snapgram/internal/pkg/messaging/persistence/repository/adapter"
)

// ListMessagesController handles the message history endpoint.
type ListMessagesController struct {
	UC      *usecase.ListMessagesUseCase
	Queries *client.QueryCache
}

func NewListMessagesController(s store.Store, queries *client.QueryCache) *ListMessagesController {
	repo := adapter.NewDocMessageRepository(s)
	uc := usecase.NewListMessagesUseCase(repo)
	return &ListMessagesController{UC: uc, Queries: queries}
}

type messageListResponse struct {
	Total    int                 `json:"total"`
	Messages []messaging.Message `json:"messages"`
}

func (h *ListMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID := c.Param("conversationId")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		load := func(ctx context.Context) (messageListResponse, error) {
			msgs, total, err := h.UC.Execute(ctx, usecase.ListMessagesInput{ConversationID: conversationID})
			if err != nil {
				return messageListResponse{}, err
			}
			return messageListResponse{Total: total, Messages: msgs}, nil
		}

		var out messageListResponse
		var err error
		if h.Queries != nil {
			out, err = client.FetchMessageList(ctx, h.Queries, conversationID, load)
		} else {
			out, err = load(ctx)
		}
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, auth.ErrUnauthenticated) {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, out)
	}
}
