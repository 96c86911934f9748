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
	profiles "snapgram/internal/repository/port"
)

// ListConversationsController handles the conversation list endpoint for the
// authenticated user.
type ListConversationsController struct {
	UC      *usecase.ListConversationsUseCase
	Queries *client.QueryCache
}

func NewListConversationsController(s store.Store, p profiles.ProfileRepository, queries *client.QueryCache) *ListConversationsController {
	repo := adapter.NewDocConversationRepository(s)
	uc := usecase.NewListConversationsUseCase(repo, p)
	return &ListConversationsController{UC: uc, Queries: queries}
}

type conversationListResponse struct {
	Total         int                      `json:"total"`
	Conversations []messaging.Conversation `json:"conversations"`
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		principal, err := auth.RequirePrincipal(ctx)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		load := func(ctx context.Context) (conversationListResponse, error) {
			convs, total, err := h.UC.Execute(ctx)
			if err != nil {
				return conversationListResponse{}, err
			}
			return conversationListResponse{Total: total, Conversations: convs}, nil
		}

		var out conversationListResponse
		if h.Queries != nil {
			out, err = client.FetchConversationList(ctx, h.Queries, principal.ID, load)
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
