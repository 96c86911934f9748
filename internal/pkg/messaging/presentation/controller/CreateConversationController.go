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

// CreateConversationController handles the conversation creation endpoint
// One controller per endpoint

type CreateConversationController struct {
	UC      *usecase.CreateConversationUseCase
	Queries *client.QueryCache
}

func NewCreateConversationController(s store.Store, queries *client.QueryCache) *CreateConversationController {
	repo := adapter.NewDocConversationRepository(s)
	uc := usecase.NewCreateConversationUseCase(repo)
	return &CreateConversationController{UC: uc, Queries: queries}
}

type createConversationRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
}

func (h *CreateConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, usecase.CreateConversationInput{
			ParticipantIDs: []string{req.ParticipantID},
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, messaging.ErrInvalidArity):
				status = http.StatusBadRequest
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if h.Queries != nil {
			h.Queries.InvalidateAfterCreateConversation(ctx, conv.Participants)
		}
		c.JSON(http.StatusCreated, conv)
	}
}
