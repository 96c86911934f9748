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
	"snapgram/internal/pkg/follow/application/usecase"
	"snapgram/internal/pkg/follow/persistence/repository/adapter"
)

// FollowController handles the follow endpoint: the authenticated user starts
// following the target.
type FollowController struct {
	UC      *usecase.FollowUseCase
	Check   *usecase.CheckFollowingUseCase
	Queries *client.QueryCache
}

func NewFollowController(s store.Store, queries *client.QueryCache) *FollowController {
	repo := adapter.NewDocFollowRepository(s)
	return &FollowController{
		UC:      usecase.NewFollowUseCase(repo),
		Check:   usecase.NewCheckFollowingUseCase(repo),
		Queries: queries,
	}
}

type followRequest struct {
	FollowingID string `json:"followingId" binding:"required"`
}

func (h *FollowController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req followRequest
		if err := c.ShouldBindJSON(&req); err != nil {
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

		// The insert below is unconditional; skip it when the edge exists so
		// repeat requests stay idempotent.
		already, err := h.Check.Execute(ctx, usecase.CheckFollowingInput{
			FollowerID:  principal.ID,
			FollowingID: req.FollowingID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if already {
			c.JSON(http.StatusOK, gin.H{"following": true})
			return
		}

		edge, err := h.UC.Execute(ctx, usecase.FollowInput{
			FollowerID:  principal.ID,
			FollowingID: req.FollowingID,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if h.Queries != nil {
			h.Queries.InvalidateAfterFollowChange(ctx, principal.ID, req.FollowingID)
		}
		c.JSON(http.StatusCreated, edge)
	}
}
