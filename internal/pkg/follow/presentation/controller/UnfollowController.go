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

// UnfollowController handles the unfollow endpoint. A missing edge is not an
// error: unfollowing someone you do not follow succeeds with null.
type UnfollowController struct {
	UC      *usecase.UnfollowUseCase
	Queries *client.QueryCache
}

func NewUnfollowController(s store.Store, queries *client.QueryCache) *UnfollowController {
	repo := adapter.NewDocFollowRepository(s)
	return &UnfollowController{UC: usecase.NewUnfollowUseCase(repo), Queries: queries}
}

type unfollowRequest struct {
	FollowingID string `json:"followingId" binding:"required"`
}

func (h *UnfollowController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req unfollowRequest
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

		edge, err := h.UC.Execute(ctx, usecase.UnfollowInput{
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
		c.JSON(http.StatusOK, gin.H{"removed": edge})
	}
}
