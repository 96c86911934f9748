package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snapgram/internal/client"
	store "snapgram/internal/infrastructure/store/port"
	"snapgram/internal/pkg/follow/application/usecase"
	"snapgram/internal/pkg/follow/persistence/repository/adapter"
)

// ListFollowersController returns the follower IDs of a user.
type ListFollowersController struct {
	UC      *usecase.ListFollowersUseCase
	Queries *client.QueryCache
}

func NewListFollowersController(s store.Store, queries *client.QueryCache) *ListFollowersController {
	repo := adapter.NewDocFollowRepository(s)
	return &ListFollowersController{UC: usecase.NewListFollowersUseCase(repo), Queries: queries}
}

func (h *ListFollowersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		load := func(ctx context.Context) ([]string, error) {
			return h.UC.Execute(ctx, usecase.ListFollowersInput{UserID: userID})
		}

		ids, err := fetchIDList(ctx, h.Queries, load, func(ctx context.Context, qc *client.QueryCache) ([]string, error) {
			return client.FetchFollowers(ctx, qc, userID, load)
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"userIds": ids})
	}
}

// ListFollowingController returns the IDs a user follows.
type ListFollowingController struct {
	UC      *usecase.ListFollowingUseCase
	Queries *client.QueryCache
}

func NewListFollowingController(s store.Store, queries *client.QueryCache) *ListFollowingController {
	repo := adapter.NewDocFollowRepository(s)
	return &ListFollowingController{UC: usecase.NewListFollowingUseCase(repo), Queries: queries}
}

func (h *ListFollowingController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		load := func(ctx context.Context) ([]string, error) {
			return h.UC.Execute(ctx, usecase.ListFollowingInput{UserID: userID})
		}

		ids, err := fetchIDList(ctx, h.Queries, load, func(ctx context.Context, qc *client.QueryCache) ([]string, error) {
			return client.FetchFollowing(ctx, qc, userID, load)
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"userIds": ids})
	}
}

func fetchIDList(
	ctx context.Context,
	qc *client.QueryCache,
	direct func(ctx context.Context) ([]string, error),
	cached func(ctx context.Context, qc *client.QueryCache) ([]string, error),
) ([]string, error) {
	if qc == nil {
		return direct(ctx)
	}
	return cached(ctx, qc)
}
