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

// CheckFollowingController answers whether followerId follows followingId.
type CheckFollowingController struct {
	UC      *usecase.CheckFollowingUseCase
	Queries *client.QueryCache
}

func NewCheckFollowingController(s store.Store, queries *client.QueryCache) *CheckFollowingController {
	repo := adapter.NewDocFollowRepository(s)
	return &CheckFollowingController{UC: usecase.NewCheckFollowingUseCase(repo), Queries: queries}
}

func (h *CheckFollowingController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		followerID := c.Query("followerId")
		followingID := c.Query("followingId")
		if followerID == "" || followingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "followerId and followingId are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		load := func(ctx context.Context) (bool, error) {
			return h.UC.Execute(ctx, usecase.CheckFollowingInput{
				FollowerID:  followerID,
				FollowingID: followingID,
			})
		}

		var following bool
		var err error
		if h.Queries != nil {
			following, err = client.FetchCheckFollowing(ctx, h.Queries, followerID, followingID, load)
		} else {
			following, err = load(ctx)
		}
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"following": following})
	}
}
