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
	"snapgram/internal/pkg/posts/application/usecase"
	"snapgram/internal/pkg/posts/persistence/repository/adapter"
)

// LikePostController toggles the authenticated user's like on a post.
type LikePostController struct {
	UC      *usecase.LikePostUseCase
	Queries *client.QueryCache
}

func NewLikePostController(s store.Store, queries *client.QueryCache) *LikePostController {
	repo := adapter.NewDocPostRepository(s)
	return &LikePostController{UC: usecase.NewLikePostUseCase(repo), Queries: queries}
}

func (h *LikePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("postId")
		if postID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "postId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		post, err := h.UC.Execute(ctx, usecase.LikePostInput{PostID: postID})
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
			h.Queries.InvalidateAfterPostChange(ctx, postID)
		}
		c.JSON(http.StatusOK, post)
	}
}
