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

// SavePostController bookmarks a post for the authenticated user.
type SavePostController struct {
	UC      *usecase.SavePostUseCase
	Queries *client.QueryCache
}

func NewSavePostController(s store.Store, queries *client.QueryCache) *SavePostController {
	repo := adapter.NewDocPostRepository(s)
	return &SavePostController{UC: usecase.NewSavePostUseCase(repo), Queries: queries}
}

func (h *SavePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("postId")
		if postID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "postId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		save, err := h.UC.Execute(ctx, usecase.SavePostInput{PostID: postID})
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
		c.JSON(http.StatusCreated, save)
	}
}

// UnsavePostController removes a bookmark. Removing a bookmark that does not
// exist succeeds with null.
type UnsavePostController struct {
	UC      *usecase.UnsavePostUseCase
	Queries *client.QueryCache
}

func NewUnsavePostController(s store.Store, queries *client.QueryCache) *UnsavePostController {
	repo := adapter.NewDocPostRepository(s)
	return &UnsavePostController{UC: usecase.NewUnsavePostUseCase(repo), Queries: queries}
}

func (h *UnsavePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("postId")
		if postID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "postId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		save, err := h.UC.Execute(ctx, usecase.SavePostInput{PostID: postID})
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
		c.JSON(http.StatusOK, gin.H{"removed": save})
	}
}
