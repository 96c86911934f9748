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
	posts "snapgram/internal/pkg/posts/application/domain"
	"snapgram/internal/pkg/posts/application/usecase"
	"snapgram/internal/pkg/posts/persistence/repository/adapter"
)

// CreatePostController handles the post creation endpoint
// One controller per endpoint

type CreatePostController struct {
	UC      *usecase.CreatePostUseCase
	Queries *client.QueryCache
}

func NewCreatePostController(s store.Store, queries *client.QueryCache) *CreatePostController {
	repo := adapter.NewDocPostRepository(s)
	return &CreatePostController{UC: usecase.NewCreatePostUseCase(repo), Queries: queries}
}

type createPostRequest struct {
	Caption  string `json:"caption" binding:"required"`
	Tags     string `json:"tags"`
	ImageURL string `json:"imageUrl"`
	Location string `json:"location"`
}

func (h *CreatePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		post, err := h.UC.Execute(ctx, usecase.CreatePostInput{
			Caption:  req.Caption,
			Tags:     req.Tags,
			ImageURL: req.ImageURL,
			Location: req.Location,
		})
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, posts.ErrEmptyCaption):
				status = http.StatusBadRequest
			case errors.Is(err, usecase.ErrPersistence):
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if h.Queries != nil {
			h.Queries.InvalidateAfterPostChange(ctx, post.ID)
		}
		c.JSON(http.StatusCreated, post)
	}
}
