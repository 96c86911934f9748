package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"snapgram/internal/client"
	store "snapgram/internal/infrastructure/store/port"
	posts "snapgram/internal/pkg/posts/application/domain"
	"snapgram/internal/pkg/posts/application/usecase"
	"snapgram/internal/pkg/posts/persistence/repository/adapter"
)

// ListRecentPostsController serves the home feed, newest first.
type ListRecentPostsController struct {
	UC      *usecase.ListRecentPostsUseCase
	Queries *client.QueryCache
}

func NewListRecentPostsController(s store.Store, queries *client.QueryCache) *ListRecentPostsController {
	repo := adapter.NewDocPostRepository(s)
	return &ListRecentPostsController{UC: usecase.NewListRecentPostsUseCase(repo), Queries: queries}
}

type postListResponse struct {
	Total int          `json:"total"`
	Posts []posts.Post `json:"posts"`
}

func (h *ListRecentPostsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		load := func(ctx context.Context) (postListResponse, error) {
			out, total, err := h.UC.Execute(ctx)
			if err != nil {
				return postListResponse{}, err
			}
			return postListResponse{Total: total, Posts: out}, nil
		}

		var out postListResponse
		var err error
		if h.Queries != nil {
			out, err = client.FetchRecentPosts(ctx, h.Queries, load)
		} else {
			out, err = load(ctx)
		}
		if err != nil {
			status := http.StatusInternalServerError
			if !errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, out)
	}
}
