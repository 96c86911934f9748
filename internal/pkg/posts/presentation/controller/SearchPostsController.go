package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	store "snapgram/internal/infrastructure/store/port"
	"snapgram/internal/pkg/posts/application/usecase"
	"snapgram/internal/pkg/posts/persistence/repository/adapter"
)

// SearchPostsController searches captions. Results are not cached: every term
// is a new key and the hit rate would be negligible.
type SearchPostsController struct {
	UC *usecase.SearchPostsUseCase
}

func NewSearchPostsController(s store.Store) *SearchPostsController {
	repo := adapter.NewDocPostRepository(s)
	return &SearchPostsController{UC: usecase.NewSearchPostsUseCase(repo)}
}

func (h *SearchPostsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		out, total, err := h.UC.Execute(ctx, usecase.SearchPostsInput{Term: term})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, postListResponse{Total: total, Posts: out})
	}
}
