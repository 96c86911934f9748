package v1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	profiles "snapgram/internal/repository/port"
)

const userListLimit = 20

// registerUserRoutes wires the read-only profile endpoints. Profiles are
// owned by the account service; these handlers are thin enough that they do
// not warrant per-endpoint controllers.
func registerUserRoutes(g *gin.RouterGroup, repo profiles.ProfileRepository) {
	// GET /api/v1/users?search=&limit= -> list or search profiles
	g.GET("/users", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		limit := userListLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		var (
			out   []profiles.Profile
			total int
			err   error
		)
		if term := c.Query("search"); term != "" {
			out, total, err = repo.Search(ctx, term, limit)
		} else {
			out, total, err = repo.List(ctx, limit)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total, "users": out})
	})

	// GET /api/v1/users/:userId -> one profile
	g.GET("/users/:userId", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		profile, err := repo.GetByID(ctx, c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	})
}
