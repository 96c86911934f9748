package http

import (
	"github.com/gin-gonic/gin"

	"snapgram/internal/client"
	store "snapgram/internal/infrastructure/store/port"
	"snapgram/internal/pkg/posts/presentation/controller"
)

// RegisterRoutes registers feed-post HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, s store.Store, queries *client.QueryCache) {
	createCtl := controller.NewCreatePostController(s, queries)
	recentCtl := controller.NewListRecentPostsController(s, queries)
	searchCtl := controller.NewSearchPostsController(s)
	likeCtl := controller.NewLikePostController(s, queries)
	saveCtl := controller.NewSavePostController(s, queries)
	unsaveCtl := controller.NewUnsavePostController(s, queries)

	// POST /api/v1/posts -> create a post
	g.POST("/posts", createCtl.Handle())

	// GET /api/v1/posts -> recent posts, newest first
	g.GET("/posts", recentCtl.Handle())

	// GET /api/v1/posts/search?q= -> caption search
	g.GET("/posts/search", searchCtl.Handle())

	// POST /api/v1/posts/:postId/like -> toggle like
	g.POST("/posts/:postId/like", likeCtl.Handle())

	// POST /api/v1/posts/:postId/save -> bookmark
	g.POST("/posts/:postId/save", saveCtl.Handle())

	// DELETE /api/v1/posts/:postId/save -> remove bookmark
	g.DELETE("/posts/:postId/save", unsaveCtl.Handle())
}
