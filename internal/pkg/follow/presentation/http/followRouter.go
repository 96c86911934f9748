package http

import (
	"github.com/gin-gonic/gin"

	"snapgram/internal/client"
	store "snapgram/internal/infrastructure/store/port"
	"snapgram/internal/pkg/follow/presentation/controller"
)

// RegisterRoutes registers follow-graph HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, s store.Store, queries *client.QueryCache) {
	followCtl := controller.NewFollowController(s, queries)
	unfollowCtl := controller.NewUnfollowController(s, queries)
	checkCtl := controller.NewCheckFollowingController(s, queries)
	followersCtl := controller.NewListFollowersController(s, queries)
	followingCtl := controller.NewListFollowingController(s, queries)

	// POST /api/v1/follows -> current user follows {followingId}
	g.POST("/follows", followCtl.Handle())

	// DELETE /api/v1/follows -> current user unfollows {followingId}
	g.DELETE("/follows", unfollowCtl.Handle())

	// GET /api/v1/follows/check?followerId=&followingId= -> relationship check
	g.GET("/follows/check", checkCtl.Handle())

	// GET /api/v1/users/:userId/followers -> who follows the user
	g.GET("/users/:userId/followers", followersCtl.Handle())

	// GET /api/v1/users/:userId/following -> who the user follows
	g.GET("/users/:userId/following", followingCtl.Handle())
}
