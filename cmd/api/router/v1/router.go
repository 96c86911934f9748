package v1

import (
	"github.com/gin-gonic/gin"

	"snapgram/internal/auth"
	"snapgram/internal/client"
	qport "snapgram/internal/infrastructure/queue/port"
	store "snapgram/internal/infrastructure/store/port"
	followHandler "snapgram/internal/pkg/follow/presentation/http"
	messagingHandler "snapgram/internal/pkg/messaging/presentation/http"
	postsHandler "snapgram/internal/pkg/posts/presentation/http"
	profileadapter "snapgram/internal/repository/adapter"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, authenticator *auth.Authenticator, s store.Store, q qport.Client, queries *client.QueryCache) {
	v1 := r.Group("/api/v1")
	v1.Use(auth.Middleware(authenticator))

	profiles := profileadapter.NewDocProfileRepository(s)

	// Pass the store and queue client down to each context's HTTP layer
	messagingHandler.RegisterRoutes(v1, s, profiles, q, queries)
	followHandler.RegisterRoutes(v1, s, queries)
	postsHandler.RegisterRoutes(v1, s, queries)
	registerUserRoutes(v1, profiles)
}
