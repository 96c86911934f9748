package http

import (
	"github.com/gin-gonic/gin"

	"snapgram/internal/client"
	qport "snapgram/internal/infrastructure/queue/port"
	store "snapgram/internal/infrastructure/store/port"
	"snapgram/internal/pkg/messaging/presentation/controller"
	profiles "snapgram/internal/repository/port"
)

// RegisterRoutes registers messaging HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, s store.Store, p profiles.ProfileRepository, q qport.Client, queries *client.QueryCache) {
	createCtl := controller.NewCreateConversationController(s, queries)
	listCtl := controller.NewListConversationsController(s, p, queries)
	listMsgCtl := controller.NewListMessagesController(s, queries)
	sendMsgCtl := controller.NewSendMessageController(s, q, queries)

	// POST /api/v1/conversations -> create or return the pair's conversation
	g.POST("/conversations", createCtl.Handle())

	// GET /api/v1/conversations -> list the current user's conversations
	g.GET("/conversations", listCtl.Handle())

	// GET /api/v1/conversations/:conversationId/messages -> message history
	g.GET("/conversations/:conversationId/messages", listMsgCtl.Handle())

	// POST /api/v1/conversations/:conversationId/messages -> send a message
	g.POST("/conversations/:conversationId/messages", sendMsgCtl.Handle())
}
