package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/internal/auth"
	storeadapter "snapgram/internal/infrastructure/store/adapter"
	store "snapgram/internal/infrastructure/store/port"
	messaging "snapgram/internal/pkg/messaging/application/domain"
)

func newSendFixture(t *testing.T) (*gin.Engine, *storeadapter.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := storeadapter.NewMemoryStore()
	ctl := NewSendMessageController(s, nil, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		// Simulate an authenticated session.
		ctx := auth.WithPrincipal(c.Request.Context(), auth.Principal{ID: "alice"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.POST("/conversations/:conversationId/messages", ctl.Handle())
	return r, s
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageContentAtLimit(t *testing.T) {
	r, s := newSendFixture(t)

	_, err := s.Create(t.Context(), store.CollectionConversations, store.Document{
		ID:   "conv1",
		Data: map[string]any{"participants": messaging.EncodeParticipants([]string{"alice", "bob"})},
	})
	require.NoError(t, err)

	content := strings.Repeat("a", messaging.MaxContentLength)
	w := postJSON(r, "/conversations/conv1/messages", `{"content":"`+content+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSendMessageContentOverLimit(t *testing.T) {
	r, _ := newSendFixture(t)

	content := strings.Repeat("a", messaging.MaxContentLength+1)
	w := postJSON(r, "/conversations/conv1/messages", `{"content":"`+content+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "maximum length")
}

func TestSendMessageEmptyContent(t *testing.T) {
	r, _ := newSendFixture(t)

	w := postJSON(r, "/conversations/conv1/messages", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
