package messaging

import (
	"strings"
	"time"
)

// MaxContentLength is the client-side cap on message content. It is enforced
// at the presentation boundary, not by the repository, which accepts content
// of any length.
const MaxContentLength = 500

// previewLength caps the conversation summary preview.
const previewLength = 50

// Message is an immutable log entry in a conversation. IsRead is set to
// false at creation; nothing in this core transitions it to true (read
// receipts are carried through the data model but unimplemented).
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	IsRead         bool      `json:"isRead"`
}

// Preview truncates content for the parent conversation's lastMessage field:
// at most previewLength characters plus an ellipsis marker when truncated.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}

// ValidateContent applies the presentation-boundary rules: non-empty after
// trimming and no longer than MaxContentLength.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len([]rune(content)) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
