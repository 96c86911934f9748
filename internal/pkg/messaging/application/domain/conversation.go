package messaging

import "time"

// UserSummary is the public profile attached to a conversation at read time.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
}

// Conversation is a 1:1 thread between two users. Participants is always the
// decoded, sorted pair. OtherUser is derived at read time and never stored;
// it stays nil when the counterpart profile could not be fetched.
type Conversation struct {
	ID                   string       `json:"id"`
	Participants         []string     `json:"participants"`
	OtherUser            *UserSummary `json:"otherUser,omitempty"`
	LastMessage          string       `json:"lastMessage"`
	LastMessageTimestamp time.Time    `json:"lastMessageTimestamp"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// Counterpart returns the first participant that differs from userID. For a
// userID outside the pair this is simply the first participant; "" only when
// every participant equals userID.
func (c Conversation) Counterpart(userID string) string {
	for _, id := range c.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}
