package posts

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyCaption = errors.New("posts: caption is required")

// Post is a feed entry. Likes holds the IDs of users who liked the post; the
// whole array is replaced on each like/unlike, mirroring the store's
// document-update semantics.
type Post struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creatorId"`
	Caption   string    `json:"caption"`
	Tags      []string  `json:"tags"`
	ImageURL  string    `json:"imageUrl"`
	Location  string    `json:"location,omitempty"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Save marks a post bookmarked by a user.
type Save struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PostID string `json:"postId"`
}

// ParseTags splits a comma-separated tag string into trimmed tags.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
