package repository

import (
	"context"

	posts "snapgram/internal/pkg/posts/application/domain"
)

// PostRepository defines persistence operations for posts and saves.
type PostRepository interface {
	Create(ctx context.Context, p posts.Post) (posts.Post, error)
	GetByID(ctx context.Context, id string) (posts.Post, error)

	// ListRecent returns posts ordered by creation time descending.
	ListRecent(ctx context.Context, limit int) ([]posts.Post, int, error)

	// Search returns posts whose caption contains term.
	Search(ctx context.Context, term string, limit int) ([]posts.Post, int, error)

	// SetLikes replaces the post's likes array.
	SetLikes(ctx context.Context, postID string, likes []string) (posts.Post, error)

	// CreateSave bookmarks a post for a user.
	CreateSave(ctx context.Context, userID, postID string) (posts.Save, error)

	// FindSave looks up a save record. Absence is a soft not-found: (nil, nil).
	FindSave(ctx context.Context, userID, postID string) (*posts.Save, error)

	// DeleteSave removes a save record by id.
	DeleteSave(ctx context.Context, saveID string) error
}
