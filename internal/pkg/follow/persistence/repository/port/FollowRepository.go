package repository

import (
	"context"

	follow "snapgram/internal/pkg/follow/application/domain"
)

// FollowRepository defines persistence operations for directed follow edges.
type FollowRepository interface {
	// Create inserts an edge unconditionally; it performs no prior-existence
	// check, so duplicate edges are possible when called twice.
	Create(ctx context.Context, followerID, followingID string) (follow.Edge, error)

	// FindEdge looks up the edge for the exact (follower, following) pair.
	// Absence is a soft not-found: (nil, nil).
	FindEdge(ctx context.Context, followerID, followingID string) (*follow.Edge, error)

	// Delete removes an edge by id.
	Delete(ctx context.Context, edgeID string) error

	// ListFollowers returns the follower IDs of every edge pointing at userID.
	ListFollowers(ctx context.Context, userID string) ([]string, error)

	// ListFollowing returns the following IDs of every edge originating at userID.
	ListFollowing(ctx context.Context, userID string) ([]string, error)
}
