package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	store "snapgram/internal/infrastructure/store/port"
	follow "snapgram/internal/pkg/follow/application/domain"
	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// DocFollowRepository persists follow edges in the generic document store.
type DocFollowRepository struct {
	store store.Store
}

func NewDocFollowRepository(s store.Store) *DocFollowRepository {
	return &DocFollowRepository{store: s}
}

// Ensure interface compliance at compile time
var _ repository.FollowRepository = (*DocFollowRepository)(nil)

func (r *DocFollowRepository) Create(ctx context.Context, followerID, followingID string) (follow.Edge, error) {
	if r == nil || r.store == nil {
		return follow.Edge{}, errors.New("DocFollowRepository: nil store")
	}
	doc, err := r.store.Create(ctx, store.CollectionFollowers, store.Document{
		ID: uuid.NewString(),
		Data: map[string]any{
			"followerId":  followerID,
			"followingId": followingID,
			"createdAt":   store.EncodeTime(time.Now()),
		},
	})
	if err != nil {
		return follow.Edge{}, fmt.Errorf("follow create: %w", err)
	}
	return docToEdge(doc), nil
}

func (r *DocFollowRepository) FindEdge(ctx context.Context, followerID, followingID string) (*follow.Edge, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocFollowRepository: nil store")
	}
	docs, _, err := r.store.List(ctx, store.CollectionFollowers, store.Query{
		Filters: []store.Filter{
			store.Equal("followerId", followerID),
			store.Equal("followingId", followingID),
		},
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("follow lookup: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	edge := docToEdge(docs[0])
	return &edge, nil
}

func (r *DocFollowRepository) Delete(ctx context.Context, edgeID string) error {
	if r == nil || r.store == nil {
		return errors.New("DocFollowRepository: nil store")
	}
	if err := r.store.Delete(ctx, store.CollectionFollowers, edgeID); err != nil {
		return fmt.Errorf("follow delete: %w", err)
	}
	return nil
}

func (r *DocFollowRepository) ListFollowers(ctx context.Context, userID string) ([]string, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocFollowRepository: nil store")
	}
	docs, _, err := r.store.List(ctx, store.CollectionFollowers, store.Query{
		Filters: []store.Filter{store.Equal("followingId", userID)},
	})
	if err != nil {
		return nil, fmt.Errorf("followers list: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.String("followerId"))
	}
	return ids, nil
}

func (r *DocFollowRepository) ListFollowing(ctx context.Context, userID string) ([]string, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocFollowRepository: nil store")
	}
	docs, _, err := r.store.List(ctx, store.CollectionFollowers, store.Query{
		Filters: []store.Filter{store.Equal("followerId", userID)},
	})
	if err != nil {
		return nil, fmt.Errorf("following list: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.String("followingId"))
	}
	return ids, nil
}

func docToEdge(doc store.Document) follow.Edge {
	edge := follow.Edge{
		ID:          doc.ID,
		FollowerID:  doc.String("followerId"),
		FollowingID: doc.String("followingId"),
	}
	if ts, err := store.DecodeTime(doc.String("createdAt")); err == nil {
		edge.CreatedAt = ts
	}
	return edge
}
