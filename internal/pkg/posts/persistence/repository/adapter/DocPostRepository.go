package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	store "snapgram/internal/infrastructure/store/port"
	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

// DocPostRepository persists posts and save records in the generic document
// store.
type DocPostRepository struct {
	store store.Store
}

func NewDocPostRepository(s store.Store) *DocPostRepository {
	return &DocPostRepository{store: s}
}

// Ensure interface compliance at compile time
var _ repository.PostRepository = (*DocPostRepository)(nil)

func (r *DocPostRepository) Create(ctx context.Context, p posts.Post) (posts.Post, error) {
	if r == nil || r.store == nil {
		return posts.Post{}, errors.New("DocPostRepository: nil store")
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	doc, err := r.store.Create(ctx, store.CollectionPosts, store.Document{
		ID: p.ID,
		Data: map[string]any{
			"creatorId": p.CreatorID,
			"caption":   p.Caption,
			"tags":      strings.Join(p.Tags, ","),
			"imageUrl":  p.ImageURL,
			"location":  p.Location,
			"likes":     p.Likes,
			"createdAt": store.EncodeTime(createdAt),
		},
	})
	if err != nil {
		return posts.Post{}, fmt.Errorf("post create: %w", err)
	}
	return docToPost(doc), nil
}

func (r *DocPostRepository) GetByID(ctx context.Context, id string) (posts.Post, error) {
	if r == nil || r.store == nil {
		return posts.Post{}, errors.New("DocPostRepository: nil store")
	}
	doc, err := r.store.Get(ctx, store.CollectionPosts, id)
	if err != nil {
		return posts.Post{}, fmt.Errorf("post %s: %w", id, err)
	}
	return docToPost(doc), nil
}

func (r *DocPostRepository) ListRecent(ctx context.Context, limit int) ([]posts.Post, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocPostRepository: nil store")
	}
	docs, total, err := r.store.List(ctx, store.CollectionPosts, store.Query{
		Order: store.OrderDesc("createdAt"),
		Limit: limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("post list: %w", err)
	}
	return docsToPosts(docs), total, nil
}

func (r *DocPostRepository) Search(ctx context.Context, term string, limit int) ([]posts.Post, int, error) {
	if r == nil || r.store == nil {
		return nil, 0, errors.New("DocPostRepository: nil store")
	}
	docs, total, err := r.store.List(ctx, store.CollectionPosts, store.Query{
		Filters: []store.Filter{store.Contains("caption", term)},
		Order:   store.OrderDesc("createdAt"),
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("post search: %w", err)
	}
	return docsToPosts(docs), total, nil
}

func (r *DocPostRepository) SetLikes(ctx context.Context, postID string, likes []string) (posts.Post, error) {
	if r == nil || r.store == nil {
		return posts.Post{}, errors.New("DocPostRepository: nil store")
	}
	if likes == nil {
		likes = []string{}
	}
	doc, err := r.store.Update(ctx, store.CollectionPosts, postID, map[string]any{"likes": likes})
	if err != nil {
		return posts.Post{}, fmt.Errorf("post likes update: %w", err)
	}
	return docToPost(doc), nil
}

func (r *DocPostRepository) CreateSave(ctx context.Context, userID, postID string) (posts.Save, error) {
	if r == nil || r.store == nil {
		return posts.Save{}, errors.New("DocPostRepository: nil store")
	}
	doc, err := r.store.Create(ctx, store.CollectionSaves, store.Document{
		ID: uuid.NewString(),
		Data: map[string]any{
			"userId": userID,
			"postId": postID,
		},
	})
	if err != nil {
		return posts.Save{}, fmt.Errorf("save create: %w", err)
	}
	return posts.Save{ID: doc.ID, UserID: userID, PostID: postID}, nil
}

func (r *DocPostRepository) FindSave(ctx context.Context, userID, postID string) (*posts.Save, error) {
	if r == nil || r.store == nil {
		return nil, errors.New("DocPostRepository: nil store")
	}
	docs, _, err := r.store.List(ctx, store.CollectionSaves, store.Query{
		Filters: []store.Filter{
			store.Equal("userId", userID),
			store.Equal("postId", postID),
		},
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("save lookup: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &posts.Save{
		ID:     docs[0].ID,
		UserID: docs[0].String("userId"),
		PostID: docs[0].String("postId"),
	}, nil
}

func (r *DocPostRepository) DeleteSave(ctx context.Context, saveID string) error {
	if r == nil || r.store == nil {
		return errors.New("DocPostRepository: nil store")
	}
	if err := r.store.Delete(ctx, store.CollectionSaves, saveID); err != nil {
		return fmt.Errorf("save delete: %w", err)
	}
	return nil
}

func docToPost(doc store.Document) posts.Post {
	p := posts.Post{
		ID:        doc.ID,
		CreatorID: doc.String("creatorId"),
		Caption:   doc.String("caption"),
		Tags:      posts.ParseTags(doc.String("tags")),
		ImageURL:  doc.String("imageUrl"),
		Location:  doc.String("location"),
		Likes:     doc.Strings("likes"),
		UpdatedAt: doc.UpdatedAt,
	}
	if ts, err := store.DecodeTime(doc.String("createdAt")); err == nil {
		p.CreatedAt = ts
	} else {
		p.CreatedAt = doc.CreatedAt
	}
	return p
}

func docsToPosts(docs []store.Document) []posts.Post {
	out := make([]posts.Post, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docToPost(doc))
	}
	return out
}
