package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"snapgram/internal/auth"
	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

// CreatePostInput carries the data for a new feed post. Tags arrive as a
// comma-separated string, matching the client form field.
type CreatePostInput struct {
	Caption  string
	Tags     string
	ImageURL string
	Location string
}

// CreatePostUseCase creates a post owned by the authenticated principal.
type CreatePostUseCase struct {
	Repo repository.PostRepository
}

func NewCreatePostUseCase(repo repository.PostRepository) *CreatePostUseCase {
	return &CreatePostUseCase{Repo: repo}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, in CreatePostInput) (*posts.Post, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Caption) == "" {
		return nil, posts.ErrEmptyCaption
	}

	post := posts.Post{
		ID:        uuid.NewString(),
		CreatorID: principal.ID,
		Caption:   in.Caption,
		Tags:      posts.ParseTags(in.Tags),
		ImageURL:  in.ImageURL,
		Location:  in.Location,
		Likes:     []string{},
	}
	created, err := uc.Repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &created, nil
}
