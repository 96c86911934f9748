package usecase

import (
	"context"
	"fmt"

	"snapgram/internal/auth"
	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

// SavePostInput identifies the post to bookmark.
type SavePostInput struct {
	PostID string
}

// SavePostUseCase bookmarks a post for the authenticated principal. Saving an
// already-saved post returns the existing record.
type SavePostUseCase struct {
	Repo repository.PostRepository
}

func NewSavePostUseCase(repo repository.PostRepository) *SavePostUseCase {
	return &SavePostUseCase{Repo: repo}
}

func (uc *SavePostUseCase) Execute(ctx context.Context, in SavePostInput) (*posts.Save, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if in.PostID == "" {
		return nil, fmt.Errorf("postId is required")
	}

	existing, err := uc.Repo.FindSave(ctx, principal.ID, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return existing, nil
	}

	save, err := uc.Repo.CreateSave(ctx, principal.ID, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &save, nil
}

// UnsavePostUseCase removes a bookmark. Removing a missing bookmark is a
// soft not-found: (nil, nil).
type UnsavePostUseCase struct {
	Repo repository.PostRepository
}

func NewUnsavePostUseCase(repo repository.PostRepository) *UnsavePostUseCase {
	return &UnsavePostUseCase{Repo: repo}
}

func (uc *UnsavePostUseCase) Execute(ctx context.Context, in SavePostInput) (*posts.Save, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if in.PostID == "" {
		return nil, fmt.Errorf("postId is required")
	}

	existing, err := uc.Repo.FindSave(ctx, principal.ID, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing == nil {
		return nil, nil
	}
	if err := uc.Repo.DeleteSave(ctx, existing.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return existing, nil
}
