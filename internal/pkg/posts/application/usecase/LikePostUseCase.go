package usecase

import (
	"context"
	"fmt"

	"snapgram/internal/auth"
	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

// LikePostInput identifies the post to toggle a like on.
type LikePostInput struct {
	PostID string
}

// LikePostUseCase toggles the authenticated principal's like on a post by
// replacing the post's likes array, mirroring the document-update model.
type LikePostUseCase struct {
	Repo repository.PostRepository
}

func NewLikePostUseCase(repo repository.PostRepository) *LikePostUseCase {
	return &LikePostUseCase{Repo: repo}
}

func (uc *LikePostUseCase) Execute(ctx context.Context, in LikePostInput) (*posts.Post, error) {
	principal, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if in.PostID == "" {
		return nil, fmt.Errorf("postId is required")
	}

	post, err := uc.Repo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	likes := make([]string, 0, len(post.Likes)+1)
	liked := false
	for _, id := range post.Likes {
		if id == principal.ID {
			liked = true
			continue
		}
		likes = append(likes, id)
	}
	if !liked {
		likes = append(likes, principal.ID)
	}

	updated, err := uc.Repo.SetLikes(ctx, in.PostID, likes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &updated, nil
}
