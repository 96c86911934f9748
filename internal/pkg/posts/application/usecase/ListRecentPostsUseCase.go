package usecase

import (
	"context"
	"fmt"

	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

// recentPostsLimit caps the home feed page.
const recentPostsLimit = 20

// ListRecentPostsUseCase returns the newest posts first.
type ListRecentPostsUseCase struct {
	Repo repository.PostRepository
}

func NewListRecentPostsUseCase(repo repository.PostRepository) *ListRecentPostsUseCase {
	return &ListRecentPostsUseCase{Repo: repo}
}

func (uc *ListRecentPostsUseCase) Execute(ctx context.Context) ([]posts.Post, int, error) {
	out, total, err := uc.Repo.ListRecent(ctx, recentPostsLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, total, nil
}
