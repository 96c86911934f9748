package usecase

import (
	"context"
	"fmt"
	"strings"

	posts "snapgram/internal/pkg/posts/application/domain"
	repository "snapgram/internal/pkg/posts/persistence/repository/port"
)

const searchPostsLimit = 20

// SearchPostsInput wraps the caption search term.
type SearchPostsInput struct {
	Term string
}

// SearchPostsUseCase finds posts whose caption contains the term.
type SearchPostsUseCase struct {
	Repo repository.PostRepository
}

func NewSearchPostsUseCase(repo repository.PostRepository) *SearchPostsUseCase {
	return &SearchPostsUseCase{Repo: repo}
}

func (uc *SearchPostsUseCase) Execute(ctx context.Context, in SearchPostsInput) ([]posts.Post, int, error) {
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return nil, 0, fmt.Errorf("search term is required")
	}
	out, total, err := uc.Repo.Search(ctx, term, searchPostsLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, total, nil
}
