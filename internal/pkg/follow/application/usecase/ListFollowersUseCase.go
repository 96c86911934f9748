package usecase

import (
	"context"
	"fmt"

	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// ListFollowersInput wraps the user whose followers are listed.
type ListFollowersInput struct {
	UserID string
}

// ListFollowersUseCase returns the IDs of users following the given user.
// No pagination; follower counts are assumed to fit a single query page.
type ListFollowersUseCase struct {
	Repo repository.FollowRepository
}

func NewListFollowersUseCase(repo repository.FollowRepository) *ListFollowersUseCase {
	return &ListFollowersUseCase{Repo: repo}
}

func (uc *ListFollowersUseCase) Execute(ctx context.Context, in ListFollowersInput) ([]string, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	ids, err := uc.Repo.ListFollowers(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ids, nil
}
