package usecase

import (
	"context"
	"fmt"

	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// ListFollowingInput wraps the user whose followed accounts are listed.
type ListFollowingInput struct {
	UserID string
}

// ListFollowingUseCase returns the IDs of users the given user follows.
type ListFollowingUseCase struct {
	Repo repository.FollowRepository
}

func NewListFollowingUseCase(repo repository.FollowRepository) *ListFollowingUseCase {
	return &ListFollowingUseCase{Repo: repo}
}

func (uc *ListFollowingUseCase) Execute(ctx context.Context, in ListFollowingInput) ([]string, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	ids, err := uc.Repo.ListFollowing(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ids, nil
}
