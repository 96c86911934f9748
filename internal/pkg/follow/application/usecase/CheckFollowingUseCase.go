package usecase

import (
	"context"
	"fmt"

	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// CheckFollowingInput identifies the directed pair to check.
type CheckFollowingInput struct {
	FollowerID  string
	FollowingID string
}

// CheckFollowingUseCase answers whether a follow edge exists for the pair.
type CheckFollowingUseCase struct {
	Repo repository.FollowRepository
}

func NewCheckFollowingUseCase(repo repository.FollowRepository) *CheckFollowingUseCase {
	return &CheckFollowingUseCase{Repo: repo}
}

func (uc *CheckFollowingUseCase) Execute(ctx context.Context, in CheckFollowingInput) (bool, error) {
	if in.FollowerID == "" || in.FollowingID == "" {
		return false, fmt.Errorf("followerId and followingId are required")
	}
	edge, err := uc.Repo.FindEdge(ctx, in.FollowerID, in.FollowingID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return edge != nil, nil
}
