package usecase

import (
	"context"
	"fmt"

	follow "snapgram/internal/pkg/follow/application/domain"
	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// FollowInput identifies the directed edge to create.
type FollowInput struct {
	FollowerID  string
	FollowingID string
}

// FollowUseCase creates a follow edge. The insert is unconditional: calling
// it twice produces duplicate edges, so callers (the reconciliation layer)
// must guard against repeat calls.
type FollowUseCase struct {
	Repo repository.FollowRepository
}

func NewFollowUseCase(repo repository.FollowRepository) *FollowUseCase {
	return &FollowUseCase{Repo: repo}
}

func (uc *FollowUseCase) Execute(ctx context.Context, in FollowInput) (*follow.Edge, error) {
	if in.FollowerID == "" || in.FollowingID == "" {
		return nil, fmt.Errorf("followerId and followingId are required")
	}
	edge, err := uc.Repo.Create(ctx, in.FollowerID, in.FollowingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &edge, nil
}
