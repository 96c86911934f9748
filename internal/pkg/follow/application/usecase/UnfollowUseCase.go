package usecase

import (
	"context"
	"fmt"

	follow "snapgram/internal/pkg/follow/application/domain"
	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

// UnfollowInput identifies the directed edge to remove.
type UnfollowInput struct {
	FollowerID  string
	FollowingID string
}

// UnfollowUseCase removes a follow edge via lookup-then-delete. Unfollowing
// a non-existent edge is a no-op returning (nil, nil), not an error.
type UnfollowUseCase struct {
	Repo repository.FollowRepository
}

func NewUnfollowUseCase(repo repository.FollowRepository) *UnfollowUseCase {
	return &UnfollowUseCase{Repo: repo}
}

func (uc *UnfollowUseCase) Execute(ctx context.Context, in UnfollowInput) (*follow.Edge, error) {
	if in.FollowerID == "" || in.FollowingID == "" {
		return nil, fmt.Errorf("followerId and followingId are required")
	}
	edge, err := uc.Repo.FindEdge(ctx, in.FollowerID, in.FollowingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if edge == nil {
		return nil, nil
	}
	if err := uc.Repo.Delete(ctx, edge.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return edge, nil
}
