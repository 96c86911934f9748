package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeadapter "snapgram/internal/infrastructure/store/adapter"
	repoadapter "snapgram/internal/pkg/follow/persistence/repository/adapter"
	repository "snapgram/internal/pkg/follow/persistence/repository/port"
)

func newFollowFixture() repository.FollowRepository {
	return repoadapter.NewDocFollowRepository(storeadapter.NewMemoryStore())
}

func TestFollowThenCheckAndUnfollow(t *testing.T) {
	repo := newFollowFixture()
	ctx := context.Background()

	followUC := NewFollowUseCase(repo)
	unfollowUC := NewUnfollowUseCase(repo)
	checkUC := NewCheckFollowingUseCase(repo)

	edge, err := followUC.Execute(ctx, FollowInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, "alice", edge.FollowerID)
	assert.Equal(t, "bob", edge.FollowingID)

	ok, err := checkUC.Execute(ctx, CheckFollowingInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	assert.True(t, ok)

	// Directionality: the reverse edge does not exist
	ok, err = checkUC.Execute(ctx, CheckFollowingInput{FollowerID: "bob", FollowingID: "alice"})
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err := unfollowUC.Execute(ctx, UnfollowInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, edge.ID, deleted.ID)

	ok, err = checkUC.Execute(ctx, CheckFollowingInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnfollowMissingEdgeIsSoftNotFound(t *testing.T) {
	repo := newFollowFixture()
	unfollowUC := NewUnfollowUseCase(repo)

	edge, err := unfollowUC.Execute(context.Background(), UnfollowInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	assert.Nil(t, edge)
}

func TestListFollowersAndFollowing(t *testing.T) {
	repo := newFollowFixture()
	ctx := context.Background()
	followUC := NewFollowUseCase(repo)

	pairs := [][2]string{
		{"alice", "bob"},
		{"carol", "bob"},
		{"bob", "alice"},
		{"bob", "dave"},
	}
	for _, p := range pairs {
		_, err := followUC.Execute(ctx, FollowInput{FollowerID: p[0], FollowingID: p[1]})
		require.NoError(t, err)
	}

	followers, err := NewListFollowersUseCase(repo).Execute(ctx, ListFollowersInput{UserID: "bob"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "carol"}, followers)

	following, err := NewListFollowingUseCase(repo).Execute(ctx, ListFollowingInput{UserID: "bob"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "dave"}, following)

	none, err := NewListFollowersUseCase(repo).Execute(ctx, ListFollowersInput{UserID: "dave"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob"}, none)
}

func TestFollowIsUnconditionalInsert(t *testing.T) {
	repo := newFollowFixture()
	ctx := context.Background()
	followUC := NewFollowUseCase(repo)

	first, err := followUC.Execute(ctx, FollowInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)
	second, err := followUC.Execute(ctx, FollowInput{FollowerID: "alice", FollowingID: "bob"})
	require.NoError(t, err)

	// No dedup at this layer; the reconciliation layer prevents repeat calls.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFollowInputValidation(t *testing.T) {
	repo := newFollowFixture()
	ctx := context.Background()

	_, err := NewFollowUseCase(repo).Execute(ctx, FollowInput{FollowerID: "alice"})
	assert.Error(t, err)

	_, err = NewUnfollowUseCase(repo).Execute(ctx, UnfollowInput{FollowingID: "bob"})
	assert.Error(t, err)

	_, err = NewListFollowersUseCase(repo).Execute(ctx, ListFollowersInput{})
	assert.Error(t, err)
}
