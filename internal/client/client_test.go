package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheadapter "snapgram/internal/infrastructure/cache/adapter"
	follow "snapgram/internal/pkg/follow/application/domain"
	followusecase "snapgram/internal/pkg/follow/application/usecase"
)

// fakeFollowRepo lets tests fail individual operations on demand.
type fakeFollowRepo struct {
	edges      map[string]follow.Edge
	nextID     int
	createErr  error
	deleteErr  error
	findErr    error
	createHits int
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[string]follow.Edge)}
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, followingID string) (follow.Edge, error) {
	if r.createErr != nil {
		return follow.Edge{}, r.createErr
	}
	r.createHits++
	r.nextID++
	e := follow.Edge{
		ID:          string(rune('a' + r.nextID)),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	r.edges[e.ID] = e
	return e, nil
}

func (r *fakeFollowRepo) FindEdge(_ context.Context, followerID, followingID string) (*follow.Edge, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, e := range r.edges {
		if e.FollowerID == followerID && e.FollowingID == followingID {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, edgeID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.edges, edgeID)
	return nil
}

func (r *fakeFollowRepo) ListFollowers(_ context.Context, userID string) ([]string, error) {
	var out []string
	for _, e := range r.edges {
		if e.FollowingID == userID {
			out = append(out, e.FollowerID)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) ListFollowing(_ context.Context, userID string) ([]string, error) {
	var out []string
	for _, e := range r.edges {
		if e.FollowerID == userID {
			out = append(out, e.FollowingID)
		}
	}
	return out, nil
}

func newTrackerFixture(repo *fakeFollowRepo) (*FollowTracker, *QueryCache) {
	qc := NewQueryCache(cacheadapter.NewMemoryCache(), time.Minute)
	tracker := NewFollowTracker(
		followusecase.NewFollowUseCase(repo),
		followusecase.NewUnfollowUseCase(repo),
		followusecase.NewCheckFollowingUseCase(repo),
		qc,
	)
	return tracker, qc
}

func TestHandleSharedPerPair(t *testing.T) {
	tracker, _ := newTrackerFixture(newFakeFollowRepo())

	h1 := tracker.Handle("alice", "bob")
	h2 := tracker.Handle("alice", "bob")
	h3 := tracker.Handle("bob", "alice")

	assert.Same(t, h1, h2)
	assert.NotSame(t, h1, h3)
}

func TestResolveStates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFollowRepo()
	tracker, _ := newTrackerFixture(repo)

	h := tracker.Handle("alice", "bob")
	assert.Equal(t, StateUnknown, h.State())

	state, err := h.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateNotFollowing, state)

	_, err = repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)

	state, err = h.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateFollowing, state)
}

func TestToggleFollowThenUnfollow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFollowRepo()
	tracker, _ := newTrackerFixture(repo)

	h := tracker.Handle("alice", "bob")
	_, err := h.Resolve(ctx)
	require.NoError(t, err)

	require.NoError(t, h.Toggle(ctx))
	assert.Equal(t, StateFollowing, h.State())

	edge, err := repo.FindEdge(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, edge)

	require.NoError(t, h.Toggle(ctx))
	assert.Equal(t, StateNotFollowing, h.State())

	edge, err = repo.FindEdge(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, edge)
}

func TestToggleFollowSkipsDuplicateEdge(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFollowRepo()
	tracker, _ := newTrackerFixture(repo)

	// Edge already exists server-side but this handle has stale state.
	_, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	before := repo.createHits

	h := tracker.Handle("alice", "bob")
	h.setState(StateNotFollowing)

	require.NoError(t, h.Toggle(ctx))
	assert.Equal(t, StateFollowing, h.State())
	assert.Equal(t, before, repo.createHits, "no duplicate insert")
}

func TestFailedUnfollowRollsBackAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFollowRepo()
	tracker, _ := newTrackerFixture(repo)

	_, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)

	h := tracker.Handle("alice", "bob")
	_, err = h.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, StateFollowing, h.State())

	var seen []FollowState
	unsubscribe := h.Subscribe(func(s FollowState) { seen = append(seen, s) })
	defer unsubscribe()

	repo.deleteErr = errors.New("boom")
	err = h.Toggle(ctx)
	require.Error(t, err)

	assert.Equal(t, StateFollowing, h.State())
	// Optimistic flip, then rollback.
	assert.Equal(t, []FollowState{StateNotFollowing, StateFollowing}, seen)
}

func TestToggleIgnoredWhileInFlight(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFollowRepo()
	tracker, _ := newTrackerFixture(repo)

	h := tracker.Handle("alice", "bob")
	h.setState(StateNotFollowing)

	h.mu.Lock()
	h.inFlight = true
	h.mu.Unlock()

	require.NoError(t, h.Toggle(ctx))
	assert.Equal(t, StateNotFollowing, h.State(), "ignored toggle leaves state alone")

	edge, err := repo.FindEdge(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, edge, "ignored toggle issues no request")
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	tracker, _ := newTrackerFixture(newFakeFollowRepo())
	h := tracker.Handle("alice", "bob")

	calls := 0
	unsubscribe := h.Subscribe(func(FollowState) { calls++ })
	h.setState(StateFollowing)
	unsubscribe()
	h.setState(StateNotFollowing)

	assert.Equal(t, 1, calls)
}

func TestFetchCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	qc := NewQueryCache(cacheadapter.NewMemoryCache(), time.Minute)

	loads := 0
	load := func(context.Context) ([]string, error) {
		loads++
		return []string{"c1", "c2"}, nil
	}

	key := conversationListKey("alice")
	out, err := Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, out)

	_, err = Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "second read served from cache")

	qc.InvalidateAfterSendMessage(ctx, "conv1", []string{"alice", "bob"})

	_, err = Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "sending a message refetches the conversation list")
}

func TestFetchLoadError(t *testing.T) {
	ctx := context.Background()
	qc := NewQueryCache(cacheadapter.NewMemoryCache(), time.Minute)

	wantErr := errors.New("remote down")
	_, err := Fetch(ctx, qc, "q:messages:c1", func(context.Context) (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidateAfterFollowChange(t *testing.T) {
	ctx := context.Background()
	qc := NewQueryCache(cacheadapter.NewMemoryCache(), time.Minute)

	loads := 0
	load := func(context.Context) (bool, error) {
		loads++
		return true, nil
	}

	key := checkFollowingKey("alice", "bob")
	_, err := Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	_, err = Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	require.Equal(t, 1, loads)

	qc.InvalidateAfterFollowChange(ctx, "alice", "bob")

	_, err = Fetch(ctx, qc, key, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}
