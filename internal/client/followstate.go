package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	followusecase "snapgram/internal/pkg/follow/application/usecase"
)

// FollowState is the locally observed relationship of a viewer toward a
// target profile.
type FollowState int

const (
	// StateUnknown means the relationship has not been resolved yet.
	StateUnknown FollowState = iota
	// StateChecking means a resolution request is in flight.
	StateChecking
	// StateFollowing means the viewer follows the target.
	StateFollowing
	// StateNotFollowing means the viewer does not follow the target.
	StateNotFollowing
)

func (s FollowState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateFollowing:
		return "following"
	case StateNotFollowing:
		return "not-following"
	default:
		return "unknown"
	}
}

// FollowTracker hands out one shared FollowHandle per (viewer, target) pair,
// so every surface rendering the same profile observes the same state and a
// toggle from one surface is reflected everywhere.
type FollowTracker struct {
	follow   *followusecase.FollowUseCase
	unfollow *followusecase.UnfollowUseCase
	check    *followusecase.CheckFollowingUseCase
	queries  *QueryCache

	mu      sync.Mutex
	handles map[pairKey]*FollowHandle
}

type pairKey struct {
	viewerID string
	targetID string
}

func NewFollowTracker(
	follow *followusecase.FollowUseCase,
	unfollow *followusecase.UnfollowUseCase,
	check *followusecase.CheckFollowingUseCase,
	queries *QueryCache,
) *FollowTracker {
	return &FollowTracker{
		follow:   follow,
		unfollow: unfollow,
		check:    check,
		queries:  queries,
		handles:  make(map[pairKey]*FollowHandle),
	}
}

// Handle returns the shared handle for the pair, creating it on first use.
func (t *FollowTracker) Handle(viewerID, targetID string) *FollowHandle {
	key := pairKey{viewerID: viewerID, targetID: targetID}

	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.handles[key]
	if !ok {
		h = &FollowHandle{
			tracker:   t,
			viewerID:  viewerID,
			targetID:  targetID,
			state:     StateUnknown,
			listeners: make(map[int]func(FollowState)),
		}
		t.handles[key] = h
	}
	return h
}

// FollowHandle tracks the follow relationship of one (viewer, target) pair
// and applies toggles optimistically: the state flips immediately, the server
// call runs, and a failure rolls the flip back.
type FollowHandle struct {
	tracker  *FollowTracker
	viewerID string
	targetID string

	mu        sync.Mutex
	state     FollowState
	inFlight  bool
	nextSubID int
	listeners map[int]func(FollowState)
}

// State returns the current state.
func (h *FollowHandle) State() FollowState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Subscribe registers fn to be called on every state change and returns an
// unsubscribe function. fn runs outside the handle lock.
func (h *FollowHandle) Subscribe(fn func(FollowState)) func() {
	h.mu.Lock()
	id := h.nextSubID
	h.nextSubID++
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *FollowHandle) setState(s FollowState) {
	h.mu.Lock()
	if h.state == s {
		h.mu.Unlock()
		return
	}
	h.state = s
	fns := make([]func(FollowState), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Resolve determines the actual relationship from the server. Concurrent
// resolves collapse into one: callers arriving while a check is in flight
// return the current state without issuing another request.
func (h *FollowHandle) Resolve(ctx context.Context) (FollowState, error) {
	h.mu.Lock()
	if h.inFlight {
		s := h.state
		h.mu.Unlock()
		return s, nil
	}
	h.inFlight = true
	h.mu.Unlock()

	h.setState(StateChecking)
	defer func() {
		h.mu.Lock()
		h.inFlight = false
		h.mu.Unlock()
	}()

	following, err := h.tracker.check.Execute(ctx, followusecase.CheckFollowingInput{
		FollowerID:  h.viewerID,
		FollowingID: h.targetID,
	})
	if err != nil {
		h.setState(StateUnknown)
		return StateUnknown, err
	}
	if following {
		h.setState(StateFollowing)
		return StateFollowing, nil
	}
	h.setState(StateNotFollowing)
	return StateNotFollowing, nil
}

// Toggle flips the relationship optimistically. While an earlier toggle is
// still in flight, further toggles are ignored; the pending operation wins.
// On failure the previous state is restored and listeners are notified.
func (h *FollowHandle) Toggle(ctx context.Context) error {
	h.mu.Lock()
	if h.inFlight {
		h.mu.Unlock()
		return nil
	}
	prev := h.state
	if prev == StateUnknown || prev == StateChecking {
		// Nothing to flip yet; resolve first.
		h.mu.Unlock()
		if _, err := h.Resolve(ctx); err != nil {
			return err
		}
		return h.Toggle(ctx)
	}
	h.inFlight = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inFlight = false
		h.mu.Unlock()
	}()

	if prev == StateFollowing {
		h.setState(StateNotFollowing)
		if _, err := h.tracker.unfollow.Execute(ctx, followusecase.UnfollowInput{
			FollowerID:  h.viewerID,
			FollowingID: h.targetID,
		}); err != nil {
			log.Warn().Err(err).
				Str("followerId", h.viewerID).
				Str("followingId", h.targetID).
				Msg("unfollow failed, rolling back")
			h.setState(prev)
			return err
		}
	} else {
		h.setState(StateFollowing)
		// The insert is unconditional, so re-check first to avoid a
		// duplicate edge when the server already has one.
		already, err := h.tracker.check.Execute(ctx, followusecase.CheckFollowingInput{
			FollowerID:  h.viewerID,
			FollowingID: h.targetID,
		})
		if err == nil && !already {
			_, err = h.tracker.follow.Execute(ctx, followusecase.FollowInput{
				FollowerID:  h.viewerID,
				FollowingID: h.targetID,
			})
		}
		if err != nil {
			log.Warn().Err(err).
				Str("followerId", h.viewerID).
				Str("followingId", h.targetID).
				Msg("follow failed, rolling back")
			h.setState(prev)
			return err
		}
	}

	if h.tracker.queries != nil {
		h.tracker.queries.InvalidateAfterFollowChange(ctx, h.viewerID, h.targetID)
	}
	return nil
}
