package client

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	cacheport "snapgram/internal/infrastructure/cache/port"
)

// QueryCache wraps the key-value cache with JSON (de)serialization and the
// invalidation edges between mutations and the query results they make stale.
// Reads go through Fetch: on a hit the cached JSON is decoded, on a miss the
// loader runs and its result is stored under the query key.
type QueryCache struct {
	cache cacheport.Cache
	ttl   time.Duration
}

func NewQueryCache(cache cacheport.Cache, ttl time.Duration) *QueryCache {
	return &QueryCache{cache: cache, ttl: ttl}
}

// Fetch returns the cached JSON for key, or runs load and caches its result.
// Cache transport failures degrade to a direct load; they never fail the read.
func Fetch[T any](ctx context.Context, qc *QueryCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := qc.cache.Get(ctx, key)
	if err == nil {
		var out T
		if jsonErr := json.Unmarshal([]byte(raw), &out); jsonErr == nil {
			return out, nil
		}
		// Undecodable entry: drop it and fall through to the loader.
		if _, delErr := qc.cache.Del(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("failed to drop corrupt cache entry")
		}
	} else if !errors.Is(err, cacheport.ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, loading directly")
	}

	out, err := load(ctx)
	if err != nil {
		return zero, err
	}

	if encoded, jsonErr := json.Marshal(out); jsonErr == nil {
		if setErr := qc.cache.Set(ctx, key, string(encoded), qc.ttl); setErr != nil {
			log.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
		}
	}
	return out, nil
}

// FetchConversationList serves a user's conversation list through the cache.
func FetchConversationList[T any](ctx context.Context, qc *QueryCache, userID string, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, conversationListKey(userID), load)
}

// FetchMessageList serves a conversation's message list through the cache.
func FetchMessageList[T any](ctx context.Context, qc *QueryCache, conversationID string, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, messageListKey(conversationID), load)
}

// FetchFollowers serves a user's follower list through the cache.
func FetchFollowers[T any](ctx context.Context, qc *QueryCache, userID string, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, followersKey(userID), load)
}

// FetchFollowing serves the list of accounts a user follows through the cache.
func FetchFollowing[T any](ctx context.Context, qc *QueryCache, userID string, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, followingKey(userID), load)
}

// FetchCheckFollowing serves a directed relationship check through the cache.
func FetchCheckFollowing[T any](ctx context.Context, qc *QueryCache, followerID, followingID string, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, checkFollowingKey(followerID, followingID), load)
}

// FetchRecentPosts serves the recent-posts feed through the cache.
func FetchRecentPosts[T any](ctx context.Context, qc *QueryCache, load func(ctx context.Context) (T, error)) (T, error) {
	return Fetch(ctx, qc, recentPostsKey(), load)
}

func (qc *QueryCache) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if _, err := qc.cache.Del(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

// InvalidateAfterSendMessage drops the message list of the conversation and
// the conversation lists of both participants, whose summaries just changed.
func (qc *QueryCache) InvalidateAfterSendMessage(ctx context.Context, conversationID string, participantIDs []string) {
	keys := []string{messageListKey(conversationID)}
	for _, id := range participantIDs {
		keys = append(keys, conversationListKey(id))
	}
	qc.invalidate(ctx, keys...)
}

// InvalidateAfterCreateConversation drops the conversation lists of every
// participant of the created (or deduplicated) conversation.
func (qc *QueryCache) InvalidateAfterCreateConversation(ctx context.Context, participantIDs []string) {
	keys := make([]string, 0, len(participantIDs))
	for _, id := range participantIDs {
		keys = append(keys, conversationListKey(id))
	}
	qc.invalidate(ctx, keys...)
}

// InvalidateAfterFollowChange drops every query touching the follower and
// following sides of the pair, plus the pair's relationship check.
func (qc *QueryCache) InvalidateAfterFollowChange(ctx context.Context, followerID, followingID string) {
	qc.invalidate(ctx,
		followersKey(followingID),
		followingKey(followerID),
		checkFollowingKey(followerID, followingID),
	)
}

// InvalidateAfterPostChange drops the recent-posts feed and the post itself.
func (qc *QueryCache) InvalidateAfterPostChange(ctx context.Context, postID string) {
	qc.invalidate(ctx, recentPostsKey(), postKey(postID))
}
