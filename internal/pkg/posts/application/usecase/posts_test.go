package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapgram/internal/auth"
	storeadapter "snapgram/internal/infrastructure/store/adapter"
	posts "snapgram/internal/pkg/posts/application/domain"
	repoadapter "snapgram/internal/pkg/posts/persistence/repository/adapter"
)

func authedCtx(userID string) context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{ID: userID, Username: userID})
}

func newPostsFixture() (*storeadapter.MemoryStore, *repoadapter.DocPostRepository) {
	s := storeadapter.NewMemoryStore()
	return s, repoadapter.NewDocPostRepository(s)
}

func TestCreatePostRequiresAuthAndCaption(t *testing.T) {
	_, repo := newPostsFixture()
	uc := NewCreatePostUseCase(repo)

	_, err := uc.Execute(context.Background(), CreatePostInput{Caption: "hi"})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = uc.Execute(authedCtx("alice"), CreatePostInput{Caption: "   "})
	assert.ErrorIs(t, err, posts.ErrEmptyCaption)

	post, err := uc.Execute(authedCtx("alice"), CreatePostInput{
		Caption: "sunset",
		Tags:    "nature, travel",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", post.CreatorID)
	assert.Equal(t, []string{"nature", "travel"}, post.Tags)
	assert.Empty(t, post.Likes)
}

func TestListRecentPostsNewestFirst(t *testing.T) {
	_, repo := newPostsFixture()
	ctx := authedCtx("alice")

	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, posts.Post{
			ID:        fmt.Sprintf("p%d", i),
			CreatorID: "alice",
			Caption:   fmt.Sprintf("post %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	out, total, err := NewListRecentPostsUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, out, 3)
	assert.Equal(t, "p2", out[0].ID)
	assert.Equal(t, "p0", out[2].ID)
}

func TestSearchPosts(t *testing.T) {
	_, repo := newPostsFixture()
	ctx := authedCtx("alice")
	createUC := NewCreatePostUseCase(repo)

	_, err := createUC.Execute(ctx, CreatePostInput{Caption: "sunset at the beach"})
	require.NoError(t, err)
	_, err = createUC.Execute(ctx, CreatePostInput{Caption: "city lights"})
	require.NoError(t, err)

	out, _, err := NewSearchPostsUseCase(repo).Execute(ctx, SearchPostsInput{Term: "beach"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "sunset at the beach", out[0].Caption)

	_, _, err = NewSearchPostsUseCase(repo).Execute(ctx, SearchPostsInput{Term: "  "})
	assert.Error(t, err)
}

func TestLikePostToggles(t *testing.T) {
	_, repo := newPostsFixture()
	ctx := authedCtx("alice")

	post, err := NewCreatePostUseCase(repo).Execute(ctx, CreatePostInput{Caption: "hello"})
	require.NoError(t, err)

	likeUC := NewLikePostUseCase(repo)

	liked, err := likeUC.Execute(ctx, LikePostInput{PostID: post.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, liked.Likes)

	likedByBob, err := likeUC.Execute(authedCtx("bob"), LikePostInput{PostID: post.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, likedByBob.Likes)

	unliked, err := likeUC.Execute(ctx, LikePostInput{PostID: post.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, unliked.Likes)
}

func TestSaveAndUnsavePost(t *testing.T) {
	_, repo := newPostsFixture()
	ctx := authedCtx("alice")

	post, err := NewCreatePostUseCase(repo).Execute(ctx, CreatePostInput{Caption: "hello"})
	require.NoError(t, err)

	saveUC := NewSavePostUseCase(repo)
	unsaveUC := NewUnsavePostUseCase(repo)

	save, err := saveUC.Execute(ctx, SavePostInput{PostID: post.ID})
	require.NoError(t, err)
	require.NotNil(t, save)

	// Saving again returns the same record
	again, err := saveUC.Execute(ctx, SavePostInput{PostID: post.ID})
	require.NoError(t, err)
	assert.Equal(t, save.ID, again.ID)

	removed, err := unsaveUC.Execute(ctx, SavePostInput{PostID: post.ID})
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, save.ID, removed.ID)

	// Unsaving a missing bookmark is a soft not-found
	missing, err := unsaveUC.Execute(ctx, SavePostInput{PostID: post.ID})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
