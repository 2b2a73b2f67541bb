package graph

import (
	"context"
	"testing"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"
	"github.com/VitaminP8/board/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	svc := board.NewService(
		memory.NewMemberMemoryStorage(nil),
		memory.NewPostMemoryStorage(nil),
		memory.NewCommentMemoryStorage(nil),
		nil,
	)
	return &Resolver{Service: svc, PostsPerPage: 2}
}

func createMemberContext(memberID int64) context.Context {
	return auth.WithMemberID(context.Background(), memberID)
}

func joinMember(t *testing.T, resolver *Resolver, loginID string) *model.Member {
	t.Helper()
	m, err := resolver.Mutation().Join(context.Background(), loginID, loginID, "pw")
	require.NoError(t, err)
	return m
}

func TestMutationResolver_CreatePost(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")

	t.Run("Successful post creation", func(t *testing.T) {
		ctx := createMemberContext(alice.ID)

		post, err := resolver.Mutation().CreatePost(ctx, "Test Post", "Test Content")
		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "Test Post", post.Title)
		assert.Equal(t, "alice", post.Author)
		assert.Equal(t, alice.ID, post.AuthorID)

		saved, err := resolver.Service.Post(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post, saved)
	})

	t.Run("Error when no identity", func(t *testing.T) {
		post, err := resolver.Mutation().CreatePost(context.Background(), "Title", "Content")
		assert.ErrorIs(t, err, auth.ErrNoIdentity)
		assert.Nil(t, post)
	})
}

func TestMutationResolver_EditPost(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")
	bob := joinMember(t, resolver, "bob")

	post, err := resolver.Mutation().CreatePost(createMemberContext(alice.ID), "Title", "Content")
	require.NoError(t, err)

	t.Run("Author edits", func(t *testing.T) {
		edited, err := resolver.Mutation().EditPost(createMemberContext(alice.ID), post.ID, "New", "Body")
		require.NoError(t, err)
		assert.Equal(t, "New", edited.Title)
		assert.Equal(t, "Body", edited.Content)
	})

	t.Run("Someone else is forbidden", func(t *testing.T) {
		_, err := resolver.Mutation().EditPost(createMemberContext(bob.ID), post.ID, "Hijack", "Body")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Missing post", func(t *testing.T) {
		_, err := resolver.Mutation().EditPost(createMemberContext(alice.ID), 999, "New", "Body")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestMutationResolver_DeletePost(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")
	ctx := createMemberContext(alice.ID)

	post, err := resolver.Mutation().CreatePost(ctx, "Title", "Content")
	require.NoError(t, err)
	_, err = resolver.Mutation().AddComment(ctx, post.ID, nil, "first")
	require.NoError(t, err)

	t.Run("Successfully delete post", func(t *testing.T) {
		success, err := resolver.Mutation().DeletePost(ctx, post.ID)
		require.NoError(t, err)
		assert.True(t, success)

		_, err = resolver.Query().Thread(ctx, post.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Deleting twice is not found", func(t *testing.T) {
		success, err := resolver.Mutation().DeletePost(ctx, post.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.False(t, success)
	})
}

func TestMutationResolver_Comments(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")
	bob := joinMember(t, resolver, "bob")
	aliceCtx := createMemberContext(alice.ID)
	bobCtx := createMemberContext(bob.ID)

	post, err := resolver.Mutation().CreatePost(aliceCtx, "Title", "Content")
	require.NoError(t, err)

	root, err := resolver.Mutation().AddComment(bobCtx, post.ID, nil, "root")
	require.NoError(t, err)
	reply, err := resolver.Mutation().AddComment(aliceCtx, post.ID, &root.ID, "reply")
	require.NoError(t, err)
	assert.Equal(t, root.ID, *reply.ParentCommentID)
	assert.Equal(t, "alice", reply.Author)

	t.Run("Only the author edits", func(t *testing.T) {
		_, err := resolver.Mutation().EditComment(aliceCtx, root.ID, "mine now")
		assert.ErrorIs(t, err, ErrForbidden)

		edited, err := resolver.Mutation().EditComment(bobCtx, root.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", edited.Content)
	})

	t.Run("Reply to a missing parent", func(t *testing.T) {
		missing := int64(999)
		_, err := resolver.Mutation().AddComment(aliceCtx, post.ID, &missing, "orphan")
		assert.ErrorIs(t, err, board.ErrInvalidParent)
	})

	t.Run("Delete removes the replies", func(t *testing.T) {
		success, err := resolver.Mutation().DeleteComment(bobCtx, root.ID)
		require.NoError(t, err)
		assert.True(t, success)

		thread, err := resolver.Query().Thread(aliceCtx, post.ID)
		require.NoError(t, err)
		assert.Empty(t, thread.Comments)
	})
}

func TestMutationResolver_UpdateProfile(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")
	ctx := createMemberContext(alice.ID)

	post, err := resolver.Mutation().CreatePost(ctx, "Title", "Content")
	require.NoError(t, err)

	m, err := resolver.Mutation().UpdateProfile(ctx, "Alice B", "new-pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", m.Name)

	saved, err := resolver.Service.Post(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", saved.Author)
}

func TestQueryResolver_SearchPosts(t *testing.T) {
	resolver := newTestResolver()
	alice := joinMember(t, resolver, "alice")
	ctx := createMemberContext(alice.ID)

	for _, title := range []string{"Go tips", "Rust tips", "Go again"} {
		_, err := resolver.Mutation().CreatePost(ctx, title, "Content")
		require.NoError(t, err)
	}

	t.Run("Title search uses the enum name", func(t *testing.T) {
		searchType, keyword := "TITLE", "go"
		res, err := resolver.Query().SearchPosts(ctx, &searchType, &keyword, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)
		require.Len(t, res.Posts, 2)
		assert.Equal(t, "Go again", res.Posts[0].Title)
	})

	t.Run("No filter pages with the configured size", func(t *testing.T) {
		res, err := resolver.Query().SearchPosts(ctx, nil, nil, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
		require.Len(t, res.Posts, 1)
		assert.Equal(t, "Go tips", res.Posts[0].Title)
		assert.Equal(t, 2, res.Window.TotalPages)
	})
}
