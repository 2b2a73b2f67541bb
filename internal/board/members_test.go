package board

import (
	"errors"
	"sync"
	"testing"

	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Join(t *testing.T) {
	f := newFixture()

	t.Run("New login id", func(t *testing.T) {
		m := f.join(t, "alice", "Alice")
		assert.Equal(t, int64(1), m.ID)
	})

	t.Run("Duplicate login id", func(t *testing.T) {
		_, err := f.svc.Join(&model.Member{LoginID: "alice", Name: "Other", Password: "pw"})

		assert.ErrorIs(t, err, ErrDuplicateLoginID)
		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "alice", dup.LoginID)

		all, err := f.svc.Members()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Blank fields", func(t *testing.T) {
		_, err := f.svc.Join(&model.Member{LoginID: "bob", Name: " ", Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("Lookup failure is not treated as free login", func(t *testing.T) {
		boom := errors.New("store down")
		f.members.FailOn("FindByLoginID", boom)
		defer f.members.FailOn("FindByLoginID", nil)

		_, err := f.svc.Join(&model.Member{LoginID: "carol", Name: "Carol", Password: "pw"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_Join_Concurrent(t *testing.T) {
	f := newFixture()

	const joiners = 20
	var wg sync.WaitGroup
	errs := make(chan error, joiners)

	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Join(&model.Member{LoginID: "alice", Name: "Alice", Password: "pw"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	joined := 0
	for err := range errs {
		if err == nil {
			joined++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicateLoginID)
	}
	assert.Equal(t, 1, joined)

	all, err := f.svc.Members()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_UpdateProfile(t *testing.T) {
	f := newFixture()
	alice := f.join(t, "alice", "Alice")
	bob := f.join(t, "bob", "Bob")

	p := f.post(t, alice.ID, "hello")
	other := f.post(t, bob.ID, "bob's post")
	onOwn := f.comment(t, alice.ID, p.ID, nil)
	onOther := f.comment(t, alice.ID, other.ID, nil)
	bobs := f.comment(t, bob.ID, p.ID, nil)

	require.NoError(t, f.svc.UpdateProfile(alice.ID, "Alicia", "new"))

	m, err := f.svc.Member(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", m.Name)
	assert.Equal(t, "new", m.Password)

	got, err := f.svc.Post(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Author)

	got, err = f.svc.Post(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Author)

	for _, id := range []int64{onOwn.ID, onOther.ID} {
		c, err := f.svc.Comment(id)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", c.Author)
	}
	c, err := f.svc.Comment(bobs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.Author)

	t.Run("Missing member", func(t *testing.T) {
		err := f.svc.UpdateProfile(999, "x", "y")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestService_DeleteMember(t *testing.T) {
	t.Run("Removes posts with their comments, then the member", func(t *testing.T) {
		f := newFixture()
		alice := f.join(t, "alice", "Alice")
		bob := f.join(t, "bob", "Bob")

		p1 := f.post(t, alice.ID, "one")
		p2 := f.post(t, alice.ID, "two")
		kept := f.post(t, bob.ID, "bob's")

		f.comment(t, bob.ID, p1.ID, nil)
		f.comment(t, bob.ID, p2.ID, nil)
		aliceOnBob := f.comment(t, alice.ID, kept.ID, nil)

		require.NoError(t, f.svc.DeleteMember(alice.ID))

		_, err := f.svc.Member(alice.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		posts, err := f.svc.MemberPosts(alice.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)

		for _, id := range []int64{p1.ID, p2.ID} {
			comments, err := f.comments.FindAllByPostID(id)
			require.NoError(t, err)
			assert.Empty(t, comments)
		}

		_, err = f.svc.Post(kept.ID)
		assert.NoError(t, err)
		_, err = f.svc.Comment(aliceOnBob.ID)
		assert.NoError(t, err, "comments on other members' posts stay")
	})

	t.Run("Member without posts", func(t *testing.T) {
		f := newFixture()
		alice := f.join(t, "alice", "Alice")

		require.NoError(t, f.svc.DeleteMember(alice.ID))
		_, err := f.svc.Member(alice.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Missing member", func(t *testing.T) {
		f := newFixture()
		err := f.svc.DeleteMember(42)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("Failure stops the cascade without rollback", func(t *testing.T) {
		f := newFixture()
		alice := f.join(t, "alice", "Alice")
		p := f.post(t, alice.ID, "one")
		c := f.comment(t, alice.ID, p.ID, nil)

		boom := errors.New("disk full")
		f.posts.FailOn("Delete", boom)

		err := f.svc.DeleteMember(alice.ID)
		assert.ErrorIs(t, err, boom)

		// comments went first and stay deleted
		_, err = f.svc.Comment(c.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = f.svc.Member(alice.ID)
		assert.NoError(t, err)
		assert.NotContains(t, f.members.Calls(), "Delete")
	})
}
