package board

import (
	"testing"

	"github.com/VitaminP8/board/internal/mocks"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage/memory"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *Service
	members  *mocks.MockMemberStorage
	posts    *mocks.MockPostStorage
	comments *mocks.MockCommentStorage
}

func newFixture() *fixture {
	f := &fixture{
		members:  mocks.NewMockMemberStorage(memory.NewMemberMemoryStorage(nil)),
		posts:    mocks.NewMockPostStorage(memory.NewPostMemoryStorage(nil)),
		comments: mocks.NewMockCommentStorage(memory.NewCommentMemoryStorage(nil)),
	}
	f.svc = NewService(f.members, f.posts, f.comments, nil)
	return f
}

func (f *fixture) join(t *testing.T, loginID, name string) *model.Member {
	t.Helper()
	m, err := f.svc.Join(&model.Member{LoginID: loginID, Name: name, Password: "pw"})
	require.NoError(t, err)
	return m
}

func (f *fixture) post(t *testing.T, authorID int64, title string) *model.Post {
	t.Helper()
	p, err := f.svc.CreatePost(&model.Post{Title: title, Content: "content", AuthorID: authorID})
	require.NoError(t, err)
	return p
}

func (f *fixture) comment(t *testing.T, authorID, postID int64, parent *int64) *model.Comment {
	t.Helper()
	c, err := f.svc.AddComment(&model.Comment{PostID: postID, ParentCommentID: parent, AuthorID: authorID, Content: "comment"})
	require.NoError(t, err)
	return c
}
