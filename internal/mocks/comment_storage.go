package mocks

import (
	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/model"
)

// MockCommentStorage delegates to next, records each call and returns the
// error registered with FailOn instead when there is one. DeleteAllByIDs
// also keeps the id lists it was given.
type MockCommentStorage struct {
	recorder
	next comment.CommentStorage

	deletedBatches [][]int64
}

func NewMockCommentStorage(next comment.CommentStorage) *MockCommentStorage {
	return &MockCommentStorage{next: next}
}

func (m *MockCommentStorage) Save(c *model.Comment) (*model.Comment, error) {
	if err := m.call("Save"); err != nil {
		return nil, err
	}
	return m.next.Save(c)
}

func (m *MockCommentStorage) FindByID(id int64) (*model.Comment, error) {
	if err := m.call("FindByID"); err != nil {
		return nil, err
	}
	return m.next.FindByID(id)
}

func (m *MockCommentStorage) FindAll() ([]*model.Comment, error) {
	if err := m.call("FindAll"); err != nil {
		return nil, err
	}
	return m.next.FindAll()
}

func (m *MockCommentStorage) FindAllByPostID(postID int64) ([]*model.Comment, error) {
	if err := m.call("FindAllByPostID"); err != nil {
		return nil, err
	}
	return m.next.FindAllByPostID(postID)
}

func (m *MockCommentStorage) FindAllDescendantCommentIDs(parentID int64) ([]int64, error) {
	if err := m.call("FindAllDescendantCommentIDs"); err != nil {
		return nil, err
	}
	return m.next.FindAllDescendantCommentIDs(parentID)
}

func (m *MockCommentStorage) Update(id int64, content string) error {
	if err := m.call("Update"); err != nil {
		return err
	}
	return m.next.Update(id, content)
}

func (m *MockCommentStorage) UpdateAuthor(id int64, author string) error {
	if err := m.call("UpdateAuthor"); err != nil {
		return err
	}
	return m.next.UpdateAuthor(id, author)
}

func (m *MockCommentStorage) Delete(id int64) (*model.Comment, error) {
	if err := m.call("Delete"); err != nil {
		return nil, err
	}
	return m.next.Delete(id)
}

func (m *MockCommentStorage) DeleteAllByIDs(ids []int64) error {
	m.mu.Lock()
	m.deletedBatches = append(m.deletedBatches, append([]int64(nil), ids...))
	m.mu.Unlock()

	if err := m.call("DeleteAllByIDs"); err != nil {
		return err
	}
	return m.next.DeleteAllByIDs(ids)
}

// DeletedBatches returns the id lists passed to DeleteAllByIDs.
func (m *MockCommentStorage) DeletedBatches() [][]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]int64(nil), m.deletedBatches...)
}

func (m *MockCommentStorage) DeleteByPostID(postID int64) error {
	if err := m.call("DeleteByPostID"); err != nil {
		return err
	}
	return m.next.DeleteByPostID(postID)
}
