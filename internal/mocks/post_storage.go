package mocks

import (
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/post"
)

type MockPostStorage struct {
	recorder
	next post.PostStorage
}

func NewMockPostStorage(next post.PostStorage) *MockPostStorage {
	return &MockPostStorage{next: next}
}

func (m *MockPostStorage) Save(p *model.Post) (*model.Post, error) {
	if err := m.call("Save"); err != nil {
		return nil, err
	}
	return m.next.Save(p)
}

func (m *MockPostStorage) FindByID(id int64) (*model.Post, error) {
	if err := m.call("FindByID"); err != nil {
		return nil, err
	}
	return m.next.FindByID(id)
}

func (m *MockPostStorage) FindAll() ([]*model.Post, error) {
	if err := m.call("FindAll"); err != nil {
		return nil, err
	}
	return m.next.FindAll()
}

func (m *MockPostStorage) FindByMemberID(memberID int64) ([]*model.Post, error) {
	if err := m.call("FindByMemberID"); err != nil {
		return nil, err
	}
	return m.next.FindByMemberID(memberID)
}

func (m *MockPostStorage) Update(id int64, title, content string, attachFile *model.UploadFile, imageFiles []model.UploadFile) error {
	if err := m.call("Update"); err != nil {
		return err
	}
	return m.next.Update(id, title, content, attachFile, imageFiles)
}

func (m *MockPostStorage) UpdateAuthor(id int64, author string) error {
	if err := m.call("UpdateAuthor"); err != nil {
		return err
	}
	return m.next.UpdateAuthor(id, author)
}

func (m *MockPostStorage) Delete(id int64) (*model.Post, error) {
	if err := m.call("Delete"); err != nil {
		return nil, err
	}
	return m.next.Delete(id)
}
