package mocks

import (
	"github.com/VitaminP8/board/internal/member"
	"github.com/VitaminP8/board/internal/model"
)

type MockMemberStorage struct {
	recorder
	next member.MemberStorage
}

func NewMockMemberStorage(next member.MemberStorage) *MockMemberStorage {
	return &MockMemberStorage{next: next}
}

func (m *MockMemberStorage) Save(mb *model.Member) (*model.Member, error) {
	if err := m.call("Save"); err != nil {
		return nil, err
	}
	return m.next.Save(mb)
}

func (m *MockMemberStorage) FindByID(id int64) (*model.Member, error) {
	if err := m.call("FindByID"); err != nil {
		return nil, err
	}
	return m.next.FindByID(id)
}

func (m *MockMemberStorage) FindByLoginID(loginID string) (*model.Member, error) {
	if err := m.call("FindByLoginID"); err != nil {
		return nil, err
	}
	return m.next.FindByLoginID(loginID)
}

func (m *MockMemberStorage) FindAll() ([]*model.Member, error) {
	if err := m.call("FindAll"); err != nil {
		return nil, err
	}
	return m.next.FindAll()
}

func (m *MockMemberStorage) Update(id int64, name, password string) error {
	if err := m.call("Update"); err != nil {
		return err
	}
	return m.next.Update(id, name, password)
}

func (m *MockMemberStorage) Delete(id int64) (*model.Member, error) {
	if err := m.call("Delete"); err != nil {
		return nil, err
	}
	return m.next.Delete(id)
}
