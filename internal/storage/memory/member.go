package memory

import (
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

type MemberMemoryStorage struct {
	members *table[model.Member]
	log     *zap.Logger
}

func NewMemberMemoryStorage(log *zap.Logger) *MemberMemoryStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemberMemoryStorage{
		members: newTable(func(m model.Member) model.Member { return m }),
		log:     log.Named("members"),
	}
}

// Save assigns the next member ID to m and stores a copy of it. Login ID
// uniqueness is the caller's concern.
func (s *MemberMemoryStorage) Save(m *model.Member) (*model.Member, error) {
	s.members.insert(func(id int64) model.Member {
		m.ID = id
		return *m
	})

	s.log.Debug("saved", zap.Int64("id", m.ID), zap.String("login_id", m.LoginID), zap.String("name", m.Name))
	return m, nil
}

func (s *MemberMemoryStorage) FindByID(id int64) (*model.Member, error) {
	m, ok := s.members.get(id)
	if !ok {
		return nil, storage.NotFound("member", id)
	}
	return &m, nil
}

func (s *MemberMemoryStorage) FindByLoginID(loginID string) (*model.Member, error) {
	found := s.members.list(func(m model.Member) bool {
		return m.LoginID == loginID
	})
	if len(found) == 0 {
		return nil, storage.NotFoundBy("member", "login ID", loginID)
	}
	return &found[0], nil
}

func (s *MemberMemoryStorage) FindAll() ([]*model.Member, error) {
	return pointers(s.members.list(nil)), nil
}

func (s *MemberMemoryStorage) Update(id int64, name, password string) error {
	_, ok := s.members.modify(id, func(m *model.Member) {
		m.Name = name
		m.Password = password
	})
	if !ok {
		return storage.NotFound("member", id)
	}

	s.log.Debug("updated", zap.Int64("id", id), zap.String("name", name))
	return nil
}

func (s *MemberMemoryStorage) Delete(id int64) (*model.Member, error) {
	m, ok := s.members.remove(id)
	if !ok {
		return nil, storage.NotFound("member", id)
	}

	s.log.Debug("deleted", zap.Int64("id", id), zap.String("login_id", m.LoginID))
	return &m, nil
}

func pointers[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
