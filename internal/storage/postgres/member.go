package postgres

import (
	"fmt"

	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"
	"github.com/VitaminP8/board/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

type MemberPostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMemberPostgresStorage(db *gorm.DB, log *zap.Logger) *MemberPostgresStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemberPostgresStorage{db: db, log: log.Named("members")}
}

func (s *MemberPostgresStorage) Save(m *model.Member) (*model.Member, error) {
	row := &models.Member{
		LoginID:  m.LoginID,
		Name:     m.Name,
		Password: m.Password,
	}

	err := s.db.Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("could not create member: %w", err)
	}

	m.ID = row.ID
	s.log.Debug("saved", zap.Int64("id", m.ID), zap.String("login_id", m.LoginID), zap.String("name", m.Name))
	return m, nil
}

func (s *MemberPostgresStorage) FindByID(id int64) (*model.Member, error) {
	var row models.Member
	err := s.db.First(&row, id).Error
	if err != nil {
		return nil, lookupError(err, "member", id)
	}
	return toMember(row), nil
}

func (s *MemberPostgresStorage) FindByLoginID(loginID string) (*model.Member, error) {
	var row models.Member
	err := s.db.Where("login_id = ?", loginID).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, storage.NotFoundBy("member", "login ID", loginID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get member by login id: %w", err)
	}
	return toMember(row), nil
}

func (s *MemberPostgresStorage) FindAll() ([]*model.Member, error) {
	var rows []models.Member
	err := s.db.Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	results := make([]*model.Member, 0, len(rows))
	for _, row := range rows {
		results = append(results, toMember(row))
	}
	return results, nil
}

func (s *MemberPostgresStorage) Update(id int64, name, password string) error {
	res := s.db.Model(&models.Member{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":     name,
		"password": password,
	})
	if res.Error != nil {
		return fmt.Errorf("could not update member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.NotFound("member", id)
	}

	s.log.Debug("updated", zap.Int64("id", id), zap.String("name", name))
	return nil
}

func (s *MemberPostgresStorage) Delete(id int64) (*model.Member, error) {
	var row models.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return lookupError(err, "member", id)
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return nil, deleteError(err, "member")
	}

	s.log.Debug("deleted", zap.Int64("id", id), zap.String("login_id", row.LoginID))
	return toMember(row), nil
}

func toMember(row models.Member) *model.Member {
	return &model.Member{
		ID:       row.ID,
		LoginID:  row.LoginID,
		Name:     row.Name,
		Password: row.Password,
	}
}
