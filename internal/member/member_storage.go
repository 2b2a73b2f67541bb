package member

import (
	"github.com/VitaminP8/board/internal/model"
)

type MemberStorage interface {
	Save(member *model.Member) (*model.Member, error)
	FindByID(id int64) (*model.Member, error)
	FindByLoginID(loginID string) (*model.Member, error)
	FindAll() ([]*model.Member, error)
	Update(id int64, name, password string) error
	Delete(id int64) (*model.Member, error)
}
