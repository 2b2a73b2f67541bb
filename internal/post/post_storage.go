package post

import (
	"github.com/VitaminP8/board/internal/model"
)

type PostStorage interface {
	Save(post *model.Post) (*model.Post, error)
	FindByID(id int64) (*model.Post, error)
	FindAll() ([]*model.Post, error)
	FindByMemberID(memberID int64) ([]*model.Post, error)
	// Update replaces title, content and attachments. A nil attachFile or
	// imageFiles clears them.
	Update(id int64, title, content string, attachFile *model.UploadFile, imageFiles []model.UploadFile) error
	UpdateAuthor(id int64, author string) error
	Delete(id int64) (*model.Post, error)
}
