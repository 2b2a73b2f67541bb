package comment

import (
	"github.com/VitaminP8/board/internal/model"
)

type CommentStorage interface {
	Save(comment *model.Comment) (*model.Comment, error)
	FindByID(id int64) (*model.Comment, error)
	FindAll() ([]*model.Comment, error)
	FindAllByPostID(postID int64) ([]*model.Comment, error)
	// FindAllDescendantCommentIDs returns every reply below parentID at any
	// depth, in pre-order, without parentID itself.
	FindAllDescendantCommentIDs(parentID int64) ([]int64, error)
	Update(id int64, content string) error
	UpdateAuthor(id int64, author string) error
	Delete(id int64) (*model.Comment, error)
	// DeleteAllByIDs removes every listed comment that still exists. Missing
	// ids are skipped.
	DeleteAllByIDs(ids []int64) error
	DeleteByPostID(postID int64) error
}
