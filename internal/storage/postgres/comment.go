package postgres

import (
	"fmt"

	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"
	"github.com/VitaminP8/board/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

type CommentPostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCommentPostgresStorage(db *gorm.DB, log *zap.Logger) *CommentPostgresStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommentPostgresStorage{db: db, log: log.Named("comments")}
}

// Save inserts the comment. gorm stamps CreatedAt and UpdatedAt.
func (s *CommentPostgresStorage) Save(c *model.Comment) (*model.Comment, error) {
	row := &models.Comment{
		PostID:          c.PostID,
		ParentCommentID: c.ParentCommentID,
		Author:          c.Author,
		AuthorID:        c.AuthorID,
		Content:         c.Content,
	}

	err := s.db.Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	c.UpdatedAt = row.UpdatedAt
	s.log.Debug("saved",
		zap.Int64("id", c.ID),
		zap.Int64("post_id", c.PostID),
		zap.Int64p("parent_comment_id", c.ParentCommentID),
		zap.Int64("author_id", c.AuthorID),
	)
	return c, nil
}

func (s *CommentPostgresStorage) FindByID(id int64) (*model.Comment, error) {
	var row models.Comment
	err := s.db.First(&row, id).Error
	if err != nil {
		return nil, lookupError(err, "comment", id)
	}
	return toComment(row), nil
}

func (s *CommentPostgresStorage) FindAll() ([]*model.Comment, error) {
	return s.find(s.db)
}

func (s *CommentPostgresStorage) FindAllByPostID(postID int64) ([]*model.Comment, error) {
	return s.find(s.db.Where("post_id = ?", postID))
}

func (s *CommentPostgresStorage) find(query *gorm.DB) ([]*model.Comment, error) {
	var rows []models.Comment
	err := query.Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	results := make([]*model.Comment, 0, len(rows))
	for _, row := range rows {
		results = append(results, toComment(row))
	}
	return results, nil
}

// FindAllDescendantCommentIDs asks the database for the direct replies of
// one comment at a time while walking down the tree.
func (s *CommentPostgresStorage) FindAllDescendantCommentIDs(parentID int64) ([]int64, error) {
	ids, err := comment.Descendants(parentID, func(id int64) ([]int64, error) {
		var children []int64
		err := s.db.Model(&models.Comment{}).
			Where("parent_comment_id = ?", id).
			Order("id").
			Pluck("id", &children).Error
		return children, err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get replies: %w", err)
	}
	return ids, nil
}

func (s *CommentPostgresStorage) Update(id int64, content string) error {
	res := s.db.Model(&models.Comment{}).Where("id = ?", id).Update("content", content)
	if res.Error != nil {
		return fmt.Errorf("could not update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.NotFound("comment", id)
	}

	s.log.Debug("updated", zap.Int64("id", id))
	return nil
}

// UpdateAuthor leaves UpdatedAt alone, a rename is not an edit.
func (s *CommentPostgresStorage) UpdateAuthor(id int64, author string) error {
	res := s.db.Model(&models.Comment{}).Where("id = ?", id).UpdateColumn("author", author)
	if res.Error != nil {
		return fmt.Errorf("could not update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.NotFound("comment", id)
	}

	s.log.Debug("author updated", zap.Int64("id", id), zap.String("author", author))
	return nil
}

func (s *CommentPostgresStorage) Delete(id int64) (*model.Comment, error) {
	var row models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return lookupError(err, "comment", id)
		}
		return tx.Delete(&models.Comment{ID: id}).Error
	})
	if err != nil {
		return nil, deleteError(err, "comment")
	}

	s.log.Debug("deleted", zap.Int64("id", id), zap.Int64("post_id", row.PostID))
	return toComment(row), nil
}

func (s *CommentPostgresStorage) DeleteAllByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	res := s.db.Where("id IN (?)", ids).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("could not delete comments: %w", res.Error)
	}

	s.log.Debug("deleted batch", zap.Int("requested", len(ids)), zap.Int64("deleted", res.RowsAffected))
	return nil
}

func (s *CommentPostgresStorage) DeleteByPostID(postID int64) error {
	res := s.db.Where("post_id = ?", postID).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("could not delete comments: %w", res.Error)
	}

	s.log.Debug("deleted for post", zap.Int64("post_id", postID), zap.Int64("deleted", res.RowsAffected))
	return nil
}

func toComment(row models.Comment) *model.Comment {
	return &model.Comment{
		ID:              row.ID,
		PostID:          row.PostID,
		ParentCommentID: row.ParentCommentID,
		Author:          row.Author,
		AuthorID:        row.AuthorID,
		Content:         row.Content,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
