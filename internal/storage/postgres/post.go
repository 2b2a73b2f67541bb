package postgres

import (
	"fmt"

	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"
	"github.com/VitaminP8/board/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

type PostPostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPostPostgresStorage(db *gorm.DB, log *zap.Logger) *PostPostgresStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostPostgresStorage{db: db, log: log.Named("posts")}
}

func (s *PostPostgresStorage) Save(p *model.Post) (*model.Post, error) {
	row := &models.Post{
		Title:    p.Title,
		Content:  p.Content,
		Author:   p.Author,
		AuthorID: p.AuthorID,
	}
	setAttachFile(row, p.AttachFile)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return createImageFiles(tx, row.ID, p.ImageFiles)
	})
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	p.ID = row.ID
	s.log.Debug("saved",
		zap.Int64("id", p.ID),
		zap.Int64("author_id", p.AuthorID),
		zap.String("author", p.Author),
		zap.String("title", p.Title),
	)
	return p, nil
}

func (s *PostPostgresStorage) FindByID(id int64) (*model.Post, error) {
	var row models.Post
	err := withImageFiles(s.db).First(&row, id).Error
	if err != nil {
		return nil, lookupError(err, "post", id)
	}
	return toPost(row), nil
}

func (s *PostPostgresStorage) FindAll() ([]*model.Post, error) {
	return s.find(s.db)
}

func (s *PostPostgresStorage) FindByMemberID(memberID int64) ([]*model.Post, error) {
	return s.find(s.db.Where("author_id = ?", memberID))
}

func (s *PostPostgresStorage) find(query *gorm.DB) ([]*model.Post, error) {
	var rows []models.Post
	err := withImageFiles(query).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(rows))
	for _, row := range rows {
		results = append(results, toPost(row))
	}
	return results, nil
}

func (s *PostPostgresStorage) Update(id int64, title, content string, attachFile *model.UploadFile, imageFiles []model.UploadFile) error {
	var attach models.Post
	setAttachFile(&attach, attachFile)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":                   title,
			"content":                 content,
			"attach_upload_file_name": attach.AttachUploadFileName,
			"attach_store_file_name":  attach.AttachStoreFileName,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storage.NotFound("post", id)
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.UploadFile{}).Error; err != nil {
			return err
		}
		return createImageFiles(tx, id, imageFiles)
	})
	if err != nil {
		return updateError(err, "post")
	}

	s.log.Debug("updated", zap.Int64("id", id), zap.String("title", title))
	return nil
}

func (s *PostPostgresStorage) UpdateAuthor(id int64, author string) error {
	res := s.db.Model(&models.Post{}).Where("id = ?", id).UpdateColumn("author", author)
	if res.Error != nil {
		return fmt.Errorf("could not update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.NotFound("post", id)
	}

	s.log.Debug("author updated", zap.Int64("id", id), zap.String("author", author))
	return nil
}

func (s *PostPostgresStorage) Delete(id int64) (*model.Post, error) {
	var row models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := withImageFiles(tx).First(&row, id).Error; err != nil {
			return lookupError(err, "post", id)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.UploadFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{ID: id}).Error
	})
	if err != nil {
		return nil, deleteError(err, "post")
	}

	s.log.Debug("deleted",
		zap.Int64("id", id),
		zap.Int64("author_id", row.AuthorID),
		zap.String("title", row.Title),
	)
	return toPost(row), nil
}

func withImageFiles(db *gorm.DB) *gorm.DB {
	return db.Preload("ImageFiles", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func createImageFiles(tx *gorm.DB, postID int64, files []model.UploadFile) error {
	for i, f := range files {
		err := tx.Create(&models.UploadFile{
			PostID:         postID,
			Position:       i,
			UploadFileName: f.UploadFileName,
			StoreFileName:  f.StoreFileName,
		}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func setAttachFile(row *models.Post, f *model.UploadFile) {
	if f == nil {
		row.AttachUploadFileName = ""
		row.AttachStoreFileName = ""
		return
	}
	row.AttachUploadFileName = f.UploadFileName
	row.AttachStoreFileName = f.StoreFileName
}

func toPost(row models.Post) *model.Post {
	p := &model.Post{
		ID:       row.ID,
		Title:    row.Title,
		Content:  row.Content,
		Author:   row.Author,
		AuthorID: row.AuthorID,
	}
	if row.AttachStoreFileName != "" {
		p.AttachFile = &model.UploadFile{
			UploadFileName: row.AttachUploadFileName,
			StoreFileName:  row.AttachStoreFileName,
		}
	}
	for _, f := range row.ImageFiles {
		p.ImageFiles = append(p.ImageFiles, model.UploadFile{
			UploadFileName: f.UploadFileName,
			StoreFileName:  f.StoreFileName,
		})
	}
	return p
}
