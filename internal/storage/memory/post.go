package memory

import (
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

type PostMemoryStorage struct {
	posts *table[model.Post]
	log   *zap.Logger
}

func NewPostMemoryStorage(log *zap.Logger) *PostMemoryStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostMemoryStorage{
		posts: newTable(model.Post.Clone),
		log:   log.Named("posts"),
	}
}

func (s *PostMemoryStorage) Save(p *model.Post) (*model.Post, error) {
	s.posts.insert(func(id int64) model.Post {
		p.ID = id
		return *p
	})

	s.log.Debug("saved",
		zap.Int64("id", p.ID),
		zap.Int64("author_id", p.AuthorID),
		zap.String("author", p.Author),
		zap.String("title", p.Title),
	)
	return p, nil
}

func (s *PostMemoryStorage) FindByID(id int64) (*model.Post, error) {
	p, ok := s.posts.get(id)
	if !ok {
		return nil, storage.NotFound("post", id)
	}
	return &p, nil
}

func (s *PostMemoryStorage) FindAll() ([]*model.Post, error) {
	return pointers(s.posts.list(nil)), nil
}

func (s *PostMemoryStorage) FindByMemberID(memberID int64) ([]*model.Post, error) {
	return pointers(s.posts.list(func(p model.Post) bool {
		return p.AuthorID == memberID
	})), nil
}

func (s *PostMemoryStorage) Update(id int64, title, content string, attachFile *model.UploadFile, imageFiles []model.UploadFile) error {
	// copy the attachments in so the caller keeps ownership of its values
	update := model.Post{AttachFile: attachFile, ImageFiles: imageFiles}.Clone()

	_, ok := s.posts.modify(id, func(p *model.Post) {
		p.Title = title
		p.Content = content
		p.AttachFile = update.AttachFile
		p.ImageFiles = update.ImageFiles
	})
	if !ok {
		return storage.NotFound("post", id)
	}

	s.log.Debug("updated", zap.Int64("id", id), zap.String("title", title))
	return nil
}

func (s *PostMemoryStorage) UpdateAuthor(id int64, author string) error {
	_, ok := s.posts.modify(id, func(p *model.Post) {
		p.Author = author
	})
	if !ok {
		return storage.NotFound("post", id)
	}

	s.log.Debug("author updated", zap.Int64("id", id), zap.String("author", author))
	return nil
}

func (s *PostMemoryStorage) Delete(id int64) (*model.Post, error) {
	p, ok := s.posts.remove(id)
	if !ok {
		return nil, storage.NotFound("post", id)
	}

	s.log.Debug("deleted",
		zap.Int64("id", id),
		zap.Int64("author_id", p.AuthorID),
		zap.String("title", p.Title),
	)
	return &p, nil
}
