package memory

import (
	"time"

	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

type CommentMemoryStorage struct {
	comments *table[model.Comment]
	log      *zap.Logger
	now      func() time.Time
}

func NewCommentMemoryStorage(log *zap.Logger) *CommentMemoryStorage {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommentMemoryStorage{
		comments: newTable(model.Comment.Clone),
		log:      log.Named("comments"),
		now:      time.Now,
	}
}

// Save assigns the next comment ID and stamps both timestamps. The parent
// reference is stored as given; checking it is the caller's concern.
func (s *CommentMemoryStorage) Save(c *model.Comment) (*model.Comment, error) {
	now := s.now()
	s.comments.insert(func(id int64) model.Comment {
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		return *c
	})

	s.log.Debug("saved",
		zap.Int64("id", c.ID),
		zap.Int64("post_id", c.PostID),
		zap.Int64p("parent_comment_id", c.ParentCommentID),
		zap.Int64("author_id", c.AuthorID),
	)
	return c, nil
}

func (s *CommentMemoryStorage) FindByID(id int64) (*model.Comment, error) {
	c, ok := s.comments.get(id)
	if !ok {
		return nil, storage.NotFound("comment", id)
	}
	return &c, nil
}

func (s *CommentMemoryStorage) FindAll() ([]*model.Comment, error) {
	return pointers(s.comments.list(nil)), nil
}

func (s *CommentMemoryStorage) FindAllByPostID(postID int64) ([]*model.Comment, error) {
	return pointers(s.comments.list(func(c model.Comment) bool {
		return c.PostID == postID
	})), nil
}

// FindAllDescendantCommentIDs walks a snapshot of the reply index, so a
// concurrent write never shows up halfway through one walk.
func (s *CommentMemoryStorage) FindAllDescendantCommentIDs(parentID int64) ([]int64, error) {
	index := comment.ChildIndex(pointers(s.comments.list(func(c model.Comment) bool {
		return c.IsReply()
	})))

	return comment.Descendants(parentID, func(id int64) ([]int64, error) {
		return index[id], nil
	})
}

func (s *CommentMemoryStorage) Update(id int64, content string) error {
	now := s.now()
	_, ok := s.comments.modify(id, func(c *model.Comment) {
		c.Content = content
		c.UpdatedAt = now
	})
	if !ok {
		return storage.NotFound("comment", id)
	}

	s.log.Debug("updated", zap.Int64("id", id))
	return nil
}

func (s *CommentMemoryStorage) UpdateAuthor(id int64, author string) error {
	_, ok := s.comments.modify(id, func(c *model.Comment) {
		c.Author = author
	})
	if !ok {
		return storage.NotFound("comment", id)
	}

	s.log.Debug("author updated", zap.Int64("id", id), zap.String("author", author))
	return nil
}

func (s *CommentMemoryStorage) Delete(id int64) (*model.Comment, error) {
	c, ok := s.comments.remove(id)
	if !ok {
		return nil, storage.NotFound("comment", id)
	}

	s.log.Debug("deleted", zap.Int64("id", id), zap.Int64("post_id", c.PostID))
	return &c, nil
}

func (s *CommentMemoryStorage) DeleteAllByIDs(ids []int64) error {
	removed, missing := s.comments.removeMany(ids)

	for _, id := range missing {
		s.log.Debug("already gone", zap.Int64("id", id))
	}
	s.log.Debug("deleted batch", zap.Int("requested", len(ids)), zap.Int("deleted", len(removed)))
	return nil
}

func (s *CommentMemoryStorage) DeleteByPostID(postID int64) error {
	removed := s.comments.removeWhere(func(c model.Comment) bool {
		return c.PostID == postID
	})

	s.log.Debug("deleted for post", zap.Int64("post_id", postID), zap.Int("deleted", len(removed)))
	return nil
}
