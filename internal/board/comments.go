package board

import (
	"errors"
	"fmt"

	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

// AddComment saves c on an existing post. A reply's parent must exist and
// belong to the same post.
func (s *Service) AddComment(c *model.Comment) (*model.Comment, error) {
	if err := required("content", c.Content); err != nil {
		return nil, err
	}

	s.threadMu.Lock()
	defer s.threadMu.Unlock()

	if _, err := s.posts.FindByID(c.PostID); err != nil {
		return nil, err
	}

	if c.ParentCommentID != nil {
		parent, err := s.comments.FindByID(*c.ParentCommentID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: comment %d does not exist", ErrInvalidParent, *c.ParentCommentID)
		}
		if err != nil {
			return nil, err
		}
		if parent.PostID != c.PostID {
			return nil, fmt.Errorf("%w: comment %d belongs to post %d", ErrInvalidParent, parent.ID, parent.PostID)
		}
	}

	author, err := s.members.FindByID(c.AuthorID)
	if err != nil {
		return nil, err
	}
	c.Author = author.Name

	return s.comments.Save(c)
}

func (s *Service) Comment(id int64) (*model.Comment, error) {
	return s.comments.FindByID(id)
}

func (s *Service) EditComment(id int64, content string) error {
	if err := required("content", content); err != nil {
		return err
	}
	return s.comments.Update(id, content)
}

// DeleteComment removes a comment together with every reply below it, in a
// single bulk delete. Replies added through AddComment wait until it is done.
func (s *Service) DeleteComment(id int64) error {
	s.threadMu.Lock()
	defer s.threadMu.Unlock()

	if _, err := s.comments.FindByID(id); err != nil {
		return err
	}

	descendants, err := s.comments.FindAllDescendantCommentIDs(id)
	if err != nil {
		return err
	}

	ids := append([]int64{id}, descendants...)
	if err := s.comments.DeleteAllByIDs(ids); err != nil {
		return err
	}

	s.log.Info("comment deleted", zap.Int64("comment_id", id), zap.Int("replies", len(descendants)))
	return nil
}

// Thread is a post with its comments arranged as reply trees.
type Thread struct {
	Post     *model.Post     `json:"post"`
	Comments []*comment.Node `json:"comments"`
}

func (s *Service) Thread(postID int64) (*Thread, error) {
	p, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.FindAllByPostID(postID)
	if err != nil {
		return nil, err
	}

	return &Thread{Post: p, Comments: comment.BuildForest(comments)}, nil
}
