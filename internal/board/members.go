package board

import (
	"errors"
	"fmt"

	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

// Join registers m under a login ID nobody else uses yet.
func (s *Service) Join(m *model.Member) (*model.Member, error) {
	for _, check := range []error{
		required("login ID", m.LoginID),
		required("name", m.Name),
		required("password", m.Password),
	} {
		if check != nil {
			return nil, check
		}
	}

	s.joinMu.Lock()
	defer s.joinMu.Unlock()

	_, err := s.members.FindByLoginID(m.LoginID)
	switch {
	case err == nil:
		return nil, &DuplicateKeyError{LoginID: m.LoginID}
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	saved, err := s.members.Save(m)
	if err != nil {
		return nil, err
	}

	s.log.Info("member joined", zap.Int64("member_id", saved.ID), zap.String("login_id", saved.LoginID))
	return saved, nil
}

func (s *Service) Members() ([]*model.Member, error) {
	return s.members.FindAll()
}

func (s *Service) Member(id int64) (*model.Member, error) {
	return s.members.FindByID(id)
}

// UpdateProfile changes a member's name and password and carries the new
// name over to everything the member has written.
func (s *Service) UpdateProfile(memberID int64, name, password string) error {
	if err := required("name", name); err != nil {
		return err
	}
	if err := required("password", password); err != nil {
		return err
	}

	if err := s.members.Update(memberID, name, password); err != nil {
		return err
	}

	posts, err := s.posts.FindByMemberID(memberID)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if err := s.posts.UpdateAuthor(p.ID, name); err != nil {
			return fmt.Errorf("rename author of post %d: %w", p.ID, err)
		}
	}

	comments, err := s.comments.FindAll()
	if err != nil {
		return err
	}
	renamed := 0
	for _, c := range comments {
		if c.AuthorID != memberID {
			continue
		}
		if err := s.comments.UpdateAuthor(c.ID, name); err != nil {
			return fmt.Errorf("rename author of comment %d: %w", c.ID, err)
		}
		renamed++
	}

	s.log.Info("profile updated",
		zap.Int64("member_id", memberID),
		zap.Int("posts", len(posts)),
		zap.Int("comments", renamed),
	)
	return nil
}

// DeleteMember removes every post the member wrote, each through DeletePost,
// and then the member. Comments the member left on other posts stay.
func (s *Service) DeleteMember(memberID int64) error {
	posts, err := s.posts.FindByMemberID(memberID)
	if err != nil {
		return err
	}

	for _, p := range posts {
		if err := s.DeletePost(p.ID); err != nil {
			return err
		}
	}

	if _, err := s.members.Delete(memberID); err != nil {
		return err
	}

	s.log.Info("member deleted", zap.Int64("member_id", memberID), zap.Int("posts", len(posts)))
	return nil
}
