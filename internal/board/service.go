// Package board implements the board's use cases on top of the member, post
// and comment stores: joining, posting, replying, searching and the cascading
// deletes that keep the stores consistent with each other.
package board

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/member"
	"github.com/VitaminP8/board/internal/post"

	"go.uber.org/zap"
)

var (
	ErrDuplicateLoginID = errors.New("login id already exists")
	ErrInvalidParent    = errors.New("invalid parent comment")
	ErrInvalidInput     = errors.New("invalid input")
)

// DuplicateKeyError is returned by Join when the login ID is taken.
type DuplicateKeyError struct {
	LoginID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("member with login ID %s already exists", e.LoginID)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateLoginID
}

// Service is safe for concurrent use as long as the stores are. The cascades
// are not atomic: the first failing step aborts the rest and nothing already
// deleted is restored.
//
// joinMu serializes the login ID check with the save in Join. threadMu is held
// while a comment is added and while a comment subtree or a post is deleted,
// so no reply lands under a comment or post that is being removed. Both only
// cover writers going through this Service.
type Service struct {
	members  member.MemberStorage
	posts    post.PostStorage
	comments comment.CommentStorage
	log      *zap.Logger

	joinMu   sync.Mutex
	threadMu sync.Mutex
}

func NewService(members member.MemberStorage, posts post.PostStorage, comments comment.CommentStorage, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		members:  members,
		posts:    posts,
		comments: comments,
		log:      log.Named("board"),
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}
