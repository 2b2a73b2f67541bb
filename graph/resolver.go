package graph

import (
	"context"
	"errors"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"

	"go.uber.org/zap"
)

// ErrForbidden is returned when the acting member did not write the post or
// comment it tries to change.
var ErrForbidden = errors.New("only the author may change this")

// Resolver is the root of every query and mutation. All of them go through
// the board service.
type Resolver struct {
	Service      *board.Service
	PostsPerPage int
	Log          *zap.Logger
}

func (r *Resolver) Query() *queryResolver { return &queryResolver{r} }
func (r *Resolver) Mutation() *mutationResolver { return &mutationResolver{r} }

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }

func (r *Resolver) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r *Resolver) perPage() int {
	if r.PostsPerPage <= 0 {
		return 10
	}
	return r.PostsPerPage
}

func (r *Resolver) ownPost(ctx context.Context, postID int64) error {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return err
	}
	p, err := r.Service.Post(postID)
	if err != nil {
		return err
	}
	if p.AuthorID != memberID {
		return ErrForbidden
	}
	return nil
}

func (r *Resolver) ownComment(ctx context.Context, commentID int64) error {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return err
	}
	c, err := r.Service.Comment(commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != memberID {
		return ErrForbidden
	}
	return nil
}
