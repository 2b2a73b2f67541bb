package graph

import (
	"context"
	"strings"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/model"
)

func (r *queryResolver) Members(ctx context.Context) ([]*model.Member, error) {
	return r.Service.Members()
}

func (r *queryResolver) Member(ctx context.Context, id int64) (*model.Member, error) {
	return r.Service.Member(id)
}

func (r *queryResolver) MemberPosts(ctx context.Context, memberID int64) ([]*model.Post, error) {
	return r.Service.MemberPosts(memberID)
}

func (r *queryResolver) Thread(ctx context.Context, postID int64) (*board.Thread, error) {
	return r.Service.Thread(postID)
}

// SearchPosts takes the search type as the schema's enum name (TITLE, AUTHOR).
func (r *queryResolver) SearchPosts(ctx context.Context, searchType, keyword *string, page int) (*board.SearchResult, error) {
	q := board.SearchQuery{Page: page, PerPage: r.perPage()}
	if searchType != nil {
		q.Type = strings.ToLower(*searchType)
	}
	if keyword != nil {
		q.Keyword = *keyword
	}
	return r.Service.SearchPosts(q)
}

func (r *mutationResolver) Join(ctx context.Context, loginID, name, password string) (*model.Member, error) {
	return r.Service.Join(&model.Member{LoginID: loginID, Name: name, Password: password})
}

func (r *mutationResolver) UpdateProfile(ctx context.Context, name, password string) (*model.Member, error) {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Service.UpdateProfile(memberID, name, password); err != nil {
		return nil, err
	}
	return r.Service.Member(memberID)
}

// DeleteMember removes the acting member along with its posts.
func (r *mutationResolver) DeleteMember(ctx context.Context) (bool, error) {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return false, err
	}
	if err := r.Service.DeleteMember(memberID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreatePost(ctx context.Context, title, content string) (*model.Post, error) {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.Service.CreatePost(&model.Post{Title: title, Content: content, AuthorID: memberID})
}

// EditPost keeps the post's attachments; files only change through the web
// layer.
func (r *mutationResolver) EditPost(ctx context.Context, id int64, title, content string) (*model.Post, error) {
	if err := r.ownPost(ctx, id); err != nil {
		return nil, err
	}
	if err := r.Service.EditPost(id, title, content, nil, nil); err != nil {
		return nil, err
	}
	return r.Service.Post(id)
}

func (r *mutationResolver) DeletePost(ctx context.Context, id int64) (bool, error) {
	if err := r.ownPost(ctx, id); err != nil {
		return false, err
	}
	if err := r.Service.DeletePost(id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddComment(ctx context.Context, postID int64, parentCommentID *int64, content string) (*model.Comment, error) {
	memberID, err := auth.MemberIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.Service.AddComment(&model.Comment{
		PostID:          postID,
		ParentCommentID: parentCommentID,
		AuthorID:        memberID,
		Content:         content,
	})
}

func (r *mutationResolver) EditComment(ctx context.Context, id int64, content string) (*model.Comment, error) {
	if err := r.ownComment(ctx, id); err != nil {
		return nil, err
	}
	if err := r.Service.EditComment(id, content); err != nil {
		return nil, err
	}
	return r.Service.Comment(id)
}

// DeleteComment removes the comment and every reply below it.
func (r *mutationResolver) DeleteComment(ctx context.Context, id int64) (bool, error) {
	if err := r.ownComment(ctx, id); err != nil {
		return false, err
	}
	if err := r.Service.DeleteComment(id); err != nil {
		return false, err
	}
	return true, nil
}
