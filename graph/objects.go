package graph

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/pagination"

	"github.com/99designs/gqlgen/graphql"
)

type queryObject struct{ r *queryResolver }

func (queryObject) typeName() string { return "Query" }

func (o queryObject) field(ctx context.Context, name string, args map[string]any) (any, error) {
	a := readArgs(args)

	switch name {
	case "members":
		ms, err := o.r.Members(ctx)
		if err != nil {
			return nil, err
		}
		return memberList(ms), nil

	case "member":
		id := a.id("id")
		if a.err != nil {
			return nil, a.err
		}
		m, err := o.r.Member(ctx, id)
		if err != nil {
			return nil, err
		}
		return memberObject{m}, nil

	case "memberPosts":
		memberID := a.id("memberId")
		if a.err != nil {
			return nil, a.err
		}
		ps, err := o.r.MemberPosts(ctx, memberID)
		if err != nil {
			return nil, err
		}
		return postList(ps), nil

	case "thread":
		postID := a.id("postId")
		if a.err != nil {
			return nil, a.err
		}
		th, err := o.r.Thread(ctx, postID)
		if err != nil {
			return nil, err
		}
		return threadObject{th}, nil

	case "searchPosts":
		searchType, keyword, page := a.optionalString("type"), a.optionalString("keyword"), a.integer("page", 1)
		if a.err != nil {
			return nil, a.err
		}
		res, err := o.r.SearchPosts(ctx, searchType, keyword, page)
		if err != nil {
			return nil, err
		}
		return postPageObject{res}, nil

	case "__schema", "__type":
		return nil, errIntrospection
	}
	return nil, unknownField("Query", name)
}

type mutationObject struct{ r *mutationResolver }

func (mutationObject) typeName() string { return "Mutation" }

func (o mutationObject) field(ctx context.Context, name string, args map[string]any) (any, error) {
	a := readArgs(args)

	switch name {
	case "join":
		loginID, memberName, password := a.str("loginId"), a.str("name"), a.str("password")
		if a.err != nil {
			return nil, a.err
		}
		m, err := o.r.Join(ctx, loginID, memberName, password)
		if err != nil {
			return nil, err
		}
		return memberObject{m}, nil

	case "updateProfile":
		memberName, password := a.str("name"), a.str("password")
		if a.err != nil {
			return nil, a.err
		}
		m, err := o.r.UpdateProfile(ctx, memberName, password)
		if err != nil {
			return nil, err
		}
		return memberObject{m}, nil

	case "deleteMember":
		ok, err := o.r.DeleteMember(ctx)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(ok), nil

	case "createPost":
		title, content := a.str("title"), a.str("content")
		if a.err != nil {
			return nil, a.err
		}
		p, err := o.r.CreatePost(ctx, title, content)
		if err != nil {
			return nil, err
		}
		return postObject{p}, nil

	case "editPost":
		id, title, content := a.id("id"), a.str("title"), a.str("content")
		if a.err != nil {
			return nil, a.err
		}
		p, err := o.r.EditPost(ctx, id, title, content)
		if err != nil {
			return nil, err
		}
		return postObject{p}, nil

	case "deletePost":
		id := a.id("id")
		if a.err != nil {
			return nil, a.err
		}
		ok, err := o.r.DeletePost(ctx, id)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(ok), nil

	case "addComment":
		postID, parentID, content := a.id("postId"), a.optionalID("parentCommentId"), a.str("content")
		if a.err != nil {
			return nil, a.err
		}
		c, err := o.r.AddComment(ctx, postID, parentID, content)
		if err != nil {
			return nil, err
		}
		return commentObject{c: c}, nil

	case "editComment":
		id, content := a.id("id"), a.str("content")
		if a.err != nil {
			return nil, a.err
		}
		c, err := o.r.EditComment(ctx, id, content)
		if err != nil {
			return nil, err
		}
		return commentObject{c: c}, nil

	case "deleteComment":
		id := a.id("id")
		if a.err != nil {
			return nil, a.err
		}
		ok, err := o.r.DeleteComment(ctx, id)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(ok), nil
	}
	return nil, unknownField("Mutation", name)
}

type memberObject struct{ m *model.Member }

func (memberObject) typeName() string { return "Member" }

func (o memberObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "id":
		return marshalID(o.m.ID), nil
	case "loginId":
		return graphql.MarshalString(o.m.LoginID), nil
	case "name":
		return graphql.MarshalString(o.m.Name), nil
	}
	return nil, unknownField("Member", name)
}

type uploadFileObject struct{ f model.UploadFile }

func (uploadFileObject) typeName() string { return "UploadFile" }

func (o uploadFileObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "uploadFileName":
		return graphql.MarshalString(o.f.UploadFileName), nil
	case "storeFileName":
		return graphql.MarshalString(o.f.StoreFileName), nil
	}
	return nil, unknownField("UploadFile", name)
}

type postObject struct{ p *model.Post }

func (postObject) typeName() string { return "Post" }

func (o postObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "id":
		return marshalID(o.p.ID), nil
	case "title":
		return graphql.MarshalString(o.p.Title), nil
	case "content":
		return graphql.MarshalString(o.p.Content), nil
	case "author":
		return graphql.MarshalString(o.p.Author), nil
	case "authorId":
		return marshalID(o.p.AuthorID), nil
	case "attachFile":
		if o.p.AttachFile == nil {
			return nil, nil
		}
		return uploadFileObject{*o.p.AttachFile}, nil
	case "imageFiles":
		files := make([]object, len(o.p.ImageFiles))
		for i, f := range o.p.ImageFiles {
			files[i] = uploadFileObject{f}
		}
		return files, nil
	}
	return nil, unknownField("Post", name)
}

// commentObject is a comment with the replies known for it; a comment read
// outside a thread has none.
type commentObject struct {
	c       *model.Comment
	replies []*comment.Node
}

func (commentObject) typeName() string { return "Comment" }

func (o commentObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "id":
		return marshalID(o.c.ID), nil
	case "postId":
		return marshalID(o.c.PostID), nil
	case "parentCommentId":
		if o.c.ParentCommentID == nil {
			return nil, nil
		}
		return marshalID(*o.c.ParentCommentID), nil
	case "author":
		return graphql.MarshalString(o.c.Author), nil
	case "authorId":
		return marshalID(o.c.AuthorID), nil
	case "content":
		return graphql.MarshalString(o.c.Content), nil
	case "createdAt":
		return graphql.MarshalTime(o.c.CreatedAt), nil
	case "updatedAt":
		return graphql.MarshalTime(o.c.UpdatedAt), nil
	case "replies":
		return nodeList(o.replies), nil
	}
	return nil, unknownField("Comment", name)
}

type threadObject struct{ t *board.Thread }

func (threadObject) typeName() string { return "Thread" }

func (o threadObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "post":
		return postObject{o.t.Post}, nil
	case "comments":
		return nodeList(o.t.Comments), nil
	}
	return nil, unknownField("Thread", name)
}

type windowObject struct{ w pagination.Window }

func (windowObject) typeName() string { return "PageWindow" }

func (o windowObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "totalPages":
		return graphql.MarshalInt(o.w.TotalPages), nil
	case "currentPage":
		return graphql.MarshalInt(o.w.CurrentPage), nil
	case "startPage":
		return graphql.MarshalInt(o.w.StartPage), nil
	case "endPage":
		return graphql.MarshalInt(o.w.EndPage), nil
	case "hasPrev":
		return graphql.MarshalBoolean(o.w.HasPrev), nil
	case "hasNext":
		return graphql.MarshalBoolean(o.w.HasNext), nil
	case "pages":
		pages := o.w.Pages()
		out := make(graphql.Array, len(pages))
		for i, p := range pages {
			out[i] = graphql.MarshalInt(p)
		}
		return out, nil
	}
	return nil, unknownField("PageWindow", name)
}

type postPageObject struct{ res *board.SearchResult }

func (postPageObject) typeName() string { return "PostPage" }

func (o postPageObject) field(_ context.Context, name string, _ map[string]any) (any, error) {
	switch name {
	case "posts":
		return postList(o.res.Posts), nil
	case "totalCount":
		return graphql.MarshalInt(o.res.TotalCount), nil
	case "window":
		return windowObject{o.res.Window}, nil
	}
	return nil, unknownField("PostPage", name)
}

func memberList(ms []*model.Member) []object {
	out := make([]object, len(ms))
	for i, m := range ms {
		out[i] = memberObject{m}
	}
	return out
}

func postList(ps []*model.Post) []object {
	out := make([]object, len(ps))
	for i, p := range ps {
		out[i] = postObject{p}
	}
	return out
}

func nodeList(nodes []*comment.Node) []object {
	out := make([]object, len(nodes))
	for i, n := range nodes {
		out[i] = commentObject{c: n.Comment, replies: n.Replies}
	}
	return out
}

func marshalID(id int64) graphql.Marshaler {
	return graphql.MarshalID(strconv.FormatInt(id, 10))
}

func unknownField(typeName, name string) error {
	return fmt.Errorf("no resolver for %s.%s", typeName, name)
}

// argReader decodes field arguments. The first failure sticks in err and
// later reads return zero values.
type argReader struct {
	values map[string]any
	err    error
}

func readArgs(values map[string]any) *argReader {
	return &argReader{values: values}
}

func (a *argReader) id(name string) int64 {
	if a.err != nil {
		return 0
	}
	raw, err := graphql.UnmarshalID(a.values[name])
	if err != nil {
		a.err = fmt.Errorf("%w: %s: %v", errBadArgument, name, err)
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		a.err = fmt.Errorf("%w: %s must be a number, got %q", errBadArgument, name, raw)
		return 0
	}
	return id
}

func (a *argReader) optionalID(name string) *int64 {
	if a.values[name] == nil {
		return nil
	}
	id := a.id(name)
	if a.err != nil {
		return nil
	}
	return &id
}

func (a *argReader) str(name string) string {
	if a.err != nil {
		return ""
	}
	s, err := graphql.UnmarshalString(a.values[name])
	if err != nil {
		a.err = fmt.Errorf("%w: %s: %v", errBadArgument, name, err)
		return ""
	}
	return s
}

func (a *argReader) optionalString(name string) *string {
	if a.values[name] == nil {
		return nil
	}
	s := a.str(name)
	if a.err != nil {
		return nil
	}
	return &s
}

func (a *argReader) integer(name string, fallback int) int {
	if a.err != nil || a.values[name] == nil {
		return fallback
	}
	n, err := graphql.UnmarshalInt(a.values[name])
	if err != nil {
		a.err = fmt.Errorf("%w: %s: %v", errBadArgument, name, err)
		return fallback
	}
	return n
}
