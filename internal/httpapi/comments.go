package httpapi

import (
	"net/http"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/storage"

	"go.uber.org/zap"
)

type createCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parentCommentId,omitempty"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

// AddComment handles POST /posts/{postID}/comments
func AddComment(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := auth.MemberIDFromContext(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		postID, err := pathID(r, "postID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req createCommentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		c, err := svc.AddComment(&model.Comment{
			PostID:          postID,
			ParentCommentID: req.ParentCommentID,
			AuthorID:        memberID,
			Content:         req.Content,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// EditComment handles PATCH /posts/{postID}/comments/{commentID}
func EditComment(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := ownComment(svc, r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req updateCommentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		if err := svc.EditComment(c.ID, req.Content); err != nil {
			writeError(w, r, log, err)
			return
		}

		updated, err := svc.Comment(c.ID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// DeleteComment handles DELETE /posts/{postID}/comments/{commentID}
func DeleteComment(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := ownComment(svc, r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		if err := svc.DeleteComment(c.ID); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ownComment loads the comment named in the path. It must sit on the post in
// the path and have been written by the caller.
func ownComment(svc *board.Service, r *http.Request) (*model.Comment, error) {
	postID, err := pathID(r, "postID")
	if err != nil {
		return nil, err
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		return nil, err
	}
	if _, err := auth.MemberIDFromContext(r.Context()); err != nil {
		return nil, err
	}

	c, err := svc.Comment(commentID)
	if err != nil {
		return nil, err
	}
	if c.PostID != postID {
		return nil, storage.NotFound("comment", commentID)
	}
	if err := actingAs(r, c.AuthorID); err != nil {
		return nil, err
	}
	return c, nil
}
