package httpapi

import (
	"net/http"
	"strconv"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/model"

	"go.uber.org/zap"
)

// postRequest names the uploaded files. The bytes are kept by the file
// service; the board only records where they went.
type postRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	AttachFile string   `json:"attachFile,omitempty"`
	ImageFiles []string `json:"imageFiles,omitempty"`
}

func (req postRequest) uploads() (*model.UploadFile, []model.UploadFile) {
	var attach *model.UploadFile
	if req.AttachFile != "" {
		f := model.NewUploadFile(req.AttachFile)
		attach = &f
	}

	var images []model.UploadFile
	for _, name := range req.ImageFiles {
		if name != "" {
			images = append(images, model.NewUploadFile(name))
		}
	}
	return attach, images
}

// SearchPosts handles GET /posts?type=&keyword=&page=
func SearchPosts(svc *board.Service, log *zap.Logger, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page := 1
		if p := q.Get("page"); p != "" {
			if parsed, err := strconv.Atoi(p); err == nil {
				page = parsed
			}
		}

		res, err := svc.SearchPosts(board.SearchQuery{
			Type:    q.Get("type"),
			Keyword: q.Get("keyword"),
			Page:    page,
			PerPage: perPage,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// CreatePost handles POST /posts
func CreatePost(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := auth.MemberIDFromContext(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req postRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		attach, images := req.uploads()
		p, err := svc.CreatePost(&model.Post{
			Title:      req.Title,
			Content:    req.Content,
			AuthorID:   memberID,
			AttachFile: attach,
			ImageFiles: images,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// GetThread handles GET /posts/{postID}
func GetThread(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		thread, err := svc.Thread(postID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, thread)
	}
}

// EditPost handles PATCH /posts/{postID}
func EditPost(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ownPost(svc, r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var req postRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		attach, images := req.uploads()
		if err := svc.EditPost(p.ID, req.Title, req.Content, attach, images); err != nil {
			writeError(w, r, log, err)
			return
		}

		updated, err := svc.Post(p.ID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// DeletePost handles DELETE /posts/{postID}
func DeletePost(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ownPost(svc, r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		if err := svc.DeletePost(p.ID); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ownPost loads the post named in the path and checks the caller wrote it.
func ownPost(svc *board.Service, r *http.Request) (*model.Post, error) {
	postID, err := pathID(r, "postID")
	if err != nil {
		return nil, err
	}
	if _, err := auth.MemberIDFromContext(r.Context()); err != nil {
		return nil, err
	}

	p, err := svc.Post(postID)
	if err != nil {
		return nil, err
	}
	if err := actingAs(r, p.AuthorID); err != nil {
		return nil, err
	}
	return p, nil
}
