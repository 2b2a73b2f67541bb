package httpapi

import (
	"net/http"

	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/model"

	"go.uber.org/zap"
)

type joinRequest struct {
	LoginID  string `json:"loginId"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type updateMemberRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// JoinMember handles POST /members
func JoinMember(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		m, err := svc.Join(&model.Member{LoginID: req.LoginID, Name: req.Name, Password: req.Password})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, m)
	}
}

// UpdateMember handles PATCH /members/{memberID}
func UpdateMember(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		if err := actingAs(r, memberID); err != nil {
			writeError(w, r, log, err)
			return
		}

		var req updateMemberRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		if err := svc.UpdateProfile(memberID, req.Name, req.Password); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteMember handles DELETE /members/{memberID}
func DeleteMember(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		if err := actingAs(r, memberID); err != nil {
			writeError(w, r, log, err)
			return
		}

		if err := svc.DeleteMember(memberID); err != nil {
			writeError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// MemberPosts handles GET /members/{memberID}/posts
func MemberPosts(svc *board.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		posts, err := svc.MemberPosts(memberID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}
