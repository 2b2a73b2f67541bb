package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/pagination"
	"github.com/VitaminP8/board/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

var (
	errForbidden = errors.New("not the author")
	errBadID     = errors.New("invalid id")
	errBadJSON   = errors.New("invalid JSON")
)

type errorResponse struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code. Anything unrecognised is logged and
// reported as an internal error without details.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status, code := classify(err)
	message := err.Error()
	rid := RequestIDFromContext(r.Context())

	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", rid),
			zap.Error(err),
		)
		message = "Internal server error"
	}

	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message, RequestID: rid}})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, board.ErrDuplicateLoginID):
		return http.StatusConflict, "DUPLICATE_LOGIN_ID"
	case errors.Is(err, board.ErrInvalidParent):
		return http.StatusBadRequest, "INVALID_PARENT"
	case errors.Is(err, board.ErrInvalidInput), errors.Is(err, pagination.ErrInvalidPageSize):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, errBadID):
		return http.StatusBadRequest, "INVALID_ID"
	case errors.Is(err, errBadJSON):
		return http.StatusBadRequest, "INVALID_JSON"
	case errors.Is(err, auth.ErrNoIdentity):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, errForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func decodeJSON[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(dst); err != nil {
		return errBadJSON
	}
	return nil
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, param)), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// actingAs returns an error unless the request carries the identity of
// memberID.
func actingAs(r *http.Request, memberID int64) error {
	id, err := auth.MemberIDFromContext(r.Context())
	if err != nil {
		return err
	}
	if id != memberID {
		return errForbidden
	}
	return nil
}
