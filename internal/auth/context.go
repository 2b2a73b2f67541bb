// Package auth carries the acting member's identity through a request. The
// identity is resolved upstream; nothing here verifies it.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// MemberIDHeader is set by the gateway in front of the board.
const MemberIDHeader = "X-Member-ID"

var ErrNoIdentity = errors.New("member ID not found in context")

type contextKey string

const memberIDKey = contextKey("memberID")

func WithMemberID(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}

func MemberIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(memberIDKey).(int64)
	if !ok {
		return 0, ErrNoIdentity
	}
	return id, nil
}

// Middleware puts the member ID from the request header into the request
// context. Requests without a usable header pass through anonymously.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := parseMemberID(r.Header.Get(MemberIDHeader))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithMemberID(r.Context(), memberID)))
	})
}

func parseMemberID(header string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(header), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
