// Package auth carries the authenticated user through a request. Tokens are verified at the
// gateway, which forwards the user id to the services in the X-User-ID header.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

const HeaderUserID = "X-User-ID"

type ctxKey struct{}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ctxKey{}).(int)
	return id, ok && id > 0
}

// RequireUser rejects requests without a positive numeric X-User-ID header and stores the id
// in the request context.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   "UNAUTHENTICATED",
				"message": "missing or invalid " + HeaderUserID + " header",
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}
