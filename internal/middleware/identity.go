package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// IdentityCookie is the cookie carrying the caller's user id.
const IdentityCookie = "userId"

type contextKey string

const userIDKey contextKey = "userID"

// RequireIdentity gates a route subtree on the presence of the identity
// cookie. The cookie value is accepted as the caller's identity as-is: it is
// an opaque client-held token with no server-side record and no signature,
// so possession alone is treated as proof of identity.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(IdentityCookie)
		if err != nil || cookie.Value == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized."})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the identity resolved by RequireIdentity, or "" when the
// request did not pass through the gate.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
