package middleware

import (
	"context"
	"net/http"
	"strings"

	"ems/internal/auth"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	AccountID string
	Name      string
	Role      string
}

func (u UserContext) IsAdmin() bool {
	return u.Role == auth.RoleAdmin
}

// TokenCookie is the cookie the login handler sets; the middleware accepts
// the credential from either this cookie or a bearer Authorization header.
const TokenCookie = "token"

// Auth attaches the authenticated user to the request context when a valid
// token is presented. Requests without a usable credential pass through
// unauthenticated; RequireAuth and RequireAdmin enforce access.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, UserContext{
				AccountID: claims.AccountID,
				Name:      claims.Name,
				Role:      claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}
