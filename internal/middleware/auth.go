package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bloglist/internal/api/httpx"
	"bloglist/internal/auth"
	repo "bloglist/internal/repository"
)

const bearerPrefix = "bearer "

// TokenExtractor pulls the bearer token out of the Authorization header and
// attaches it to the request context. It never rejects; routes that need a
// token enforce that via RequireUser.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if strings.HasPrefix(strings.ToLower(ah), bearerPrefix) {
			token := strings.TrimSpace(ah[len(bearerPrefix):])
			r = r.WithContext(WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

type AuthMiddleware struct {
	tm    *auth.TokenManager
	users repo.Users
}

func NewAuthMiddleware(tm *auth.TokenManager, users repo.Users) *AuthMiddleware {
	return &AuthMiddleware{tm: tm, users: users}
}

// RequireUser verifies the extracted token, resolves its identity claim to a
// stored user and attaches that user to the context. Rejects with 401 before
// the handler runs otherwise.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFrom(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		claims, err := m.tm.Parse(token)
		if err != nil {
			httpx.Error(w, err)
			return
		}
		u, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrMalformedID) {
				httpx.WriteError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}
			httpx.Error(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
