package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tasklight/tasklight/internal/platform/httpx"
	"github.com/tasklight/tasklight/internal/shared"
)

// RequireAuth returns middleware that resolves the bearer token into a
// caller identity and stores it in the request context. A missing token
// is a 401; an invalid or expired token is a unified 403. Downstream
// handlers read the identity from context and never re-parse the token.
func RequireAuth(tokens *TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				httpx.RespondError(w, shared.ErrTokenMissing)
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				if logger != nil && errors.Is(err, shared.ErrTokenInvalid) {
					logger.Warn("token rejected", slog.String("path", r.URL.Path))
				}
				httpx.RespondError(w, err)
				return
			}

			ctx := shared.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
