package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"swapi-server/internal/auth"
	"swapi-server/internal/shared/config"
	"swapi-server/internal/shared/errors"
	"swapi-server/internal/shared/response"
)

type contextKey string

const ClientContextKey contextKey = "client"

// RequireWriteAccess guards mutating requests with a bearer JWT carrying
// the write scope. Safe methods and disabled auth pass through untouched.
func RequireWriteAccess(cfg config.AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)
			logger.Debug("Processing JWT authentication")

			token, ok := bearerToken(r)
			if !ok {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := auth.ValidateJWT(cfg, token)
			if err != nil {
				logger.Debug("Token rejected", "error", err)
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			if !claims.HasScope(auth.ScopeWrite) {
				response.Error(w, r, logger, errors.Forbidden("write access required"))
				return
			}

			logger.Debug("JWT authentication successful", "client", claims.Client)

			ctx := context.WithValue(r.Context(), ClientContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientFromContext returns the authenticated client, or nil.
func GetClientFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(ClientContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
