package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"starmap-server/internal/auth"
	"starmap-server/internal/shared/cookies"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
)

type contextKey string

const UserContextKey contextKey = "user"

// AuthCookie is read when no Authorization header is present
const AuthCookie = cookies.AuthCookieName

func JWTMiddleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "jwt",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		logger.Debug("Processing JWT authentication")

		token := bearerToken(r)
		if token == "" {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		claims, err := auth.ValidateJWT(secret, token)
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		logger.Debug("JWT authentication successful",
			"subject", claims.Subject,
			"username", claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}

	cookie, err := r.Cookie(AuthCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func GetUserFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(UserContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
