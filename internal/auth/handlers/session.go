package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"starmap-server/internal/auth"
	"starmap-server/internal/middleware"
	"starmap-server/internal/shared/cookies"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
)

type SessionResponse struct {
	Subject   string    `json:"subject"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newSessionResponse(c *auth.Claims) SessionResponse {
	resp := SessionResponse{Subject: c.Subject, Username: c.Username, Role: c.Role}
	if c.ExpiresAt != nil {
		resp.ExpiresAt = c.ExpiresAt.Time
	}
	return resp
}

// SessionHandler lets browser clients trade a bearer token for the
// HttpOnly auth cookie and drop it again
type SessionHandler struct {
	secret   string
	settings cookies.Settings
}

func NewSessionHandler(secret string, settings cookies.Settings) *SessionHandler {
	return &SessionHandler{secret: secret, settings: settings}
}

// Login handles POST /api/auth/session
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "session_login", "remote_addr", r.RemoteAddr)

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		response.Error(w, r, logger, errors.Unauthorized("bearer token required"))
		return
	}

	claims, err := auth.ValidateJWT(h.secret, token)
	if err != nil {
		response.Error(w, r, logger, errors.Unauthorized("invalid token"))
		return
	}

	cookies.SetAuthCookie(w, h.settings, token)
	logger.Info("Session started", "subject", claims.Subject, "username", claims.Username)

	response.Success(w, http.StatusOK, newSessionResponse(claims))
}

// Logout handles POST /api/auth/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)
	logger.Debug("Logout requested")

	cookies.ClearAuthCookie(w, h.settings)

	response.Success(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me behind the JWT middleware
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	response.Success(w, http.StatusOK, newSessionResponse(claims))
}
