package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starmap-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

// Pinger is satisfied by the database pool
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports the cache as disabled when cache is nil
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "disconnected"
	if err := h.db.PingContext(ctx); err == nil {
		dbStatus = "connected"
	} else {
		logger.Warn("Database ping failed", "error", err)
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "disconnected"
		if err := h.cache.PingContext(ctx); err == nil {
			cacheStatus = "connected"
		} else {
			logger.Warn("Cache ping failed", "error", err)
		}
	}

	status := "healthy"
	if dbStatus != "connected" {
		status = "degraded"
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  dbStatus,
		Cache:     cacheStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
