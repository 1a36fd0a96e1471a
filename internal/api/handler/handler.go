// Package handler provides HTTP handlers for all API endpoints. The
// data-bearing endpoint is a passthrough over the feed orchestrator, fronted
// by a short-TTL cache so repeat hits don't re-poll the provider.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/scorewire/cricketscores/internal/api/respond"
	"github.com/scorewire/cricketscores/internal/cache"
	"github.com/scorewire/cricketscores/internal/config"
	"github.com/scorewire/cricketscores/internal/feed"
)

// MatchSource produces the normalized live-match list. Satisfied by
// *feed.Service.
type MatchSource interface {
	LiveMatches(ctx context.Context) ([]feed.Match, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	matches MatchSource
	cache   *cache.Cache
	cfg     *config.Config
}

// New creates a Handler with shared dependencies.
func New(matches MatchSource, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		matches: matches,
		cache:   c,
		cfg:     cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the upstream feed in use.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Cricket Scores API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"feed":    h.cfg.FeedURL,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
