package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scorewire/cricketscores/internal/api/respond"
	"github.com/scorewire/cricketscores/internal/cache"
	"github.com/scorewire/cricketscores/internal/feed"
)

const liveMatchesKey = "matches:live"

// GetLiveMatches returns the current normalized live-match list.
// @Summary Live matches
// @Description Fetches the provider feed, deduplicates repeated match reports by datapath, and returns one flat record per match. Served through a short-TTL cache with ETag support.
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /matches [get]
func (h *Handler) GetLiveMatches(w http.ResponseWriter, r *http.Request) {
	ttl := h.cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.TTLLive
	}

	if data, etag, ok := h.cache.Get(liveMatchesKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	matches, err := h.matches.LiveMatches(r.Context())
	if err != nil {
		var fetchErr *feed.FetchError
		var parseErr *feed.ParseError
		switch {
		case errors.As(err, &fetchErr):
			respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_STATUS",
				"Feed endpoint returned a non-success status", fetchErr.Error())
		case errors.As(err, &parseErr):
			respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_PARSE",
				"Feed document could not be parsed", parseErr.Error())
		default:
			respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Feed fetch failed")
		}
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"count":   len(matches),
		"matches": matches,
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_ERROR", "Failed to encode matches")
		return
	}

	etag := h.cache.Set(liveMatchesKey, payload, ttl)
	respond.WriteJSON(w, payload, etag, ttl, false)
}
