// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/toilettalk/toilettalk/middleware"
	"github.com/toilettalk/toilettalk/models"
	"github.com/toilettalk/toilettalk/store"
)

type LeaderboardHandler struct {
	store *store.Store
}

func NewLeaderboardHandler(s *store.Store) *LeaderboardHandler {
	return &LeaderboardHandler{store: s}
}

// List handles GET /api/leaderboard/
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListLeaderboard(r.Context())
	if err != nil {
		slog.Error("failed to list leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{Leaderboard: entries})
}
