// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/toilettalk/toilettalk/middleware"
	"github.com/toilettalk/toilettalk/models"
	"github.com/toilettalk/toilettalk/store"
)

const healthTimeout = 2 * time.Second

type RootHandler struct {
	store *store.Store
}

func NewRootHandler(s *store.Store) *RootHandler {
	return &RootHandler{store: s}
}

// Home handles GET /
func (h *RootHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HomeResponse{Homescreen: "hello world"})
}

// Health handles GET /health
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
