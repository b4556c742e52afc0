// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toilettalk/toilettalk/cliparse"
	"github.com/toilettalk/toilettalk/handlers"
	"github.com/toilettalk/toilettalk/middleware"
	"github.com/toilettalk/toilettalk/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(s)
	messageHandler := handlers.NewMessageHandler(s)
	locationHandler := handlers.NewLocationHandler(s)
	leaderboardHandler := handlers.NewLeaderboardHandler(s)

	// Operational endpoints
	mux.HandleFunc("GET /health", rootHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", wrap(rootHandler.Home))

	// Messages
	mux.HandleFunc("GET /api/messages/{$}", wrap(messageHandler.List))
	mux.HandleFunc("POST /api/messages/{$}", wrap(messageHandler.Create))
	mux.HandleFunc("GET /api/messages/{id}/{$}", wrap(messageHandler.Get))
	mux.HandleFunc("DELETE /api/messages/{id}/{$}", wrap(messageHandler.Delete))

	// Locations
	mux.HandleFunc("GET /api/locations/{$}", wrap(locationHandler.List))
	mux.HandleFunc("POST /api/locations/{$}", wrap(locationHandler.Enter))

	// Leaderboard
	mux.HandleFunc("GET /api/leaderboard/{$}", wrap(leaderboardHandler.List))

	return middleware.CORS(cfg.CORSOrigins)(mux)
}

// wrap applies the per-request middleware chain
func wrap(h http.HandlerFunc) http.HandlerFunc {
	return middleware.RequestID(middleware.WithLogging(middleware.Metrics(h)))
}
