// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Chain

The router wraps every handler as

	middleware.RequestID(middleware.WithLogging(middleware.Metrics(handler)))

and the whole mux in middleware.CORS.

# Request IDs

RequestID reuses an incoming X-Request-ID header or generates a UUID, echoes
it on the response and stores it in the request context:

	id := middleware.GetRequestID(r.Context())

# Request Logging

WithLogging logs request start (method, path, remote, request_id) and
completion (status, duration_ms) through log/slog.

# Metrics

Metrics records Prometheus request counters and latency histograms labelled
with the matched route pattern.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigins)(mux),
	}

Backed by go-chi/cors. Allows GET, POST, DELETE, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Message does not exist.")

Error bodies are always {"error": message}.

Parse JSON request bodies:

	var req models.PostMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Invalid input.")
		return
	}

Encoding and decoding use github.com/goccy/go-json.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
