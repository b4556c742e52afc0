// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ToiletTalk API.

# Route Registration

NewRouter builds an http.ServeMux with all endpoints and wraps it in CORS:

	handler := router.NewRouter(store.New(db), cfg)

Patterns end in {$}, so only the exact paths below match. A known path with
another method gets 405 from the mux.

# Endpoints

Operational:

	GET /health  - Database ping
	GET /metrics - Prometheus exposition

Root:

	GET /

Messages:

	GET    /api/messages/      - List all messages
	POST   /api/messages/      - Post a message to a location
	GET    /api/messages/{id}/ - Get one message
	DELETE /api/messages/{id}/ - Delete a message

Locations:

	GET  /api/locations/ - List locations with their messages
	POST /api/locations/ - Check a location passcode

Leaderboard:

	GET /api/leaderboard/

# Middleware

API routes run through RequestID, WithLogging and Metrics in that order.
/health and /metrics are registered bare so scrapes and probes stay out of
the request log.
*/
package router
