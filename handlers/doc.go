// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ToiletTalk API.

# Handler Types

Each handler is a struct holding the persistence layer:

  - RootHandler: greeting and health check
  - MessageHandler: message feed, post and delete
  - LocationHandler: location listing and passcode check
  - LeaderboardHandler: per-location message counters

Handlers are created via constructor functions that accept *store.Store:

	messageHandler := handlers.NewMessageHandler(s)

# Messages

	GET    /api/messages/       → List
	GET    /api/messages/{id}/  → Get
	POST   /api/messages/       → Create (increments the location's counter)
	DELETE /api/messages/{id}/  → Delete (counter unchanged)

# Locations

	GET  /api/locations/ → List (passcodes and nested messages, no access control)
	POST /api/locations/ → Enter (returns {"valid?": bool}, no session)

# Leaderboard

	GET /api/leaderboard/ → List

# Errors

Missing records and bad input both answer 404 with {"error": message}:

  - "Message does not exist."
  - "Message from invalid location."
  - "Invalid input."

Database failures answer 500 with {"error": "Database error"} and are
logged.
*/
package handlers
