// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ToiletTalk API server.

ToiletTalk is an anonymous message board. Messages are tagged with one of a
fixed set of physical locations, each location keeps a counter of messages
posted there, and a location/passcode pair can be checked without creating
a session.

# Starting the Server

With no configuration the server listens on 0.0.0.0:5000 and stores data in
a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -d data/toilettalk.db

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Settings come from flags, then the environment (and a .env file), then
defaults:

  - HOST (-host): Listen address (default: 0.0.0.0)
  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL DSN (default: toilettalk.db)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)
  - CORS_ORIGINS, SHUTDOWN_TIMEOUT

# Startup

On start the schema is created if missing and the five fixed locations are
seeded along with their leaderboard rows. Restarting against an existing
database leaves its rows alone.

# Architecture

  - handlers: HTTP request handlers (messages, locations, leaderboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, logging, metrics, CORS, JSON helpers
  - store: Queries and transactions
  - db: Connection, schema creation and seeding
  - models: Request/response types
  - validation: Request body validation
  - auth: Passcode comparison
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
