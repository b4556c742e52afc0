// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and seeds fixed data.

# Drivers

Open accepts the database/sql driver name:

  - sqlite: modernc.org/sqlite, pure Go; the DSN is a file path such as
    toilettalk.db. Limited to one open connection; foreign keys are enabled
    through the DSN so every connection has them.
  - postgres: github.com/lib/pq; the DSN is a postgres:// URL.

All queries in the module use $N placeholders, which both drivers accept.

# Schema Creation

	if err := db.CreateSchema(ctx, conn, db.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - location: location_id (key), passcode, description, seed_order
  - message: message_id (autoincrement), description, location_id
  - leaderboard: location_id (key), message_counter

# Relationships

	location 1──* message
	location 1──1 leaderboard

# Seeding

Seed inserts the five fixed campus locations with their passcodes and a
zeroed leaderboard row each, recording each location's list position in
seed_order. Location and leaderboard listings sort on it. Seeding is skipped
when Cocktail Lounge already exists, so restarts keep existing counters.
*/
package db
