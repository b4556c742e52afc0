// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedLocation is a location created at startup.
type SeedLocation struct {
	LocationID string
	Passcode   int
}

// SeedLocations is the fixed set of campus locations, in seed order.
var SeedLocations = []SeedLocation{
	{"Duffield First Floor", 1111},
	{"Duffield Second Floor", 2222},
	{"Cocktail Lounge", 3333},
	{"Hollister First Floor", 4444},
	{"Statler Hall Second Floor", 5555},
}

// seedMarker is checked to decide whether seeding already ran.
const seedMarker = "Cocktail Lounge"

// Seed inserts SeedLocations and a zeroed leaderboard row for each, in one
// transaction. seed_order records each location's position so listings
// come back in seed order. It returns false without writing if the database is already
// seeded.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var exists int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM location WHERE location_id = $1", seedMarker,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check seed state: %w", err)
	}
	if exists > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, loc := range SeedLocations {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO location (location_id, passcode, seed_order) VALUES ($1, $2, $3)",
			loc.LocationID, loc.Passcode, i,
		); err != nil {
			return false, fmt.Errorf("failed to seed location %q: %w", loc.LocationID, err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO leaderboard (location_id, message_counter) VALUES ($1, 0)",
			loc.LocationID,
		); err != nil {
			return false, fmt.Errorf("failed to seed leaderboard for %q: %w", loc.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	return true, nil
}
