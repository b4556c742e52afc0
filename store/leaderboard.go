// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/toilettalk/toilettalk/models"
)

// ListLeaderboard returns every leaderboard row in location seed order.
func (s *Store) ListLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT lb.location_id, lb.message_counter
		FROM leaderboard lb
		JOIN location l ON l.location_id = lb.location_id
		ORDER BY l.seed_order, lb.location_id
	`)
	observe("select", "leaderboard", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.LocationID, &entry.MessageCounter); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}

// IncrementMessageCounter adds one to a location's counter.
func (s *Store) IncrementMessageCounter(ctx context.Context, locationID string) error {
	return incrementMessageCounter(ctx, s.db, locationID)
}

// DecrementMessageCounter subtracts one from a location's counter, never
// going below zero. No route calls it: deleting a message keeps the count.
func (s *Store) DecrementMessageCounter(ctx context.Context, locationID string) error {
	return updateMessageCounter(ctx, s.db, locationID, `
		UPDATE leaderboard
		SET message_counter = message_counter - 1
		WHERE location_id = $1 AND message_counter > 0
	`, true)
}

func incrementMessageCounter(ctx context.Context, q queryer, locationID string) error {
	return updateMessageCounter(ctx, q, locationID, `
		UPDATE leaderboard
		SET message_counter = message_counter + 1
		WHERE location_id = $1
	`, false)
}

// updateMessageCounter runs a single-statement counter update so concurrent
// posts cannot lose increments. When allowNoop is set, zero affected rows on
// an existing location is not an error.
func updateMessageCounter(ctx context.Context, q queryer, locationID, query string, allowNoop bool) error {
	start := time.Now()
	res, err := q.ExecContext(ctx, query, locationID)
	observe("update", "leaderboard", start, err)
	if err != nil {
		return fmt.Errorf("failed to update counter for %q: %w", locationID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	if allowNoop {
		if _, err := getLocationRow(ctx, q, locationID); err != nil {
			return err
		}
		return nil
	}
	return ErrLocationNotFound
}
