// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/toilettalk/toilettalk/models"
)

// GetLocation returns a location with its messages or ErrLocationNotFound.
func (s *Store) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	loc, err := getLocationRow(ctx, s.db, locationID)
	if err != nil {
		return models.Location{}, err
	}

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT message_id, description, location_id
		FROM message
		WHERE location_id = $1
		ORDER BY message_id
	`, locationID)
	observe("select", "message", start, err)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to query messages for %q: %w", locationID, err)
	}
	defer rows.Close()

	loc.Messages, err = scanMessages(rows)
	if err != nil {
		return models.Location{}, err
	}

	return loc, nil
}

// GetLocationRow returns a location without its messages or
// ErrLocationNotFound. Messages is left empty.
func (s *Store) GetLocationRow(ctx context.Context, locationID string) (models.Location, error) {
	return getLocationRow(ctx, s.db, locationID)
}

// ListLocations returns every location in seed order, each with its
// messages ordered by message_id.
func (s *Store) ListLocations(ctx context.Context) ([]models.Location, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT location_id, passcode, description
		FROM location
		ORDER BY seed_order, location_id
	`)
	observe("select", "location", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	locations := []models.Location{}
	index := map[string]int{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.LocationID, &loc.Passcode, &loc.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		loc.Messages = []models.Message{}
		index[loc.LocationID] = len(locations)
		locations = append(locations, loc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	messages, err := s.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	for _, msg := range messages {
		if i, ok := index[msg.LocationID]; ok {
			locations[i].Messages = append(locations[i].Messages, msg)
		}
	}

	return locations, nil
}

func getLocationRow(ctx context.Context, q queryer, locationID string) (models.Location, error) {
	start := time.Now()

	loc := models.Location{Messages: []models.Message{}}
	err := q.QueryRowContext(ctx, `
		SELECT location_id, passcode, description
		FROM location
		WHERE location_id = $1
	`, locationID).Scan(&loc.LocationID, &loc.Passcode, &loc.Description)
	observe("select", "location", start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, ErrLocationNotFound
	}
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to query location %q: %w", locationID, err)
	}

	return loc, nil
}
