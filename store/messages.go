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

// ListMessages returns every message ordered by message_id.
func (s *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT message_id, description, location_id
		FROM message
		ORDER BY message_id
	`)
	observe("select", "message", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// GetMessage returns the message with the given id or ErrMessageNotFound.
func (s *Store) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	return getMessage(ctx, s.db, id)
}

// CreateMessage stores a message for an existing location and increments
// that location's leaderboard counter. The existence check, insert and
// increment commit together; ErrLocationNotFound leaves nothing changed.
func (s *Store) CreateMessage(ctx context.Context, locationID, description string) (models.Message, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getLocationRow(ctx, tx, locationID); err != nil {
		return models.Message{}, err
	}

	msg, err := insertMessage(ctx, tx, locationID, description)
	if err != nil {
		return models.Message{}, err
	}

	if err := incrementMessageCounter(ctx, tx, locationID); err != nil {
		return models.Message{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Message{}, fmt.Errorf("failed to commit message: %w", err)
	}

	return msg, nil
}

// DeleteMessage removes a message and returns it as it was stored. The
// leaderboard counter is left unchanged.
func (s *Store) DeleteMessage(ctx context.Context, id int64) (models.Message, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	msg, err := getMessage(ctx, tx, id)
	if err != nil {
		return models.Message{}, err
	}

	start := time.Now()
	_, err = tx.ExecContext(ctx, "DELETE FROM message WHERE message_id = $1", id)
	observe("delete", "message", start, err)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to delete message %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Message{}, fmt.Errorf("failed to commit delete: %w", err)
	}

	return msg, nil
}

func getMessage(ctx context.Context, q queryer, id int64) (models.Message, error) {
	start := time.Now()

	var msg models.Message
	err := q.QueryRowContext(ctx, `
		SELECT message_id, description, location_id
		FROM message
		WHERE message_id = $1
	`, id).Scan(&msg.MessageID, &msg.Description, &msg.LocationID)
	observe("select", "message", start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrMessageNotFound
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to query message %d: %w", id, err)
	}

	return msg, nil
}

func insertMessage(ctx context.Context, q queryer, locationID, description string) (models.Message, error) {
	start := time.Now()

	msg := models.Message{LocationID: locationID, Description: description}
	err := q.QueryRowContext(ctx, `
		INSERT INTO message (description, location_id)
		VALUES ($1, $2)
		RETURNING message_id
	`, description, locationID).Scan(&msg.MessageID)
	observe("insert", "message", start, err)

	if err != nil {
		return models.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}

	return msg, nil
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.MessageID, &msg.Description, &msg.LocationID); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}
