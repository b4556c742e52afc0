// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/toilettalk/toilettalk/cliparse"
	"github.com/toilettalk/toilettalk/db"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full
// schema and seed data. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "toilettalk_test.db")

	conn, err := db.Open(ctx, db.DriverSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	if _, err := db.Seed(ctx, conn); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:         "127.0.0.1",
		Port:         5000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "toilettalk_test.db",
		LogLevel:     "info",
		LogFormat:    cliparse.LogFormatText,
		CORSOrigins:  []string{"*"},
	}
}

// CreateTestMessage inserts a message directly and returns its id.
// The leaderboard is not touched.
func CreateTestMessage(t *testing.T, conn *sql.DB, locationID, description string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO message (description, location_id)
		VALUES ($1, $2)
		RETURNING message_id
	`, description, locationID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test message: %v", err)
	}

	return id
}

// CounterFor reads a location's leaderboard counter
func CounterFor(t *testing.T, conn *sql.DB, locationID string) int {
	t.Helper()

	var counter int
	err := conn.QueryRow(
		"SELECT message_counter FROM leaderboard WHERE location_id = $1", locationID,
	).Scan(&counter)
	if err != nil {
		t.Fatalf("Failed to read counter for %s: %v", locationID, err)
	}

	return counter
}

// Counters reads every leaderboard counter keyed by location_id
func Counters(t *testing.T, conn *sql.DB) map[string]int {
	t.Helper()

	rows, err := conn.Query("SELECT location_id, message_counter FROM leaderboard")
	if err != nil {
		t.Fatalf("Failed to read leaderboard: %v", err)
	}
	defer rows.Close()

	counters := map[string]int{}
	for rows.Next() {
		var id string
		var counter int
		if err := rows.Scan(&id, &counter); err != nil {
			t.Fatalf("Failed to scan leaderboard: %v", err)
		}
		counters[id] = counter
	}

	return counters
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates an HTTP test request with a verbatim body
func MakeRawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks for a JSON error body with the given message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, message string) {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &body)
	if body.Error != message {
		t.Errorf("Expected error %q, got %q", message, body.Error)
	}
}
