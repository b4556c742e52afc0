// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/toilettalk/toilettalk/models"
	"github.com/toilettalk/toilettalk/store"
	"github.com/toilettalk/toilettalk/testutil"
)

// TestConcurrentPosts verifies that simultaneous posts to one location
// neither lose counter increments nor reuse message ids
func TestConcurrentPosts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewMessageHandler(store.New(db))

	numPosts := 25
	var successCount atomic.Int32
	var wg sync.WaitGroup
	ids := make(chan int64, numPosts)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/messages/", map[string]string{
				"location_id": "Cocktail Lounge",
				"description": "concurrent " + strconv.Itoa(n),
			}, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
				var msg models.Message
				if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
					t.Errorf("Failed to decode message: %v", err)
					return
				}
				ids <- msg.MessageID
			}
		}(i)
	}

	wg.Wait()
	close(ids)

	if int(successCount.Load()) != numPosts {
		t.Errorf("Expected %d successful posts, got %d", numPosts, successCount.Load())
	}

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Errorf("Duplicate message_id %d", id)
		}
		seen[id] = true
	}

	if got := testutil.CounterFor(t, db, "Cocktail Lounge"); got != numPosts {
		t.Errorf("Expected counter %d, got %d (lost updates)", numPosts, got)
	}
}

// TestConcurrentDeletes verifies that exactly one of several deletes of the
// same message succeeds
func TestConcurrentDeletes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewMessageHandler(store.New(db))
	id := strconv.FormatInt(testutil.CreateTestMessage(t, db, "Cocktail Lounge", "contested"), 10)

	numAttempts := 5
	var okCount, notFoundCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("DELETE", "/api/messages/"+id+"/", nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			switch w.Code {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusNotFound:
				notFoundCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if okCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful delete, got %d", okCount.Load())
	}
	if int(notFoundCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d not-found responses, got %d", numAttempts-1, notFoundCount.Load())
	}
}
