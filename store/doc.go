// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer for locations, messages and the
leaderboard.

	s := store.New(conn)
	msg, err := s.CreateMessage(ctx, "Cocktail Lounge", "hello")
	if errors.Is(err, store.ErrLocationNotFound) {
		// 404
	}

# Messages

CreateMessage checks the location, inserts the message and increments the
location's counter in one transaction. DeleteMessage returns the removed row
and leaves the counter alone, so counters track messages ever posted rather
than messages present.

# Leaderboard

IncrementMessageCounter and DecrementMessageCounter are single UPDATE
statements. Decrement floors at zero and has no caller in the HTTP layer.

# Errors

Lookups return ErrMessageNotFound or ErrLocationNotFound; everything else is
a wrapped driver error. Every query is timed into the metrics package.
*/
package store
