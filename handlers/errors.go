// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

// Client-facing error messages. Not-found and invalid-input both map to 404.
const (
	errMessageNotFound = "Message does not exist."
	errInvalidLocation = "Message from invalid location."
	errInvalidInput    = "Invalid input."
	errDatabase        = "Database error"
)
