// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PostMessageRequest: location_id, description
  - EnterLocationRequest: location, password

Required fields are pointers so a missing field can be told apart from an
empty one; they carry validate tags checked by the validation package.

# Response Types

Types for JSON responses:

  - HomeResponse: homescreen
  - MessagesResponse: messages
  - LocationsResponse: locations
  - LeaderboardResponse: leaderboard
  - EnterLocationResponse: valid?
  - ErrorResponse: error

# Domain Types

Relationships:

	Location 1──* Message
	Location 1──1 LeaderboardEntry

Fields:

  - Location: location_id, passcode, description, nested messages
  - Message: message_id, description, location_id
  - LeaderboardEntry: location_id, message_counter

Passcodes are serialized in plaintext; GET /api/locations/ has no access
control.
*/
package models
