package models

// Request types

type PostMessageRequest struct {
	LocationID  string  `json:"location_id"`
	Description *string `json:"description" validate:"required"`
}

// Password is left untyped so that only a JSON number can match a passcode;
// a numeric string such as "3333" decodes fine but never compares equal.
// A nil Password means the field was missing.
type EnterLocationRequest struct {
	Location *string `json:"location" validate:"required"`
	Password any     `json:"password"`
}

// Response types

type HomeResponse struct {
	Homescreen string `json:"homescreen"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type EnterLocationResponse struct {
	Valid bool `json:"valid?"`
}

// Domain types

type Message struct {
	MessageID   int64  `json:"message_id"`
	Description string `json:"description"`
	LocationID  string `json:"location_id"`
}

type Location struct {
	LocationID  string    `json:"location_id"`
	Passcode    int       `json:"passcode"`
	Description *string   `json:"description"`
	Messages    []Message `json:"messages"`
}

type LeaderboardEntry struct {
	LocationID     string `json:"location_id"`
	MessageCounter int    `json:"message_counter"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
