// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/toilettalk/toilettalk/metrics"
	"github.com/toilettalk/toilettalk/middleware"
	"github.com/toilettalk/toilettalk/models"
	"github.com/toilettalk/toilettalk/store"
	"github.com/toilettalk/toilettalk/validation"
)

type MessageHandler struct {
	store *store.Store
}

func NewMessageHandler(s *store.Store) *MessageHandler {
	return &MessageHandler{store: s}
}

// List handles GET /api/messages/
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.ListMessages(r.Context())
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessagesResponse{Messages: messages})
}

// Get handles GET /api/messages/{id}/
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, errMessageNotFound)
		return
	}

	msg, err := h.store.GetMessage(r.Context(), id)
	if errors.Is(err, store.ErrMessageNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, errMessageNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get message", "message_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, msg)
}

// Create handles POST /api/messages/
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PostMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidInput)
		return
	}

	if req.LocationID == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidLocation)
		return
	}

	// An unknown location is reported ahead of a bad body
	if err := validation.ValidateStruct(&req); err != nil {
		slog.Debug("rejected message", "error", err)
		_, lookupErr := h.store.GetLocationRow(r.Context(), req.LocationID)
		switch {
		case errors.Is(lookupErr, store.ErrLocationNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, errInvalidLocation)
		case lookupErr != nil:
			slog.Error("failed to get location", "location_id", req.LocationID, "error", lookupErr)
			middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		default:
			middleware.ErrorResponse(w, http.StatusNotFound, errInvalidInput)
		}
		return
	}

	msg, err := h.store.CreateMessage(r.Context(), req.LocationID, *req.Description)
	if errors.Is(err, store.ErrLocationNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidLocation)
		return
	}
	if err != nil {
		slog.Error("failed to create message", "location_id", req.LocationID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	metrics.MessagesPosted.WithLabelValues(msg.LocationID).Inc()
	slog.Info("message posted", "message_id", msg.MessageID, "location_id", msg.LocationID)

	middleware.JSONResponse(w, http.StatusCreated, msg)
}

// Delete handles DELETE /api/messages/{id}/
// The leaderboard counter is not decremented.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, errMessageNotFound)
		return
	}

	msg, err := h.store.DeleteMessage(r.Context(), id)
	if errors.Is(err, store.ErrMessageNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, errMessageNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete message", "message_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	metrics.MessagesDeleted.Inc()
	slog.Info("message deleted", "message_id", msg.MessageID, "location_id", msg.LocationID)

	middleware.JSONResponse(w, http.StatusOK, msg)
}

// messageID parses the {id} path value. Anything that is not a positive
// integer cannot name a message.
func messageID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
