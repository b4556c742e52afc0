// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/toilettalk/toilettalk/auth"
	"github.com/toilettalk/toilettalk/metrics"
	"github.com/toilettalk/toilettalk/middleware"
	"github.com/toilettalk/toilettalk/models"
	"github.com/toilettalk/toilettalk/store"
	"github.com/toilettalk/toilettalk/validation"
)

type LocationHandler struct {
	store *store.Store
}

func NewLocationHandler(s *store.Store) *LocationHandler {
	return &LocationHandler{store: s}
}

// List handles GET /api/locations/
// Passcodes are included; the endpoint has no access control.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.ListLocations(r.Context())
	if err != nil {
		slog.Error("failed to list locations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LocationsResponse{Locations: locations})
}

// Enter handles POST /api/locations/
// Checks a location/passcode pair and reports the result without creating a
// session.
func (h *LocationHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var req models.EnterLocationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidInput)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil || req.Password == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidInput)
		return
	}

	loc, err := h.store.GetLocationRow(r.Context(), *req.Location)
	if errors.Is(err, store.ErrLocationNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, errInvalidInput)
		return
	}
	if err != nil {
		slog.Error("failed to get location", "location_id", *req.Location, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, errDatabase)
		return
	}

	valid := auth.CheckPasscode(loc.Passcode, req.Password)
	metrics.RecordLocationEntry(valid)
	slog.Info("location entry checked", "location_id", loc.LocationID, "valid", valid)

	middleware.JSONResponse(w, http.StatusOK, models.EnterLocationResponse{Valid: valid})
}
