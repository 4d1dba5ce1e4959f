package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
)

// bookmarkRequest is the JSON body for creating a bookmark.
type bookmarkRequest struct {
	Name      string     `json:"name"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Notes     string     `json:"notes"`
	Category  string     `json:"category"`
	TripID    *uuid.UUID `json:"tripId"`
}

// bookmarkPatchRequest is the JSON body for a partial bookmark update.
// Setting clearTripId unassigns the bookmark from its trip; it wins over
// tripId when both are present.
type bookmarkPatchRequest struct {
	Name        *string    `json:"name"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Notes       *string    `json:"notes"`
	Category    *string    `json:"category"`
	TripID      *uuid.UUID `json:"tripId"`
	ClearTripID bool       `json:"clearTripId"`
}

// CreateBookmark handles POST /bookmarks.
func (s *Server) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeValidation(w, "name is required")
		return
	}
	if msg := validateCoordinates(req.Latitude, req.Longitude); msg != "" {
		writeValidation(w, msg)
		return
	}

	created, err := s.store.AddBookmark(r.Context(), domain.NewBookmark{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
		Category:  req.Category,
		TripID:    req.TripID,
	})
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListBookmarks handles GET /bookmarks.
func (s *Server) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Bookmarks())
}

// UpdateBookmark handles PUT /bookmarks/{id}.
func (s *Server) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmark not found")
	if !ok {
		return
	}
	if !s.bookmarkExists(id) {
		writeNotFound(w, "bookmark not found")
		return
	}

	var req bookmarkPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeValidation(w, "name is required")
		return
	}
	if req.Latitude != nil || req.Longitude != nil {
		lat, lon := 0.0, 0.0
		if req.Latitude != nil {
			lat = *req.Latitude
		}
		if req.Longitude != nil {
			lon = *req.Longitude
		}
		if msg := validateCoordinates(lat, lon); msg != "" {
			writeValidation(w, msg)
			return
		}
	}

	err := s.store.UpdateBookmark(r.Context(), id, domain.BookmarkPatch{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Notes:       req.Notes,
		Category:    req.Category,
		TripID:      req.TripID,
		ClearTripID: req.ClearTripID,
	})
	if err != nil {
		writeInternal(w, err)
		return
	}

	for _, b := range s.store.Bookmarks() {
		if b.ID == id {
			writeJSON(w, http.StatusOK, b)
			return
		}
	}
	writeNotFound(w, "bookmark not found")
}

// DeleteBookmark handles DELETE /bookmarks/{id}. Deletion is idempotent, so
// an unknown ID still answers 204.
func (s *Server) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmark not found")
	if !ok {
		return
	}
	if err := s.store.DeleteBookmark(r.Context(), id); err != nil {
		writeInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateCoordinates checks decimal-degree ranges. Returns an empty string
// when both values are in range.
func validateCoordinates(lat, lon float64) string {
	if lat < -90 || lat > 90 {
		return "latitude must be between -90 and 90"
	}
	if lon < -180 || lon > 180 {
		return "longitude must be between -180 and 180"
	}
	return ""
}

// bookmarkExists reports whether a bookmark with the given ID is in the store.
func (s *Server) bookmarkExists(id uuid.UUID) bool {
	for _, b := range s.store.Bookmarks() {
		if b.ID == id {
			return true
		}
	}
	return false
}
