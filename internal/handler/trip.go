package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-app/backend/internal/domain"
	"github.com/wayfarer-app/backend/internal/tripform"
)

// tripRequest is the JSON body for creating a trip.
type tripRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	StartDate    openapi_types.Date   `json:"startDate"`
	EndDate      openapi_types.Date   `json:"endDate"`
	Destinations []domain.Destination `json:"destinations"`
}

// tripPatchRequest is the JSON body for a partial trip update.
// Absent fields are left unchanged.
type tripPatchRequest struct {
	Title        *string               `json:"title"`
	Description  *string               `json:"description"`
	StartDate    *openapi_types.Date   `json:"startDate"`
	EndDate      *openapi_types.Date   `json:"endDate"`
	Destinations *[]domain.Destination `json:"destinations"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeValidation(w, "title is required")
		return
	}
	assignDestinationIDs(req.Destinations)
	if errs := tripform.Validate(req.StartDate, req.EndDate, req.Destinations); errs.HasErrors() {
		writeDateErrors(w, errs)
		return
	}

	created, err := s.store.AddTrip(r.Context(), domain.NewTrip{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Destinations: req.Destinations,
	})
	if err != nil {
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Trips())
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	trip, found := s.store.TripByID(id)
	if !found {
		writeNotFound(w, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}. The body is a partial update; the
// merged result is re-validated before the store is touched, so an update
// can never push a trip into an invalid date range through this API.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	trip, found := s.store.TripByID(id)
	if !found {
		writeNotFound(w, "trip not found")
		return
	}

	var req tripPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeValidation(w, "title is required")
		return
	}

	patch := domain.TripPatch{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Destinations: req.Destinations,
	}

	// Validate the would-be result of the merge, not the patch in isolation.
	merged := trip
	patch.Apply(&merged)
	assignDestinationIDs(merged.Destinations)
	if errs := tripform.Validate(merged.StartDate, merged.EndDate, merged.Destinations); errs.HasErrors() {
		writeDateErrors(w, errs)
		return
	}

	if err := s.store.UpdateTrip(r.Context(), id, patch); err != nil {
		writeInternal(w, err)
		return
	}
	updated, _ := s.store.TripByID(id)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}. The removed trip is returned in the
// response body so the client can offer an undo via POST /trips/{id}/restore.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	removed, err := s.store.DeleteTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

// RestoreTrip handles POST /trips/{id}/restore. The body is the trip record
// previously returned by DeleteTrip; it is re-inserted verbatim.
func (s *Server) RestoreTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}

	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeBadBody(w, err)
		return
	}
	if trip.ID != id {
		writeValidation(w, "trip id in body does not match URL")
		return
	}

	if err := s.store.RestoreTrip(r.Context(), trip); err != nil {
		writeInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTripExpenses handles GET /trips/{id}/expenses.
func (s *Server) ListTripExpenses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.ExpensesByTripID(id))
}

// ListTripBookmarks handles GET /trips/{id}/bookmarks.
func (s *Server) ListTripBookmarks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.BookmarksByTripID(id))
}

// pathID parses the {id} URL parameter. On failure it writes a 404 with the
// given message; a malformed UUID can never name an existing resource.
func pathID(w http.ResponseWriter, r *http.Request, missing string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, missing)
		return uuid.UUID{}, false
	}
	return id, true
}

// assignDestinationIDs gives every destination without an ID a fresh one.
// Destination IDs are client-visible but the server is their source.
func assignDestinationIDs(dests []domain.Destination) {
	for i := range dests {
		if dests[i].ID == (uuid.UUID{}) {
			dests[i].ID = uuid.New()
		}
	}
}
