// Package domain contains the core data types for the Wayfarer travel planner.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (kv, store, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Trip represents a planned journey with a date range and an ordered list
// of destinations. A trip is the top-level aggregate; destinations live
// inside the trip record and are deleted with it. Expenses and bookmarks
// reference trips by ID instead.
type Trip struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Destinations []Destination      `json:"destinations"`
}

// Destination is a single stop within a trip. Slice order in Trip.Destinations
// is the visiting order. StartDate/EndDate are arrival and departure instants,
// not calendar dates, so a destination can span part of a day.
type Destination struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Notes     string    `json:"notes"`
}

// NewTrip carries the caller-supplied fields for creating a trip.
// The store assigns the ID.
type NewTrip struct {
	Title        string
	Description  string
	StartDate    openapi_types.Date
	EndDate      openapi_types.Date
	Destinations []Destination
}

// TripPatch is a partial update for a trip. Nil fields are left unchanged.
type TripPatch struct {
	Title        *string
	Description  *string
	StartDate    *openapi_types.Date
	EndDate      *openapi_types.Date
	Destinations *[]Destination
}

// Apply merges the non-nil fields of the patch onto t.
func (p TripPatch) Apply(t *Trip) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Destinations != nil {
		t.Destinations = *p.Destinations
	}
}
