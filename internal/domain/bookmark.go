package domain

import "github.com/google/uuid"

// Bookmark is a saved geographic point of interest. TripID is optional —
// nil means the bookmark is unassigned. Deleting a trip clears the reference
// on its bookmarks instead of deleting them.
type Bookmark struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Notes     string     `json:"notes"`
	Category  string     `json:"category"`
	TripID    *uuid.UUID `json:"tripId,omitempty"`
}

// BookmarkCategories is the fixed set offered by the bookmark form.
var BookmarkCategories = []string{
	"Restaurant",
	"Hotel",
	"Attraction",
	"Shopping",
	"Beach",
	"Museum",
	"Park",
	"Other",
}

// NewBookmark carries the caller-supplied fields for creating a bookmark.
type NewBookmark struct {
	Name      string
	Latitude  float64
	Longitude float64
	Notes     string
	Category  string
	TripID    *uuid.UUID
}

// BookmarkPatch is a partial update for a bookmark. Nil fields are left
// unchanged. ClearTripID unassigns the bookmark from its trip; it wins over
// TripID when both are set.
type BookmarkPatch struct {
	Name        *string
	Latitude    *float64
	Longitude   *float64
	Notes       *string
	Category    *string
	TripID      *uuid.UUID
	ClearTripID bool
}

// Apply merges the non-nil fields of the patch onto b.
func (p BookmarkPatch) Apply(b *Bookmark) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Latitude != nil {
		b.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		b.Longitude = *p.Longitude
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.ClearTripID {
		b.TripID = nil
	} else if p.TripID != nil {
		id := *p.TripID
		b.TripID = &id
	}
}
