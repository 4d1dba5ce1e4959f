// Package tripform holds the date-range validation for the trip authoring
// flow. Validation is a pure function of the current form values: it is
// recomputed on every change, and submission is blocked while any error
// exists. The store itself never validates — the authoring layer is the
// gatekeeper.
package tripform

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-app/backend/internal/domain"
)

// Error messages shown next to the offending field.
const (
	MsgEndBeforeStart       = "End date must be after start date"
	MsgArrivalBeforeTrip    = "Arrival date cannot be before trip start date"
	MsgDepartureAfterTrip   = "Departure date cannot be after trip end date"
	MsgDepartureBeforeStart = "Departure date must be after arrival date"
)

// FieldErrors holds the per-field messages for one destination.
// An empty string means the field is fine.
type FieldErrors struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Errors is the structured result of Validate: an optional trip-level
// end-date error plus a map from destination index to its field errors.
// Indices refer to positions in the destination list as validated.
type Errors struct {
	EndDate      string              `json:"endDate,omitempty"`
	Destinations map[int]FieldErrors `json:"destinations,omitempty"`
}

// HasErrors reports whether any field is in error. Callers must not submit
// (no store mutation) while this is true.
func (e Errors) HasErrors() bool {
	return e.EndDate != "" || len(e.Destinations) > 0
}

// Validate checks the trip's own date range and every destination's range
// against it. Trip dates are calendar dates; destination dates are instants.
// A calendar date is compared as the midnight instant that begins it, which
// matches how the authoring form interprets its inputs. Rules:
//
//   - trip end must not be before trip start
//   - a destination must not arrive before the trip starts
//   - a destination must not depart after the trip ends
//   - a destination must not depart before it arrives
func Validate(start, end openapi_types.Date, dests []domain.Destination) Errors {
	var errs Errors

	tripStart := start.Time
	tripEnd := end.Time

	if tripEnd.Before(tripStart) {
		errs.EndDate = MsgEndBeforeStart
	}

	for i, d := range dests {
		var fe FieldErrors
		if d.StartDate.Before(tripStart) {
			fe.StartDate = MsgArrivalBeforeTrip
		}
		if d.EndDate.After(tripEnd) {
			fe.EndDate = MsgDepartureAfterTrip
		}
		if d.EndDate.Before(d.StartDate) {
			// The departure-before-arrival message wins over the trip-range
			// one; both cannot be shown on a single field.
			fe.EndDate = MsgDepartureBeforeStart
		}
		if fe != (FieldErrors{}) {
			if errs.Destinations == nil {
				errs.Destinations = make(map[int]FieldErrors)
			}
			errs.Destinations[i] = fe
		}
	}

	return errs
}

// Reindex returns the errors as they apply after the destination at removed
// has been taken out of the list: its own entry is dropped and every entry at
// a higher index shifts down by one so errors stay aligned with the
// renumbered destinations. The trip-level error is unaffected.
func Reindex(errs Errors, removed int) Errors {
	if errs.Destinations == nil {
		return errs
	}

	shifted := make(map[int]FieldErrors)
	for i, fe := range errs.Destinations {
		switch {
		case i == removed:
			// dropped with the destination
		case i > removed:
			shifted[i-1] = fe
		default:
			shifted[i] = fe
		}
	}
	if len(shifted) == 0 {
		shifted = nil
	}
	return Errors{EndDate: errs.EndDate, Destinations: shifted}
}
