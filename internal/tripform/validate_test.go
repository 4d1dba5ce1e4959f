package tripform_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/backend/internal/domain"
	"github.com/wayfarer-app/backend/internal/tripform"
)

func date(y int, m time.Month, d int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func dest(start, end time.Time) domain.Destination {
	return domain.Destination{ID: uuid.New(), Name: "Stop", StartDate: start, EndDate: end}
}

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestValidate_AllInRange(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 10), []domain.Destination{
		dest(day(2025, 4, 1, 15), day(2025, 4, 5, 11)),
		dest(day(2025, 4, 5, 12), day(2025, 4, 9, 9)),
	})

	assert.False(t, errs.HasErrors())
	assert.Empty(t, errs.Destinations)
}

func TestValidate_TripEndBeforeStart(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 10), date(2025, 4, 1), nil)

	assert.True(t, errs.HasErrors())
	assert.Equal(t, tripform.MsgEndBeforeStart, errs.EndDate)
}

func TestValidate_SameDayTripIsValid(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 1), nil)

	assert.False(t, errs.HasErrors())
}

func TestValidate_ArrivalBeforeTripStart(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 10), []domain.Destination{
		dest(day(2025, 3, 31, 20), day(2025, 4, 5, 11)),
	})

	require.Contains(t, errs.Destinations, 0)
	assert.Equal(t, tripform.MsgArrivalBeforeTrip, errs.Destinations[0].StartDate)
	assert.Empty(t, errs.Destinations[0].EndDate)
}

func TestValidate_DepartureAfterTripEnd(t *testing.T) {
	// The trip end date is compared as the midnight instant that begins it,
	// so departing at noon on the end date is already out of range.
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 10), []domain.Destination{
		dest(day(2025, 4, 2, 9), day(2025, 4, 10, 12)),
	})

	require.Contains(t, errs.Destinations, 0)
	assert.Equal(t, tripform.MsgDepartureAfterTrip, errs.Destinations[0].EndDate)
}

func TestValidate_DepartureBeforeArrival(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 10), []domain.Destination{
		dest(day(2025, 4, 5, 11), day(2025, 4, 2, 9)),
	})

	require.Contains(t, errs.Destinations, 0)
	assert.Equal(t, tripform.MsgDepartureBeforeStart, errs.Destinations[0].EndDate)
}

func TestValidate_OnlyOffendingIndicesAppear(t *testing.T) {
	errs := tripform.Validate(date(2025, 4, 1), date(2025, 4, 10), []domain.Destination{
		dest(day(2025, 4, 1, 15), day(2025, 4, 3, 11)),  // fine
		dest(day(2025, 3, 30, 8), day(2025, 4, 5, 11)),  // arrival too early
		dest(day(2025, 4, 6, 10), day(2025, 4, 7, 18)),  // fine
	})

	assert.NotContains(t, errs.Destinations, 0)
	assert.Contains(t, errs.Destinations, 1)
	assert.NotContains(t, errs.Destinations, 2)
}

// TestReindex_ShiftsAfterRemoval pins the correctness-sensitive detail: when
// a destination is removed, errors for later destinations must move down one
// index to stay aligned with the renumbered list.
func TestReindex_ShiftsAfterRemoval(t *testing.T) {
	// [A, B, C] with only B (index 1) in error; remove A (index 0).
	errs := tripform.Errors{
		Destinations: map[int]tripform.FieldErrors{
			1: {StartDate: tripform.MsgArrivalBeforeTrip},
		},
	}

	got := tripform.Reindex(errs, 0)

	require.Contains(t, got.Destinations, 0, "B's error should now sit at index 0")
	assert.Equal(t, tripform.MsgArrivalBeforeTrip, got.Destinations[0].StartDate)
	assert.NotContains(t, got.Destinations, 1, "index 1 (now C) must be clean")
}

func TestReindex_DropsRemovedIndex(t *testing.T) {
	errs := tripform.Errors{
		EndDate: tripform.MsgEndBeforeStart,
		Destinations: map[int]tripform.FieldErrors{
			0: {EndDate: tripform.MsgDepartureBeforeStart},
			2: {EndDate: tripform.MsgDepartureAfterTrip},
		},
	}

	got := tripform.Reindex(errs, 0)

	assert.NotContains(t, got.Destinations, 0)
	assert.Contains(t, got.Destinations, 1)
	assert.Equal(t, tripform.MsgDepartureAfterTrip, got.Destinations[1].EndDate)
	// The trip-level error is untouched by destination removal.
	assert.Equal(t, tripform.MsgEndBeforeStart, got.EndDate)
}

func TestReindex_EmptyResultClearsMap(t *testing.T) {
	errs := tripform.Errors{
		Destinations: map[int]tripform.FieldErrors{
			1: {StartDate: tripform.MsgArrivalBeforeTrip},
		},
	}

	got := tripform.Reindex(errs, 1)

	assert.Nil(t, got.Destinations)
	assert.False(t, got.HasErrors())
}
