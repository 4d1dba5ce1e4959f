package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/backend/internal/domain"
	"github.com/wayfarer-app/backend/internal/handler"
	"github.com/wayfarer-app/backend/internal/kv"
	"github.com/wayfarer-app/backend/internal/store"
)

// compile-time check: the real store must satisfy the handler's interface.
var _ handler.TravelStore = (*store.Store)(nil)

// ---- helpers ---------------------------------------------------------------

// newServer wires the handlers over a real store with in-memory persistence.
// Handlers and store are cheap enough together that mocking the store would
// only re-test the interface.
func newServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	s := store.New(kv.NewMemory())
	require.NoError(t, s.Load(context.Background()))
	return handler.NewServer(s).Routes(), s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func date(y int, m time.Month, d int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func addTrip(t *testing.T, s *store.Store) domain.Trip {
	t.Helper()
	trip, err := s.AddTrip(context.Background(), domain.NewTrip{
		Title:     "Japan",
		StartDate: date(2025, 4, 1),
		EndDate:   date(2025, 4, 10),
	})
	require.NoError(t, err)
	return trip
}

// ---- trips -----------------------------------------------------------------

func TestCreateTrip(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/trips", map[string]any{
		"title":     "Japan",
		"startDate": "2025-04-01",
		"endDate":   "2025-04-10",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	trip := decode[domain.Trip](t, rec)
	assert.Equal(t, "Japan", trip.Title)
	assert.NotEqual(t, uuid.UUID{}, trip.ID)
}

func TestCreateTrip_MissingTitle(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/trips", map[string]any{
		"title":     "   ",
		"startDate": "2025-04-01",
		"endDate":   "2025-04-10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTrip_EndBeforeStart(t *testing.T) {
	h, s := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/trips", map[string]any{
		"title":     "Backwards",
		"startDate": "2025-04-10",
		"endDate":   "2025-04-01",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "End date must be after start date")
	// No store mutation while errors exist.
	assert.Empty(t, s.Trips())
}

func TestCreateTrip_DestinationOutOfRange(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/trips", map[string]any{
		"title":     "Japan",
		"startDate": "2025-04-01",
		"endDate":   "2025-04-10",
		"destinations": []map[string]any{{
			"name":      "Tokyo",
			"startDate": "2025-03-30T09:00:00Z",
			"endDate":   "2025-04-05T11:00:00Z",
		}},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Arrival date cannot be before trip start date")
}

func TestCreateTrip_MalformedBody(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetTrip(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	rec := doJSON(t, h, http.MethodGet, "/trips/"+trip.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, trip.ID, decode[domain.Trip](t, rec).ID)
}

func TestGetTrip_NotFound(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodGet, "/trips/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTrip_MalformedID(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodGet, "/trips/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTrips(t *testing.T) {
	h, s := newServer(t)
	addTrip(t, s)
	addTrip(t, s)

	rec := doJSON(t, h, http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Trip](t, rec), 2)
}

func TestUpdateTrip_PartialMerge(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	rec := doJSON(t, h, http.MethodPut, "/trips/"+trip.ID.String(), map[string]any{
		"title": "Japan 2025",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.Trip](t, rec)
	assert.Equal(t, "Japan 2025", got.Title)
	assert.Equal(t, trip.StartDate, got.StartDate)
	assert.Equal(t, trip.EndDate, got.EndDate)
}

func TestUpdateTrip_RejectsInvalidMergedDates(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	// Moving only the end date before the existing start date must fail.
	rec := doJSON(t, h, http.MethodPut, "/trips/"+trip.ID.String(), map[string]any{
		"endDate": "2025-03-01",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got, _ := s.TripByID(trip.ID)
	assert.Equal(t, trip.EndDate, got.EndDate, "store must be untouched")
}

func TestUpdateTrip_NotFound(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodPut, "/trips/"+uuid.NewString(), map[string]any{"title": "X"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTrip_ReturnsRemovedAndCascades(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	_, err := s.AddExpense(context.Background(), domain.NewExpense{
		TripID: trip.ID, Amount: 120.50, Currency: "USD", Category: "Food", Date: date(2025, 4, 2),
	})
	require.NoError(t, err)
	bookmark, err := s.AddBookmark(context.Background(), domain.NewBookmark{
		Name: "Shibuya", Latitude: 35.6595, Longitude: 139.7005, Category: "Shopping", TripID: &trip.ID,
	})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodDelete, "/trips/"+trip.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, trip.ID, decode[domain.Trip](t, rec).ID)

	assert.Empty(t, s.Trips())
	assert.Empty(t, s.Expenses())
	got := s.Bookmarks()
	require.Len(t, got, 1)
	assert.Equal(t, bookmark.ID, got[0].ID)
	assert.Nil(t, got[0].TripID)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	h, _ := newServer(t)

	rec := doJSON(t, h, http.MethodDelete, "/trips/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRestoreTrip(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	delRec := doJSON(t, h, http.MethodDelete, "/trips/"+trip.ID.String(), nil)
	require.Equal(t, http.StatusOK, delRec.Code)
	removed := decode[domain.Trip](t, delRec)

	rec := doJSON(t, h, http.MethodPost, "/trips/"+trip.ID.String()+"/restore", removed)

	require.Equal(t, http.StatusNoContent, rec.Code)
	_, found := s.TripByID(trip.ID)
	assert.True(t, found)
}

func TestRestoreTrip_IDMismatch(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	rec := doJSON(t, h, http.MethodPost, "/trips/"+uuid.NewString()+"/restore", trip)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListTripBookmarks(t *testing.T) {
	h, s := newServer(t)
	trip := addTrip(t, s)

	_, err := s.AddBookmark(context.Background(), domain.NewBookmark{Name: "Shibuya", TripID: &trip.ID})
	require.NoError(t, err)
	_, err = s.AddBookmark(context.Background(), domain.NewBookmark{Name: "Loose"})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodGet, "/trips/"+trip.ID.String()+"/bookmarks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Bookmark](t, rec), 1)
}
