package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wayfarer-app/backend/internal/tripform"
)

// errorDetail is the machine-readable part of an error response.
// Fields carries the structured per-field date errors when the failure came
// from the trip authoring validation.
type errorDetail struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  *tripform.Errors `json:"fields,omitempty"`
}

// errorResponse is the JSON envelope for every non-2xx response body.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeNotFound responds 404. The caller supplies the human-readable message
// (e.g. "trip not found") because the handler is the layer that knows what
// was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: message}})
}

// writeValidation responds 422 for a business-rule violation.
func writeValidation(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: message}})
}

// writeDateErrors responds 422 carrying the structured tripform errors so the
// client can attach messages to the offending fields.
func writeDateErrors(w http.ResponseWriter, errs tripform.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
		Code:    "validation_error",
		Message: "trip dates are invalid",
		Fields:  &errs,
	}})
}

// writeBadBody responds to an unreadable or malformed request body:
// 413 when the body-size middleware cut it off, 422 otherwise.
func writeBadBody(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: errorDetail{
			Code:    "body_too_large",
			Message: "request body exceeds the size limit",
		}})
		return
	}
	writeValidation(w, "invalid request body")
}

// writeInternal responds 500. The underlying error is logged, never exposed.
func writeInternal(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{
		Code:    "internal_error",
		Message: "internal server error",
	}})
}
