package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Kind classifies a failure. Its string value doubles as the "error" label
// callers see in the response body.
type Kind string

const (
	KindUnauthorized Kind = "Unauthorized"
	KindForbidden    Kind = "Forbidden"
	KindBadRequest   Kind = "Bad request"
	KindNotFound     Kind = "Not found"
	KindDatabase     Kind = "Database error"
	KindServer       Kind = "Server error"
)

// statusByKind is the single place failure kinds map to HTTP status codes,
// so every handler and middleware reports uniformly.
var statusByKind = map[Kind]int{
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindBadRequest:   http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindDatabase:     http.StatusInternalServerError,
	KindServer:       http.StatusInternalServerError,
}

type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON writes an arbitrary JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes a successful JSON response. The body carries its own
// success flag alongside the payload fields.
func Success(w http.ResponseWriter, body any) {
	JSON(w, http.StatusOK, body)
}

// Fail writes a failure response, resolving the status code from the kind.
func Fail(w http.ResponseWriter, kind Kind, message string) {
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	JSON(w, status, failureBody{
		Success: false,
		Error:   string(kind),
		Message: message,
	})
}
