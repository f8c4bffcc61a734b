package http

import (
	"encoding/json"
	"net/http"
)

// DataResponse wraps a successful payload
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The header has already been sent, so an encoding error cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a 200 response of the form {"data": ...}
func WriteData[T any](w http.ResponseWriter, data T) {
	WriteJSON(w, http.StatusOK, DataResponse[T]{Data: data})
}
