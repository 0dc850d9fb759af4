package helpers

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse writes a JSON payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteErrorResponse writes a JSON error body of the form {"error": code}.
func WriteErrorResponse(w http.ResponseWriter, status int, code string) {
	WriteJSONResponse(w, status, map[string]string{"error": code})
}
