package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the Content-Type to application/json,
// writes statusCode and then the body, returning the number of body bytes
// written. A marshaling failure answers 500 and returns a wrapped error.
//
//	WriteJSON(w, models.AuthResponse{UserUID: uid}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "no user was found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
