package api

import (
	"encoding/json"
	"net/http"
)

// responseBody is the envelope shared by all API responses. The status code
// is mirrored into the body so clients behind status-rewriting proxies can
// still rely on it.
type responseBody struct {
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data"`
}

// errorData is the data payload for all error responses.
type errorData struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(responseBody{StatusCode: status, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorData{Message: message})
}
