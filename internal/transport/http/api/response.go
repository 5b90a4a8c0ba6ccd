package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Payload carries the named data keys of a response, e.g. {"leaves": [...]}.
// Keys are merged into the envelope next to "success" and "message".
type Payload map[string]any

func write(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, status int, message string, payload Payload) {
	body := map[string]any{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	write(w, status, body)
}

func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]any{"success": false, "message": message})
}
