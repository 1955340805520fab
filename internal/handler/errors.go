package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as a JSON body with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondText writes a plain-text body with the given status code.
// The unsubscribe endpoint renders directly in email clients and browsers,
// so its bodies are human-readable sentences rather than JSON envelopes.
func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message + "\n"))
}
