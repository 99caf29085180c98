package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope. Handlers in the rest package
// use the same shape so clients see one error format.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
