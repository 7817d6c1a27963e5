package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

// HTTPError allows collaborators to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor returns the status carried by err, or fallback.
func statusFor(err error, fallback int) int {
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return fallback
}

// writeText writes a plain-text body.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}
