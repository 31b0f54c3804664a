// Package respond centralizes response writing for the whisky API. JSON
// bodies are pretty-printed because API consumers read them directly.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// JSONContentType is set on every JSON response.
const JSONContentType = "application/json; charset=utf-8"

// ErrorResponse is the envelope for failures that have no bespoke body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v pretty-printed with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

// WriteString writes body verbatim. An empty contentType leaves the header
// unset so net/http applies its default handling.
func WriteString(w http.ResponseWriter, statusCode int, contentType, body string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// WriteError writes the standardized error envelope.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
