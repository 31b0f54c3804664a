// Package reqbody materializes request bodies before handlers run. Every
// route under the resource prefix passes through it, so handlers never read
// from the network themselves.
package reqbody

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/whiskyhouse/whisky-service/internal/api/respond"
)

type ctxKey struct{}

// Middleware reads the entire request body into memory, exposes it via
// FromContext, and resets r.Body to a replayable reader.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			b, err := io.ReadAll(r.Body)
			if err != nil {
				log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to read request body")
				respond.WriteString(w, http.StatusBadRequest, "", "unable to read request body")
				return
			}
			_ = r.Body.Close()
			body = b
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, body)))
	})
}

// FromContext returns the materialized body, or nil when the middleware did
// not run for this request.
func FromContext(ctx context.Context) []byte {
	b, _ := ctx.Value(ctxKey{}).([]byte)
	return b
}
