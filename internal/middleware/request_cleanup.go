package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps JSON payloads; meal and workout bodies are tiny.
const MaxRequestBodyBytes = 1 << 20

// LimitAndDrainBody caps the request body at maxBytes and, once the handler is
// done, drains and closes whatever the handler did not read, so the
// connection can be reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
