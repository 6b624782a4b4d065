package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type identityResolver interface {
	Resolve(secret, rawUserID string) (uuid.UUID, error)
}

type AuthMiddlewareHandler struct {
	identity     identityResolver
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(identity identityResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		identity: identity,
		allowedPaths: map[string]bool{
			"/health": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			userID, err := h.identity.Resolve(
				r.Header.Get(auth.HeaderAuthorization),
				r.Header.Get(auth.HeaderUserID),
			)
			if err != nil {
				log.Tracef("[auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "unauthorized")
				span.RecordError(err)
				return
			}

			span.SetAttributes(attribute.String("user.id", userID.String()))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// RequireUserID pulls the authenticated user id out of the request context.
// Handlers behind AuthCheck can rely on it being set.
func RequireUserID(ctx context.Context) (uuid.UUID, bool) {
	return auth.UserIDFromContext(ctx)
}
