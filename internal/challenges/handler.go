package challenges

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=challenges_test

type service interface {
	Current(ctx context.Context) (*Challenge, error)
	Join(ctx context.Context, userID uuid.UUID) (*Participation, error)
	Standings(ctx context.Context, limit int) (*Challenge, []Standing, error)
	Participation(ctx context.Context, userID uuid.UUID) (*Participation, error)
}

type StandingsResponse struct {
	Challenge *Challenge `json:"challenge"`
	Standings []Standing `json:"standings"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r, writes *mux.Router) {
	r.HandleFunc("/challenges/current", h.HandleCurrent).Methods("GET", "OPTIONS").Name("current-challenge")
	writes.HandleFunc("/challenges/current/join", h.HandleJoin).Methods("POST", "OPTIONS").Name("join-challenge")
	r.HandleFunc("/challenges/current/standings", h.HandleStandings).Methods("GET", "OPTIONS").Name("challenge-standings")
	r.HandleFunc("/challenges/current/me", h.HandleMe).Methods("GET", "OPTIONS").Name("challenge-participation")
}

func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.current")
	defer span.End()

	c, err := h.service.Current(ctx)
	if err != nil {
		writeServiceError(w, "get current challenge", err)
		return
	}
	pkg.WriteJSONResponseOK(w, c)
}

func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.join")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := h.service.Join(ctx, userID)
	if err != nil {
		writeServiceError(w, "join challenge", err)
		return
	}
	pkg.WriteJSONResponseOK(w, p)
}

func (h *Handler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.standings")
	defer span.End()

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	c, standings, err := h.service.Standings(ctx, limit)
	if err != nil {
		writeServiceError(w, "challenge standings", err)
		return
	}
	pkg.WriteJSONResponseOK(w, StandingsResponse{Challenge: c, Standings: standings})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := h.service.Participation(ctx, userID)
	if err != nil {
		writeServiceError(w, "challenge participation", err)
		return
	}
	pkg.WriteJSONResponseOK(w, p)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNoActiveChallenge):
		http.Error(w, "no active challenge", http.StatusNotFound)
	case errors.Is(err, ErrNotParticipating):
		http.Error(w, "not participating", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
