package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gamification_test

type service interface {
	StartWorkout(ctx context.Context, userID uuid.UUID, ns NewSession) (*Session, error)
	CompleteWorkout(ctx context.Context, userID, sessionID uuid.UUID, c WorkoutCompletion) (*CompletionResult, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	SyncUserStatsFromActivity(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	ListBadges(ctx context.Context, userID uuid.UUID) ([]BadgeStatus, error)
	LogSteps(ctx context.Context, userID uuid.UUID, day time.Time, steps int) (*UserStats, error)
	Today() time.Time
}

type StepsRequest struct {
	// Day is YYYY-MM-DD; today when empty.
	Day   string `json:"day" validate:"omitempty,datetime=2006-01-02"`
	Steps int    `json:"steps" validate:"gte=0,lte=200000"`
}

type Handler struct {
	service  service
	validate *validator.Validate
}

func NewHandler(service service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SetupRoutes registers reads on r and writes on the rate limited writes router.
func (h *Handler) SetupRoutes(r, writes *mux.Router) {
	writes.HandleFunc("/workouts/sessions", h.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	writes.HandleFunc("/workouts/sessions/{id}/complete", h.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/stats", h.HandleGetStats).Methods("GET", "OPTIONS").Name("get-stats")
	writes.HandleFunc("/stats/sync", h.HandleSyncStats).Methods("POST", "OPTIONS").Name("sync-stats")
	r.HandleFunc("/badges", h.HandleListBadges).Methods("GET", "OPTIONS").Name("list-badges")
	writes.HandleFunc("/steps", h.HandleLogSteps).Methods("POST", "OPTIONS").Name("log-steps")
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.session.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ns NewSession
	if err := json.NewDecoder(r.Body).Decode(&ns); err != nil {
		log.Errorf("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(ns); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.StartWorkout(ctx, userID, ns)
	if err != nil {
		log.Errorf("start session: %s", err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.session.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var completion WorkoutCompletion
	if err := json.NewDecoder(r.Body).Decode(&completion); err != nil {
		log.Errorf("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(completion); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.CompleteWorkout(ctx, userID, sessionID, completion)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidCompletion):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("complete session %s: %s", sessionID, err)
		http.Error(w, "complete session failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, result)
}

func (h *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.stats.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var stats *UserStats
	var err error
	if r.URL.Query().Get("sync") == "true" {
		stats, err = h.service.SyncUserStatsFromActivity(ctx, userID)
	} else {
		stats, err = h.service.GetStats(ctx, userID)
	}
	if err != nil {
		log.Errorf("get stats for %s: %s", userID, err)
		http.Error(w, "get stats failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, stats)
}

func (h *Handler) HandleSyncStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.stats.sync")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.SyncUserStatsFromActivity(ctx, userID)
	if err != nil {
		log.Errorf("sync stats for %s: %s", userID, err)
		http.Error(w, "sync stats failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, stats)
}

func (h *Handler) HandleListBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.badges.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	badges, err := h.service.ListBadges(ctx, userID)
	if err != nil {
		log.Errorf("list badges for %s: %s", userID, err)
		http.Error(w, "list badges failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, badges)
}

func (h *Handler) HandleLogSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gamification.steps.log")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log steps, unmarshal json params: %s", err)
		http.Error(w, "log steps failed", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	today := h.service.Today()
	day := today
	if req.Day != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, req.Day, today.Location())
		if err != nil {
			http.Error(w, "invalid day", http.StatusBadRequest)
			return
		}
		if parsed.After(today) {
			http.Error(w, "day in the future", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	stats, err := h.service.LogSteps(ctx, userID, day, req.Steps)
	if err != nil {
		log.Errorf("log steps for %s: %s", userID, err)
		http.Error(w, "log steps failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, stats)
}
