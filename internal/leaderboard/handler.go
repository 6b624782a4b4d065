package leaderboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=leaderboard_test

type service interface {
	Rank(ctx context.Context, userID uuid.UUID) (*UserRank, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
	Weekly(ctx context.Context, limit int) (*WeeklyBoard, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/leaderboard/rank", h.HandleRank).Methods("GET", "OPTIONS").Name("leaderboard-rank")
	r.HandleFunc("/leaderboard/top", h.HandleTop).Methods("GET", "OPTIONS").Name("leaderboard-top")
	r.HandleFunc("/leaderboard/weekly", h.HandleWeekly).Methods("GET", "OPTIONS").Name("leaderboard-weekly")
}

func (h *Handler) HandleRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.rank")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	rank, err := h.service.Rank(ctx, userID)
	if err != nil {
		log.Errorf("get rank for %s: %s", userID, err)
		http.Error(w, "get rank failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, rank)
}

func (h *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.top")
	defer span.End()

	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	entries, err := h.service.Top(ctx, limit)
	if err != nil {
		log.Errorf("get top list: %s", err)
		http.Error(w, "get top list failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, entries)
}

func (h *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.weekly")
	defer span.End()

	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	board, err := h.service.Weekly(ctx, limit)
	if err != nil {
		log.Errorf("get weekly board: %s", err)
		http.Error(w, "get weekly board failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, board)
}

// limitParam parses the optional limit query param; 0 means default.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}
