package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type service interface {
	LogMeal(ctx context.Context, userID uuid.UUID, nm NewMeal) (*Meal, error)
	DailyBalance(ctx context.Context, userID uuid.UUID, day time.Time) (*DailyBalance, error)
	Projection(ctx context.Context, userID uuid.UUID) (*Projection, error)
	RecordWeight(ctx context.Context, userID uuid.UUID, w WeightMeasurement) (*WeightMeasurement, error)
	WeightHistory(ctx context.Context, userID uuid.UUID, limit int) ([]WeightMeasurement, error)
	SetGoals(ctx context.Context, userID uuid.UUID, g Goals) error
	CheckWeightProgressUnlock(ctx context.Context, userID uuid.UUID) (*UnlockStatus, error)
	Today() time.Time
}

type WeightRequest struct {
	WeightKg   float64    `json:"weight_kg" validate:"gt=0,lte=500"`
	MeasuredAt *time.Time `json:"measured_at,omitempty"`
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

func (h *Handler) SetupRoutes(r, writes *mux.Router) {
	writes.HandleFunc("/meals", h.HandleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")
	r.HandleFunc("/nutrition/balance", h.HandleBalance).Methods("GET", "OPTIONS").Name("calorie-balance")
	r.HandleFunc("/nutrition/projection", h.HandleProjection).Methods("GET", "OPTIONS").Name("weight-projection")
	writes.HandleFunc("/weight", h.HandleRecordWeight).Methods("POST", "OPTIONS").Name("record-weight")
	r.HandleFunc("/weight", h.HandleWeightHistory).Methods("GET", "OPTIONS").Name("weight-history")
	r.HandleFunc("/weight/unlock", h.HandleUnlock).Methods("GET", "OPTIONS").Name("weight-unlock")
	writes.HandleFunc("/goals", h.HandleSetGoals).Methods("PUT", "OPTIONS").Name("set-goals")
}

func (h *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.meal.log")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var nm NewMeal
	if !h.decode(w, r, &nm, "log meal") {
		return
	}
	meal, err := h.service.LogMeal(ctx, userID, nm)
	if errors.Is(err, ErrInvalidEntry) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("log meal for %s: %s", userID, err)
		http.Error(w, "log meal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, meal, http.StatusCreated)
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.balance")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day := h.service.Today()
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, dayParam, day.Location())
		if err != nil {
			http.Error(w, "invalid day", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	balance, err := h.service.DailyBalance(ctx, userID, day)
	if err != nil {
		log.Errorf("daily balance for %s: %s", userID, err)
		http.Error(w, "daily balance failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, balance)
}

func (h *Handler) HandleProjection(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.projection")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	projection, err := h.service.Projection(ctx, userID)
	if errors.Is(err, ErrNoWeightMeasurement) {
		http.Error(w, "no weight measurement yet", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("weight projection for %s: %s", userID, err)
		http.Error(w, "weight projection failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, projection)
}

func (h *Handler) HandleRecordWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.weight.record")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req WeightRequest
	if !h.decode(w, r, &req, "record weight") {
		return
	}
	measurement := WeightMeasurement{WeightKg: req.WeightKg}
	if req.MeasuredAt != nil {
		measurement.MeasuredAt = *req.MeasuredAt
	}

	recorded, err := h.service.RecordWeight(ctx, userID, measurement)
	if errors.Is(err, ErrInvalidEntry) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("record weight for %s: %s", userID, err)
		http.Error(w, "record weight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, recorded, http.StatusCreated)
}

func (h *Handler) HandleWeightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.weight.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil || limit < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	history, err := h.service.WeightHistory(ctx, userID, limit)
	if err != nil {
		log.Errorf("weight history for %s: %s", userID, err)
		http.Error(w, "weight history failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, history)
}

func (h *Handler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.unlock")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status, err := h.service.CheckWeightProgressUnlock(ctx, userID)
	if err != nil {
		log.Errorf("weight unlock for %s: %s", userID, err)
		http.Error(w, "weight unlock check failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, status)
}

func (h *Handler) HandleSetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.goals.set")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var goals Goals
	if !h.decode(w, r, &goals, "set goals") {
		return
	}

	if err := h.service.SetGoals(ctx, userID, goals); err != nil {
		log.Errorf("set goals for %s: %s", userID, err)
		http.Error(w, "set goals failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, goals)
}

// decode reads and validates a JSON body into dst, answering 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Errorf("%s, unmarshal json params: %s", op, err)
		http.Error(w, op+" failed", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
