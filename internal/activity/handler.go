package activity

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

type feeder interface {
	Feed(ctx context.Context, userID uuid.UUID, filter Filter) []Activity
}

type Handler struct {
	feeder feeder
}

func NewHandler(feeder feeder) *Handler {
	return &Handler{
		feeder: feeder,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/activity", h.HandleList).Methods("GET", "OPTIONS").Name("list-activity")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter, err := ParseFilter(q.Get("type"), q.Get("q"), q.Get("range"))
	if err != nil {
		log.Debugf("list activity, invalid filter: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activities := h.feeder.Feed(ctx, userID, filter)
	activitiesJson, err := json.Marshal(activities)
	if err != nil {
		log.Errorf("marshal activities: %s", err)
		http.Error(w, "list activity failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, activitiesJson, http.StatusOK)
}
