package gamification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrInvalidCompletion = errors.New("invalid workout completion")
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

type NewSession struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"omitempty,oneof=strength running cardio cycling yoga hiit walking other"`
	Description string   `json:"description" validate:"max=2000"`
	StartedAt   *Instant `json:"started_at,omitempty"`
}

type Session struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Status      SessionStatus `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
}

// CompletionResult is what a completion request returns. A replayed
// completion carries the original award with Duplicate set.
type CompletionResult struct {
	SessionID     uuid.UUID `json:"session_id"`
	PointsAwarded int       `json:"points_awarded"`
	Duplicate     bool      `json:"duplicate"`
	Stats         UserStats `json:"stats"`
	NewBadges     []Badge   `json:"new_badges"`
	// set when a follow-up step failed after the completion was committed;
	// both steps are idempotent and catch up on the next event or resync
	ChallengePending bool `json:"challenge_pending,omitempty"`
	BadgesPending    bool `json:"badges_pending,omitempty"`
}

type BadgeStatus struct {
	Badge
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}
