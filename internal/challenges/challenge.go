package challenges

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoActiveChallenge = errors.New("no active challenge")
	ErrNotParticipating  = errors.New("user is not participating")
)

type Metric string

const (
	MetricCaloriesBurned     Metric = "calories_burned"
	MetricWorkoutsCompleted  Metric = "workouts_completed"
	MetricExercisesCompleted Metric = "exercises_completed"
	MetricTotalVolumeKg      Metric = "total_volume_kg"
	MetricPointsEarned       Metric = "points_earned"
)

type Challenge struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Metric      Metric    `json:"metric"`
	TargetValue float64   `json:"target_value"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActiveAt reports whether t falls into [StartsAt, EndsAt).
func (c Challenge) ActiveAt(t time.Time) bool {
	return !t.Before(c.StartsAt) && t.Before(c.EndsAt)
}

type Participation struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	UserID      uuid.UUID `json:"user_id"`
	Score       float64   `json:"score"`
	Progress    float64   `json:"progress"`
	JoinedAt    time.Time `json:"joined_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Standing struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Score    float64   `json:"score"`
	Progress float64   `json:"progress"`
}

// WorkoutMetrics are the figures of one completed workout a challenge can count.
type WorkoutMetrics struct {
	CaloriesBurned     int
	ExercisesCompleted int
	TotalVolumeKg      float64
	Points             int
}

// Value is the contribution of the workout towards a challenge on metric.
func (m WorkoutMetrics) Value(metric Metric) float64 {
	switch metric {
	case MetricCaloriesBurned:
		return float64(m.CaloriesBurned)
	case MetricWorkoutsCompleted:
		return 1
	case MetricExercisesCompleted:
		return float64(m.ExercisesCompleted)
	case MetricTotalVolumeKg:
		return m.TotalVolumeKg
	case MetricPointsEarned:
		return float64(m.Points)
	default:
		return 0
	}
}

// Progress is the percentage of target reached, capped at 100.
func Progress(score, target float64) float64 {
	if target <= 0 {
		return 100
	}
	return min(100, score*100/target)
}

type template struct {
	metric      Metric
	title       string
	description string
	target      float64
}

var rotation = []template{
	{MetricCaloriesBurned, "Calorie Crusher", "Burn 3,000 calories in workouts this week", 3000},
	{MetricWorkoutsCompleted, "Consistency Week", "Complete 5 workouts this week", 5},
	{MetricExercisesCompleted, "Variety Pack", "Complete 40 exercises this week", 40},
	{MetricTotalVolumeKg, "Heavy Lifter", "Move 10,000 kg of total volume this week", 10000},
	{MetricPointsEarned, "Point Hunter", "Earn 400 workout points this week", 400},
}

// PlanForWeek builds the challenge for the week starting at weekStart.
// The metric rotates with the ISO week number.
func PlanForWeek(weekStart time.Time) Challenge {
	_, week := weekStart.ISOWeek()
	tmpl := rotation[week%len(rotation)]
	return Challenge{
		Title:       tmpl.title,
		Description: tmpl.description,
		Metric:      tmpl.metric,
		TargetValue: tmpl.target,
		StartsAt:    weekStart,
		EndsAt:      weekStart.AddDate(0, 0, 7),
	}
}
