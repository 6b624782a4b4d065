package gamification

import "math"

const (
	basePointsPerWorkout = 10
	pointsPerSet         = 2
	volumeKgPerPoint     = 100
	caloriesPerPoint     = 50
	pointsPerDifficulty  = 5
	stepsPerPoint        = 1000

	// MaxTotalVolumeKg bounds the reported lifted volume; no session gets near it.
	MaxTotalVolumeKg = 1_000_000
)

// WorkoutCompletion holds the figures the app reports when a session ends.
type WorkoutCompletion struct {
	DurationMinutes    int      `json:"duration_minutes" validate:"gte=0,lte=1440"`
	CaloriesBurned     int      `json:"calories_burned" validate:"gte=0,lte=20000"`
	SetsCompleted      int      `json:"sets_completed" validate:"gte=0,lte=1000"`
	TotalVolumeKg      float64  `json:"total_volume_kg" validate:"gte=0,lte=1000000"`
	ExercisesCompleted int      `json:"exercises_completed" validate:"gte=0,lte=200"`
	DifficultyRating   *int     `json:"difficulty_rating,omitempty" validate:"omitempty,min=1,max=5"`
	CompletedAt        *Instant `json:"completed_at,omitempty"`
}

// CalculateWorkoutPoints is the single source of truth for workout points:
// 10 + 2 per set + 1 per 100kg of volume + 1 per 50 kcal + 5 per difficulty level.
// Volume is clamped to [0, MaxTotalVolumeKg]; NaN counts as 0.
func CalculateWorkoutPoints(c WorkoutCompletion) int {
	volume := c.TotalVolumeKg
	if math.IsNaN(volume) {
		volume = 0
	}
	volume = min(max(volume, 0), MaxTotalVolumeKg)

	points := basePointsPerWorkout
	points += pointsPerSet * max(c.SetsCompleted, 0)
	points += int(math.Floor(volume / volumeKgPerPoint))
	points += max(c.CaloriesBurned, 0) / caloriesPerPoint
	if c.DifficultyRating != nil {
		points += pointsPerDifficulty * max(*c.DifficultyRating, 0)
	}
	return points
}

func stepPoints(totalSteps int64) int64 {
	if totalSteps <= 0 {
		return 0
	}
	return totalSteps / stepsPerPoint
}
