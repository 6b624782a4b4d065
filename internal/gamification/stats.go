package gamification

import (
	"time"

	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
)

type UserStats struct {
	UserID                  uuid.UUID  `json:"user_id"`
	TotalWorkouts           int        `json:"total_workouts"`
	TotalCaloriesBurned     int64      `json:"total_calories_burned"`
	TotalExercisesCompleted int        `json:"total_exercises_completed"`
	TotalSteps              int64      `json:"total_steps"`
	CurrentStreak           int        `json:"current_streak"`
	LongestStreak           int        `json:"longest_streak"`
	LastWorkoutDate         *time.Time `json:"last_workout_date"`
	TotalPoints             int64      `json:"total_points"`
	PointsUpdatedAt         time.Time  `json:"points_updated_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// ApplyCompletion folds one completed workout into stats.
func ApplyCompletion(stats UserStats, c WorkoutCompletion, points int, completedAt time.Time, loc *time.Location) UserStats {
	workoutDay := pkg.Day(completedAt, loc)

	stats.TotalWorkouts++
	stats.TotalCaloriesBurned += int64(max(c.CaloriesBurned, 0))
	stats.TotalExercisesCompleted += max(c.ExercisesCompleted, 0)
	stats.TotalPoints += int64(points)
	stats.PointsUpdatedAt = completedAt
	stats.UpdatedAt = completedAt

	stats.CurrentStreak, stats.LongestStreak = NextStreak(
		stats.CurrentStreak, stats.LongestStreak, stats.LastWorkoutDate, workoutDay, loc,
	)
	if stats.LastWorkoutDate == nil || workoutDay.After(*stats.LastWorkoutDate) {
		stats.LastWorkoutDate = &workoutDay
	}

	return stats
}

// ActivitySnapshot is everything a full resync reads from the activity tables.
type ActivitySnapshot struct {
	CompletedWorkouts       int
	TotalCaloriesBurned     int64
	TotalExercisesCompleted int
	TotalSteps              int64
	WorkoutTimes            []time.Time
	LedgerPoints            int64
	BadgePoints             int64
	LastPointsAt            *time.Time // latest ledger row
	LastBadgeAt             *time.Time
	LastStepsDay            *time.Time
}

// noActivityAt stamps the rows of users who never earned anything.
var noActivityAt = time.Unix(0, 0).UTC()

// pointsChangedAt is the latest moment any points source moved.
func (snap ActivitySnapshot) pointsChangedAt() time.Time {
	latest := noActivityAt
	for _, t := range []*time.Time{snap.LastPointsAt, snap.LastBadgeAt, snap.LastStepsDay} {
		if t != nil && t.After(latest) {
			latest = *t
		}
	}
	return latest
}

// StatsFromSnapshot recomputes a user's stats from scratch. It is a pure
// function of the snapshot and the day of now, so running it twice yields the
// same row. Timestamps come from the activity itself, never from now.
func StatsFromSnapshot(userID uuid.UUID, snap ActivitySnapshot, now time.Time, loc *time.Location) UserStats {
	current, longest := ScanStreak(snap.WorkoutTimes, now, loc)

	stats := UserStats{
		UserID:                  userID,
		TotalWorkouts:           snap.CompletedWorkouts,
		TotalCaloriesBurned:     snap.TotalCaloriesBurned,
		TotalExercisesCompleted: snap.TotalExercisesCompleted,
		TotalSteps:              snap.TotalSteps,
		CurrentStreak:           current,
		LongestStreak:           longest,
		TotalPoints:             snap.LedgerPoints + snap.BadgePoints + stepPoints(snap.TotalSteps),
		PointsUpdatedAt:         snap.pointsChangedAt(),
	}
	stats.UpdatedAt = stats.PointsUpdatedAt

	for _, t := range snap.WorkoutTimes {
		if t.After(stats.UpdatedAt) {
			stats.UpdatedAt = t
		}
		day := pkg.Day(t, loc)
		if stats.LastWorkoutDate == nil || day.After(*stats.LastWorkoutDate) {
			stats.LastWorkoutDate = &day
		}
	}

	return stats
}
