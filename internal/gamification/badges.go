package gamification

import "time"

type RequirementType string

const (
	RequirementTotalWorkouts  RequirementType = "total_workouts"
	RequirementCurrentStreak  RequirementType = "current_streak"
	RequirementLongestStreak  RequirementType = "longest_streak"
	RequirementTotalCalories  RequirementType = "total_calories_burned"
	RequirementTotalExercises RequirementType = "total_exercises_completed"
	RequirementTotalPoints    RequirementType = "total_points"
)

type Badge struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	RequirementType  RequirementType `json:"requirement_type"`
	RequirementValue int64           `json:"requirement_value"`
	Points           int             `json:"points"`
}

type UserBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}

// Qualifies reports whether stats meet the badge threshold. Unknown
// requirement types never qualify.
func (b Badge) Qualifies(stats UserStats) bool {
	var value int64
	switch b.RequirementType {
	case RequirementTotalWorkouts:
		value = int64(stats.TotalWorkouts)
	case RequirementCurrentStreak:
		value = int64(stats.CurrentStreak)
	case RequirementLongestStreak:
		value = int64(stats.LongestStreak)
	case RequirementTotalCalories:
		value = stats.TotalCaloriesBurned
	case RequirementTotalExercises:
		value = int64(stats.TotalExercisesCompleted)
	case RequirementTotalPoints:
		value = stats.TotalPoints
	default:
		return false
	}
	return value >= b.RequirementValue
}

// QualifyingBadges returns catalog badges the stats meet which are not yet earned.
func QualifyingBadges(catalog []Badge, earned map[string]bool, stats UserStats) []Badge {
	var result []Badge
	for _, b := range catalog {
		if earned[b.ID] {
			continue
		}
		if b.Qualifies(stats) {
			result = append(result, b)
		}
	}
	return result
}
