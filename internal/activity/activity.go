package activity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitquest/pkg"

	"github.com/google/uuid"
)

type Type string

const (
	TypeWorkout Type = "workout"
	TypeMeal    Type = "meal"
)

// Activity is the unified feed entry for both workouts and grouped meals.
type Activity struct {
	ID          string         `json:"id"`
	Type        Type           `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Timestamp   time.Time      `json:"timestamp"`
	Metadata    map[string]any `json:"metadata"`
}

type WorkoutRecord struct {
	ID                 uuid.UUID
	Title              string
	Category           string
	Description        string
	CompletedAt        time.Time
	DurationMinutes    int
	CaloriesBurned     int
	SetsCompleted      int
	TotalVolumeKg      float64
	ExercisesCompleted int
}

type MealRecord struct {
	ID       uuid.UUID
	MealType string
	FoodName string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatsG    float64
	LoggedAt time.Time
}

type Range string

const (
	RangeAll     Range = "all"
	RangeToday   Range = "today"
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	Range3Months Range = "3months"
)

type Filter struct {
	// Type is empty for all types.
	Type  Type
	Query string
	Range Range
}

func ParseFilter(typeParam, query, rangeParam string) (Filter, error) {
	f := Filter{
		Query: strings.TrimSpace(query),
		Range: RangeAll,
	}

	switch Type(typeParam) {
	case "", "all":
	case TypeWorkout, TypeMeal:
		f.Type = Type(typeParam)
	default:
		return Filter{}, fmt.Errorf("unknown activity type: %q", typeParam)
	}

	switch Range(rangeParam) {
	case "":
	case RangeAll, RangeToday, RangeWeek, RangeMonth, Range3Months:
		f.Range = Range(rangeParam)
	default:
		return Filter{}, fmt.Errorf("unknown range: %q", rangeParam)
	}

	return f, nil
}

func FromWorkout(w WorkoutRecord) Activity {
	return Activity{
		ID:          w.ID.String(),
		Type:        TypeWorkout,
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Timestamp:   w.CompletedAt,
		Metadata: map[string]any{
			"duration_minutes":    w.DurationMinutes,
			"calories_burned":     w.CaloriesBurned,
			"sets_completed":      w.SetsCompleted,
			"total_volume_kg":     w.TotalVolumeKg,
			"exercises_completed": w.ExercisesCompleted,
		},
	}
}

type mealGroupKey struct {
	day      string
	mealType string
}

// GroupMeals folds meal logs into one activity per (calendar day, meal type).
// The group timestamp is the latest log in it.
func GroupMeals(meals []MealRecord, loc *time.Location) []Activity {
	groups := make(map[mealGroupKey]*Activity)
	var order []mealGroupKey

	for _, m := range meals {
		day := pkg.Day(m.LoggedAt, loc).Format(time.DateOnly)
		key := mealGroupKey{day: day, mealType: m.MealType}

		a, ok := groups[key]
		if !ok {
			a = &Activity{
				ID:        fmt.Sprintf("meal-%s-%s", day, m.MealType),
				Type:      TypeMeal,
				Title:     mealTitle(m.MealType),
				Category:  m.MealType,
				Timestamp: m.LoggedAt,
				Metadata: map[string]any{
					"calories":  0,
					"protein_g": 0.0,
					"carbs_g":   0.0,
					"fats_g":    0.0,
					"items":     0,
				},
			}
			groups[key] = a
			order = append(order, key)
		}

		if a.Description == "" {
			a.Description = m.FoodName
		} else {
			a.Description += ", " + m.FoodName
		}
		if m.LoggedAt.After(a.Timestamp) {
			a.Timestamp = m.LoggedAt
		}
		a.Metadata["calories"] = a.Metadata["calories"].(int) + m.Calories
		a.Metadata["protein_g"] = a.Metadata["protein_g"].(float64) + m.ProteinG
		a.Metadata["carbs_g"] = a.Metadata["carbs_g"].(float64) + m.CarbsG
		a.Metadata["fats_g"] = a.Metadata["fats_g"].(float64) + m.FatsG
		a.Metadata["items"] = a.Metadata["items"].(int) + 1
	}

	result := make([]Activity, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	return result
}

func mealTitle(mealType string) string {
	if mealType == "" {
		return "Meal"
	}
	return strings.ToUpper(mealType[:1]) + mealType[1:]
}

// Merge combines and sorts activities newest first, ties broken by id.
func Merge(lists ...[]Activity) []Activity {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]Activity, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Timestamp.Equal(merged[j].Timestamp) {
			return merged[i].Timestamp.After(merged[j].Timestamp)
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// Apply returns the activities matching f. The input is not modified.
func Apply(activities []Activity, f Filter, now time.Time, loc *time.Location) []Activity {
	from, bounded := rangeStart(f.Range, now, loc)
	query := strings.ToLower(f.Query)

	result := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if bounded && a.Timestamp.Before(from) {
			continue
		}
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		result = append(result, a)
	}
	return result
}

func rangeStart(r Range, now time.Time, loc *time.Location) (time.Time, bool) {
	switch r {
	case RangeToday:
		return pkg.Day(now, loc), true
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return now.AddDate(0, -1, 0), true
	case Range3Months:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

func matchesQuery(a Activity, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(a.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(a.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(a.Category), lowerQuery)
}
