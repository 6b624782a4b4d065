package nutrition

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// KcalPerKg is the energy equivalent of one kg of body mass change.
const KcalPerKg = 7700

// assumed body weight for MET estimates when the user never weighed in
const fallbackWeightKg = 70

var (
	ErrNoWeightMeasurement = errors.New("no weight measurement")
	ErrInvalidEntry        = errors.New("invalid entry")
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type NewMeal struct {
	MealType MealType   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	FoodName string     `json:"food_name" validate:"required,max=200"`
	Calories int        `json:"calories" validate:"gte=0,lte=10000"`
	ProteinG float64    `json:"protein_g" validate:"gte=0"`
	CarbsG   float64    `json:"carbs_g" validate:"gte=0"`
	FatsG    float64    `json:"fats_g" validate:"gte=0"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

type Meal struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	MealType MealType  `json:"meal_type"`
	FoodName string    `json:"food_name"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatsG    float64   `json:"fats_g"`
	LoggedAt time.Time `json:"logged_at"`
}

type Goals struct {
	MaintenanceKcal int `json:"maintenance_kcal" validate:"gte=800,lte=10000"`
	GoalKcal        int `json:"goal_kcal" validate:"gte=800,lte=10000"`
}

type WeightMeasurement struct {
	WeightKg   float64   `json:"weight_kg"`
	MeasuredAt time.Time `json:"measured_at"`
}

// BurnedSession is the part of a completed workout relevant for energy burn.
type BurnedSession struct {
	Category        string
	DurationMinutes int
	CaloriesBurned  int
}

type DailyBalance struct {
	Day             string `json:"day"`
	ConsumedKcal    int    `json:"consumed_kcal"`
	BurnedKcal      int    `json:"burned_kcal"`
	BurnEstimated   bool   `json:"burn_estimated"`
	MaintenanceKcal int    `json:"maintenance_kcal"`
	GoalKcal        int    `json:"goal_kcal"`
	NetKcal         int    `json:"net_kcal"`
}

type ProjectionInput struct {
	LastWeightKg    float64
	ConsumedKcal    int
	MaintenanceKcal int
	ExtraBurnedKcal int
}

type Projection struct {
	LastWeightKg      float64   `json:"last_weight_kg"`
	MeasuredAt        time.Time `json:"measured_at"`
	NetKcal           int       `json:"net_kcal"`
	DeltaKg           float64   `json:"delta_kg"`
	ProjectedWeightKg float64   `json:"projected_weight_kg"`
}

type UnlockStatus struct {
	Unlocked     bool `json:"unlocked"`
	LoggedDays   int  `json:"logged_days"`
	RequiredDays int  `json:"required_days"`
}

// Project estimates today's weight from the last measurement and the energy
// balance: net = consumed - (maintenance + burned), delta = net / 7700.
func Project(in ProjectionInput) Projection {
	net := in.ConsumedKcal - (in.MaintenanceKcal + in.ExtraBurnedKcal)
	delta := float64(net) / KcalPerKg
	return Projection{
		LastWeightKg:      in.LastWeightKg,
		NetKcal:           net,
		DeltaKg:           round(delta, 3),
		ProjectedWeightKg: round(in.LastWeightKg+delta, 2),
	}
}

var metByCategory = map[string]float64{
	"strength": 5.0,
	"running":  9.8,
	"cardio":   7.0,
	"cycling":  7.5,
	"yoga":     2.5,
	"hiit":     8.0,
	"walking":  3.5,
}

const defaultMET = 4.0

// METForCategory returns the metabolic equivalent for a workout category.
func METForCategory(category string) float64 {
	if met, ok := metByCategory[category]; ok {
		return met
	}
	return defaultMET
}

// CaloriesFromMET = MET x body weight (kg) x hours.
func CaloriesFromMET(met, weightKg float64, duration time.Duration) int {
	if met <= 0 || weightKg <= 0 || duration <= 0 {
		return 0
	}
	return int(math.Round(met * weightKg * duration.Hours()))
}

// BurnedCalories sums the logged burn of the sessions. Sessions without a
// logged figure are estimated from their category MET; estimated reports
// whether that happened at least once.
func BurnedCalories(sessions []BurnedSession, weightKg float64) (total int, estimated bool) {
	if weightKg <= 0 {
		weightKg = fallbackWeightKg
	}
	for _, s := range sessions {
		if s.CaloriesBurned > 0 {
			total += s.CaloriesBurned
			continue
		}
		burn := CaloriesFromMET(METForCategory(s.Category), weightKg, time.Duration(s.DurationMinutes)*time.Minute)
		if burn > 0 {
			total += burn
			estimated = true
		}
	}
	return total, estimated
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
