package leaderboard

import (
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	// rows materialized per week
	weeklyBoardSize = 100
)

// UserRank is a user's standing on the all-time board. Ties share a rank:
// rank = 1 + number of users with strictly more points.
type UserRank struct {
	UserID      uuid.UUID `json:"user_id"`
	Rank        int       `json:"rank"`
	TotalPoints int64     `json:"total_points"`
	TotalUsers  int       `json:"total_users"`
	Percentile  float64   `json:"percentile"`
}

type Entry struct {
	Rank          int       `json:"rank"`
	UserID        uuid.UUID `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	TotalPoints   int64     `json:"total_points"`
	CurrentStreak int       `json:"current_streak"`
}

// WeeklyTotal is one user's ledger sum for a week.
type WeeklyTotal struct {
	UserID   uuid.UUID
	Points   int64
	Workouts int
}

type WeeklyEntry struct {
	Position    int    `json:"position"`
	DisplayName string `json:"display_name"`
	Points      int64  `json:"points"`
	Workouts    int    `json:"workouts"`
}

type WeeklyBoard struct {
	WeekStart   time.Time     `json:"week_start"`
	RefreshedAt *time.Time    `json:"refreshed_at"`
	Entries     []WeeklyEntry `json:"entries"`
}

// Percentile is the share of users ranked at or below rank, in percent
// with one decimal. The leader of a board of 10 sits at 100, the last at 10.
func Percentile(rank, totalUsers int) float64 {
	if totalUsers <= 0 || rank <= 0 {
		return 0
	}
	rank = min(rank, totalUsers)
	p := float64(totalUsers-rank+1) * 100 / float64(totalUsers)
	return math.Round(p*10) / 10
}

// DisplayName derives a stable pseudonym like "Brave Otter" from the user id,
// so public boards never carry the id itself.
func DisplayName(userID uuid.UUID) string {
	h := fnv.New64a()
	_, _ = h.Write(userID[:])
	seed := int64(h.Sum64() &^ (1 << 63))
	if seed == 0 {
		seed = 1
	}
	faker := gofakeit.New(seed)
	return capitalize(faker.Adjective()) + " " + capitalize(faker.Animal())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// WeeklyEntries turns ledger totals, already ordered, into board rows.
func WeeklyEntries(totals []WeeklyTotal) []WeeklyEntry {
	entries := make([]WeeklyEntry, 0, len(totals))
	for i, t := range totals {
		entries = append(entries, WeeklyEntry{
			Position:    i + 1,
			DisplayName: DisplayName(t.UserID),
			Points:      t.Points,
			Workouts:    t.Workouts,
		})
	}
	return entries
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
