package gamification

import (
	"sort"
	"time"

	"github.com/2beens/fitquest/pkg"
)

// NextStreak advances the streak for a workout on workoutDay, given the last
// recorded workout day (nil when the user never worked out).
//
//	last workout yesterday  -> current + 1
//	same day                -> unchanged
//	gap or no prior workout -> 1
//	out of order (earlier)  -> unchanged
func NextStreak(current, longest int, lastWorkoutDay *time.Time, workoutDay time.Time, loc *time.Location) (int, int) {
	next := current
	if lastWorkoutDay == nil {
		next = 1
	} else {
		switch diff := pkg.DaysBetween(*lastWorkoutDay, workoutDay, loc); {
		case diff == 0, diff < 0:
		case diff == 1:
			next = current + 1
		default:
			next = 1
		}
	}
	return next, max(longest, next)
}

// ScanStreak derives both streaks from the full set of workout days.
// The current run counts when it ends today, or yesterday when there is no
// workout today yet.
func ScanStreak(workoutDays []time.Time, today time.Time, loc *time.Location) (current, longest int) {
	if len(workoutDays) == 0 {
		return 0, 0
	}

	unique := make(map[time.Time]struct{}, len(workoutDays))
	days := make([]time.Time, 0, len(workoutDays))
	for _, d := range workoutDays {
		day := pkg.Day(d, loc)
		if _, seen := unique[day]; seen {
			continue
		}
		unique[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 0
	for i, d := range days {
		if i > 0 && pkg.DaysBetween(days[i-1], d, loc) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	// run now holds the length of the run ending at the latest day
	last := days[len(days)-1]
	switch pkg.DaysBetween(last, today, loc) {
	case 0, 1:
		current = run
	default:
		current = 0
	}

	return current, max(longest, current)
}

// EffectiveCurrentStreak is the streak as it should be shown at read time.
// The stored value is only refreshed on the next workout, so a streak whose
// last workout is older than yesterday has already lapsed.
func EffectiveCurrentStreak(stats UserStats, today time.Time, loc *time.Location) int {
	if stats.LastWorkoutDate == nil {
		return 0
	}
	if pkg.DaysBetween(*stats.LastWorkoutDate, today, loc) > 1 {
		return 0
	}
	return stats.CurrentStreak
}
