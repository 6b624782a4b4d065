package leaderboard

import "time"

func SetNow(s *Service, now func() time.Time) {
	s.now = now
}
