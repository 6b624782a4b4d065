package gamification

import (
	"encoding/json"
	"fmt"
	"time"
)

// Instant is an RFC3339 timestamp in request payloads.
type Instant struct {
	time.Time
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("instant: %w", err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("instant: %w", err)
	}
	i.Time = t
	return nil
}

func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Time.Format(time.RFC3339))
}
