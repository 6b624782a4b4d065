package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const jobTimeout = 2 * time.Minute

// ScheduledJob is a background job run by the cron scheduler. Jobs guard
// themselves with a redis lock, so several instances can share a schedule.
type ScheduledJob struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

// NewScheduler registers the jobs on a cron scheduler running in loc.
// It does not start it.
func NewScheduler(loc *time.Location, jobs ...ScheduledJob) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc))
	for _, job := range jobs {
		if _, err := c.AddFunc(job.Schedule, jobFunc(job)); err != nil {
			return nil, fmt.Errorf("schedule job [%s] with [%s]: %w", job.Name, job.Schedule, err)
		}
		log.Debugf("job [%s] scheduled: %s", job.Name, job.Schedule)
	}
	return c, nil
}

func jobFunc(job ScheduledJob) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			log.Errorf("job [%s] failed: %s", job.Name, err)
			return
		}
		log.Debugf("job [%s] done in %s", job.Name, time.Since(start))
	}
}
