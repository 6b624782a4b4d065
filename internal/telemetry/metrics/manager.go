package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests             *prometheus.CounterVec
	CounterHandleRequestPanic   prometheus.Counter
	CounterRateLimitedRequests  prometheus.Counter
	CounterWorkoutsCompleted    prometheus.Counter
	CounterDuplicateCompletions prometheus.Counter
	CounterPointsAwarded        prometheus.Counter
	CounterBadgesAwarded        *prometheus.CounterVec
	CounterChallengesRotated    prometheus.Counter
	CounterFollowUpFailures     *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistStatsResyncDuration        prometheus.Histogram
	HistWeeklyBoardRefreshDuration prometheus.Histogram
	HistogramRequestDuration       *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitquest", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitquest", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterWorkoutsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_completed",
		Help:      "The total number of completed workout sessions",
	})
	counterDuplicateCompletions := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_completions_duplicate",
		Help:      "Completion requests replayed for an already completed session",
	})
	counterPointsAwarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "points_awarded",
		Help:      "The total number of points awarded for workouts",
	})
	counterBadgesAwarded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "badges_awarded",
		Help:      "Badges awarded, by badge id",
	}, []string{"badge"})
	counterChallengesRotated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "challenges_rotated",
		Help:      "Number of weekly challenges created by the rotation job",
	})
	counterFollowUpFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_follow_up_failures",
		Help:      "Failed steps after a workout completion was committed",
	}, []string{"step"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histStatsResyncDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_resync_duration_seconds",
		Help:      "Duration of a full user stats resync in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	})
	histWeeklyBoardRefreshDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_board_refresh_duration_seconds",
		Help:      "Duration of the weekly leaderboard materialization in seconds",
		Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:                counterRequests,
		CounterHandleRequestPanic:      counterHandleRequestPanic,
		CounterRateLimitedRequests:     counterRateLimitedRequests,
		CounterWorkoutsCompleted:       counterWorkoutsCompleted,
		CounterDuplicateCompletions:    counterDuplicateCompletions,
		CounterPointsAwarded:           counterPointsAwarded,
		CounterBadgesAwarded:           counterBadgesAwarded,
		CounterChallengesRotated:       counterChallengesRotated,
		CounterFollowUpFailures:        counterFollowUpFailures,
		GaugeRequests:                  gaugeRequests,
		GaugeLifeSignal:                gaugeLifeSignal,
		HistStatsResyncDuration:        histStatsResyncDuration,
		HistWeeklyBoardRefreshDuration: histWeeklyBoardRefreshDuration,
		HistogramRequestDuration:       histogramRequestDuration,
	}
}
