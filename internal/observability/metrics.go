package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	workoutEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peaktrack",
		Subsystem: "workouts",
		Name:      "events_total",
		Help:      "Workout mutations by operation (created, updated, deleted).",
	}, []string{"operation"})
	schedulingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "peaktrack",
		Subsystem: "workouts",
		Name:      "scheduling_conflicts_total",
		Help:      "Workouts rejected because they overlap an existing workout.",
	})
	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peaktrack",
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Login attempts by result (success, failure).",
	}, []string{"result"})
	tokensRevoked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "peaktrack",
		Subsystem: "auth",
		Name:      "tokens_revoked_total",
		Help:      "Tokens added to the denylist.",
	})
	blacklistSwept = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "peaktrack",
		Subsystem: "auth",
		Name:      "blacklist_rows_swept_total",
		Help:      "Expired blacklisted-token rows removed by the sweeper.",
	})
)

func init() {
	prometheus.MustRegister(workoutEvents, schedulingConflicts, loginAttempts, tokensRevoked, blacklistSwept)
}

func RecordWorkoutCreated() { workoutEvents.WithLabelValues("created").Inc() }
func RecordWorkoutUpdated() { workoutEvents.WithLabelValues("updated").Inc() }
func RecordWorkoutDeleted() { workoutEvents.WithLabelValues("deleted").Inc() }

// RecordSchedulingConflict counts a rejected add or update.
func RecordSchedulingConflict() { schedulingConflicts.Inc() }

// RecordLogin counts a login attempt.
func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	loginAttempts.WithLabelValues(result).Inc()
}

func RecordTokenRevoked() { tokensRevoked.Inc() }

// RecordBlacklistSwept adds the number of rows removed in one sweep.
func RecordBlacklistSwept(n int64) {
	if n <= 0 {
		return
	}
	blacklistSwept.Add(float64(n))
}
