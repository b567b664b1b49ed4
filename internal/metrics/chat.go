package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ChatTurnsTotal counts conversation turns by outcome
	// (answered, default, greeting, prompt, failure, rejected).
	ChatTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqdex",
			Name:      "chat_turns_total",
			Help:      "Total number of chat turns by outcome",
		},
		[]string{"outcome"},
	)

	// ChatBestScore observes the winning overlap score per answered turn.
	ChatBestScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "faqdex",
			Name:      "chat_best_score",
			Help:      "Winning keyword overlap score per answered turn",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		},
	)
)

// Register registers all metric collectors. Called once from the
// composition root; the package does no init()-time registration.
func Register() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(ChatTurnsTotal)
	prometheus.MustRegister(ChatBestScore)
}
