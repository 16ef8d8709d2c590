package metrics

import "github.com/prometheus/client_golang/prometheus"

// Skill extraction and matching Prometheus metrics.
var (
	ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillmatch",
			Name:      "extractions_total",
			Help:      "Total number of skill extractions",
		},
		[]string{"source"}, // "extract" / "candidate" / "reference"
	)

	SkillsExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "skillmatch",
			Name:      "skills_extracted",
			Help:      "Number of distinct skills found per extraction",
			Buckets:   []float64{0, 1, 2, 5, 10, 15, 20, 30, 50},
		},
	)

	MatchPercentage = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "skillmatch",
			Name:      "match_percentage",
			Help:      "Distribution of match percentages",
			Buckets:   []float64{0, 20, 40, 60, 80, 85, 100},
		},
	)

	VocabularySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "skillmatch",
			Name:      "vocabulary_size",
			Help:      "Number of phrases in the loaded vocabulary",
		},
	)

	HistoryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillmatch",
			Name:      "history_total",
			Help:      "Analysis history operations",
		},
		[]string{"op", "status"}, // op: save/get/list/summary; status: ok/error
	)
)

var skillMetricsRegistered bool

// RegisterSkillMetrics registers skill metrics with the default registry. Must be called once from main.
func RegisterSkillMetrics() {
	if skillMetricsRegistered {
		return
	}
	prometheus.MustRegister(ExtractionsTotal)
	prometheus.MustRegister(SkillsExtracted)
	prometheus.MustRegister(MatchPercentage)
	prometheus.MustRegister(VocabularySize)
	prometheus.MustRegister(HistoryTotal)
	skillMetricsRegistered = true
}

// ObserveExtraction records one extraction of n distinct skills.
func ObserveExtraction(source string, n int) {
	ExtractionsTotal.WithLabelValues(source).Inc()
	SkillsExtracted.Observe(float64(n))
}

// ObserveHistory records the outcome of a history operation.
func ObserveHistory(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	HistoryTotal.WithLabelValues(op, status).Inc()
}
