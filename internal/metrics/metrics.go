package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalagent_posts_generated_total",
		Help: "Posts produced by the template generator.",
	}, []string{"theme", "campus", "model_used"})

	PostsSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalagent_posts_saved_total",
		Help: "Posts written to disk, by caller.",
	}, []string{"source"})

	PostSaveErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentalagent_post_save_errors_total",
		Help: "Failed post file or archive writes.",
	})

	ProbeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalagent_ollama_requests_total",
		Help: "Requests to the optional Ollama service.",
	}, []string{"endpoint", "outcome"})

	ProbeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rentalagent_ollama_request_duration_seconds",
		Help:    "Latency of requests to the optional Ollama service.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	}, []string{"endpoint"})

	SavedPostsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rentalagent_saved_posts",
		Help: "Posts recorded in the archive.",
	})
)
