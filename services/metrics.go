package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_api_predictions_total",
		Help: "Total number of single-point predictions served.",
	})
	optimizationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_api_optimizations_total",
		Help: "Total number of price grid scans served.",
	})
	modelLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_api_model_load_failures_total",
		Help: "Total number of failed model artifact loads.",
	})
	predictDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_api_predict_duration_seconds",
		Help:    "Duration of single-point predictions.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
	optimizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_api_optimize_duration_seconds",
		Help:    "Duration of full price grid scans.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5},
	})
)
