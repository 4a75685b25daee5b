/*
Package metrics provides Prometheus metrics for the gallery.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeRendered   = "rendered"
	OutcomeNotFound   = "not_found"
	OutcomeEmpty      = "empty"
	OutcomeQueryError = "query_error"
)

var (
	imagesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coralgallery_images_rendered_total",
			Help: "Total number of images fetched, decoded and handed to the display",
		},
		[]string{"category"},
	)

	imageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coralgallery_image_failures_total",
			Help: "Total number of images that could not be fetched or decoded",
		},
		[]string{"category"},
	)

	categoryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coralgallery_category_outcomes_total",
			Help: "Category render outcomes",
		},
		[]string{"category", "outcome"},
	)

	galleryRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coralgallery_render_duration_seconds",
			Help:    "Time to resolve, list and fetch every category of the gallery",
			Buckets: prometheus.DefBuckets,
		},
	)
)

/*
RecordImageRendered counts an image handed to the display.
*/
func RecordImageRendered(category string) {
	imagesRendered.WithLabelValues(category).Inc()
}

/*
RecordImageFailure counts an image that produced a warning instead.
*/
func RecordImageFailure(category string) {
	imageFailures.WithLabelValues(category).Inc()
}

/*
RecordCategoryOutcome counts how a category finished.
*/
func RecordCategoryOutcome(category, outcome string) {
	categoryOutcomes.WithLabelValues(category, outcome).Inc()
}

/*
ObserveRenderDuration records a full gallery render.
*/
func ObserveRenderDuration(seconds float64) {
	galleryRenderDuration.Observe(seconds)
}

/*
Handler returns the Prometheus metrics HTTP handler.
*/
func Handler() http.Handler {
	return promhttp.Handler()
}
