// Package metrics exposes service metrics for Prometheus scraping. Metrics
// live in a private registry so the default registry stays untouched.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resilience/internal/model"
)

const namespace = "resilience"

// Metrics holds the service collectors.
type Metrics struct {
	registry *prometheus.Registry

	assessments *prometheus.CounterVec
	score       *prometheus.HistogramVec
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	evicted     prometheus.Counter
}

// New creates and registers all collectors. sessions reports the number of
// live sessions at scrape time; nil leaves the gauge out.
func New(sessions func() int) (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.assessments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Completed assessments by risk level and source",
		},
		[]string{"risk_level", "source"},
	)
	m.score = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of assessment scores by domain (total for the overall score)",
			Buckets:   []float64{5, 10, 15, 20, 25, 35, 50, 65, 75, 85, 95, 100},
		},
		[]string{"domain"},
	)
	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "code"},
	)
	m.latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)
	m.evicted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_evicted_total",
		Help:      "Sessions evicted after their idle timeout",
	})

	collectors := []prometheus.Collector{m.assessments, m.score, m.requests, m.latency, m.evicted}
	if sessions != nil {
		collectors = append(collectors, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Sessions currently held in memory",
			},
			func() float64 { return float64(sessions()) },
		))
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveAssessment records one completed assessment.
func (m *Metrics) ObserveAssessment(source string, res model.Result) {
	m.assessments.WithLabelValues(string(res.Tier), source).Inc()
	m.score.WithLabelValues("total").Observe(float64(res.Total))
	for _, dr := range res.Domains {
		m.score.WithLabelValues(dr.Domain.Short()).Observe(float64(dr.Score))
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveEvicted records n evicted sessions.
func (m *Metrics) ObserveEvicted(n int) {
	m.evicted.Add(float64(n))
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
