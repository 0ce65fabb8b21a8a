// Package metrics exposes the Prometheus collectors of the equipment service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors registered for one process
type Metrics struct {
	itemsCreated         *prometheus.CounterVec
	itemCreateFailures   *prometheus.CounterVec
	itemCreateDuration   prometheus.Histogram
	prototypesSynced     *prometheus.CounterVec
	eventPublishFailures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		itemsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsCreated,
				Help:      HelpTextItemsCreated,
			},
			[]string{LabelItemType},
		),
		itemCreateFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemCreateFailures,
				Help:      HelpTextItemCreateFailures,
			},
			[]string{LabelCode},
		),
		itemCreateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      MetricNameItemCreateDuration,
				Help:      HelpTextItemCreateDuration,
				Buckets:   CreateLatencyBuckets,
			},
		),
		prototypesSynced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNamePrototypesSynced,
				Help:      HelpTextPrototypesSynced,
			},
			[]string{LabelSource},
		),
		eventPublishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameEventPublishFailures,
				Help:      HelpTextEventPublishFailures,
			},
			[]string{LabelEventType},
		),
	}
}

// ItemCreated counts a successful creation
func (m *Metrics) ItemCreated(itemType string, took time.Duration) {
	if m == nil {
		return
	}
	m.itemsCreated.WithLabelValues(itemType).Inc()
	m.itemCreateDuration.Observe(took.Seconds())
}

// ItemCreateFailed counts a failed creation by error code
func (m *Metrics) ItemCreateFailed(code string) {
	if m == nil {
		return
	}
	m.itemCreateFailures.WithLabelValues(code).Inc()
}

// PrototypesSynced counts prototypes written from a catalog source
func (m *Metrics) PrototypesSynced(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.prototypesSynced.WithLabelValues(source).Add(float64(n))
}

// EventPublishFailed counts an event the bus rejected
func (m *Metrics) EventPublishFailed(eventType string) {
	if m == nil {
		return
	}
	m.eventPublishFailures.WithLabelValues(eventType).Inc()
}
