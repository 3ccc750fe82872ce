// Package metrics provides a small registry of counters and gauges keyed by
// name and label set, backed by a Prometheus registry.
package metrics

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// ErrConflict is returned when a metric name is registered twice with
// different definitions.
var ErrConflict = errors.New("metrics: conflicting definition")

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric describes a registered metric. Labels names the label keys every
// recorded value must carry.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
	Labels      []string
}

// MetricValue is the current value of one metric for one label set.
type MetricValue struct {
	Value  float64
	Labels map[string]string
}

// Registry stores metric definitions and their values. A registry may be
// shared by queues owned by different goroutines, so it is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	metrics  map[string]Metric
	counters map[string]*prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
	reg      *prometheus.Registry
}

func NewRegistry() *Registry {
	return &Registry{
		metrics:  make(map[string]Metric),
		counters: make(map[string]*prometheus.CounterVec),
		gauges:   make(map[string]*prometheus.GaugeVec),
		reg:      prometheus.NewRegistry(),
	}
}

// Register adds a metric definition. Registering an identical definition
// again is a no-op; a different definition under the same name returns
// ErrConflict.
func (r *Registry) Register(metric Metric) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.metrics[metric.Name]; ok {
		if existing.Type != metric.Type || !slices.Equal(existing.Labels, metric.Labels) {
			return errors.Wrapf(ErrConflict, "metric %q", metric.Name)
		}
		return nil
	}

	var collector prometheus.Collector
	switch metric.Type {
	case Counter:
		vec := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metric.Name,
			Help: metric.Description,
		}, metric.Labels)
		r.counters[metric.Name] = vec
		collector = vec
	case Gauge:
		vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: metric.Name,
			Help: metric.Description,
		}, metric.Labels)
		r.gauges[metric.Name] = vec
		collector = vec
	default:
		return errors.Newf("metrics: unknown type %d for %q", metric.Type, metric.Name)
	}

	if err := r.reg.Register(collector); err != nil {
		delete(r.counters, metric.Name)
		delete(r.gauges, metric.Name)
		return errors.Wrapf(err, "register %q", metric.Name)
	}
	r.metrics[metric.Name] = metric
	return nil
}

// RecordCounter adds delta to the counter for labels. Unregistered names,
// non-counter metrics, negative deltas and label sets that do not match the
// definition are ignored.
func (r *Registry) RecordCounter(name string, delta float64, labels map[string]string) {
	r.mu.RLock()
	vec, ok := r.counters[name]
	r.mu.RUnlock()
	if !ok || delta < 0 {
		return
	}
	c, err := vec.GetMetricWith(labels)
	if err != nil {
		return
	}
	c.Add(delta)
}

// RecordGauge sets the gauge for labels to value.
func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.mu.RLock()
	vec, ok := r.gauges[name]
	r.mu.RUnlock()
	if !ok {
		return
	}
	g, err := vec.GetMetricWith(labels)
	if err != nil {
		return
	}
	g.Set(value)
}

// Value returns the current value for name and labels.
func (r *Registry) Value(name string, labels map[string]string) (float64, bool) {
	for _, v := range r.GetMetrics()[name] {
		if sameLabels(v.Labels, labels) {
			return v.Value, true
		}
	}
	return 0, false
}

// GetMetrics returns a copy of every recorded value grouped by metric name.
// Values within a metric are ordered by label values.
func (r *Registry) GetMetrics() map[string][]MetricValue {
	// Gather still returns whatever it collected alongside an error.
	families, _ := r.reg.Gather()

	result := make(map[string][]MetricValue, len(families))
	for _, family := range families {
		values := make([]MetricValue, 0, len(family.GetMetric()))
		for _, m := range family.GetMetric() {
			values = append(values, MetricValue{
				Value:  sampleValue(family.GetType(), m),
				Labels: labelMap(m.GetLabel()),
			})
		}
		result[family.GetName()] = values
	}
	return result
}

// Gatherer exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func sampleValue(typ dto.MetricType, m *dto.Metric) float64 {
	switch typ {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	labels := make(map[string]string, len(pairs))
	for _, p := range pairs {
		labels[p.GetName()] = p.GetValue()
	}
	return labels
}

func sameLabels(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}
