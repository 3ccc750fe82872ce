// Package monitoring instruments priority queues with structured logging
// and metrics.
package monitoring

import (
	"github.com/davidvella/dsa/metrics"
	"github.com/davidvella/dsa/priority"
)

const (
	MetricOperations = "queue_operations_total"
	MetricErrors     = "queue_errors_total"
	MetricLength     = "queue_length"
)

// options defines the instrumentation settings.
type options struct {
	logger   Logger
	registry *metrics.Registry
	backend  string
}

// Option is a function that configures an instrumented queue.
type Option func(*options)

// WithLogger sets the logger operations are reported to.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry sets the registry metrics are recorded in. Several queues may
// share one registry; their series are told apart by the backend label.
func WithRegistry(r *metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithBackendName overrides the backend label, which otherwise names the
// wrapped queue's implementation.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// Queue wraps a priority.PairQueue, counting every operation, tracking the
// queue length and logging failures. It adds no synchronization.
type Queue struct {
	q        priority.PairQueue
	logger   Logger
	registry *metrics.Registry
	backend  string
}

var _ priority.PairQueue = (*Queue)(nil)

// NewQueue instruments q.
func NewQueue(q priority.PairQueue, opts ...Option) *Queue {
	o := options{backend: backendName(q)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger("priority")
	}
	if o.registry == nil {
		o.registry = metrics.NewRegistry()
	}
	if err := registerQueueMetrics(o.registry); err != nil {
		o.logger.LogError(ERROR, "register", "queue metrics unavailable", err, map[string]interface{}{"backend": o.backend})
	}

	return &Queue{
		q:        q,
		logger:   o.logger,
		registry: o.registry,
		backend:  o.backend,
	}
}

// Registry returns the registry the queue records into.
func (m *Queue) Registry() *metrics.Registry {
	return m.registry
}

func (m *Queue) Len() int {
	return m.q.Len()
}

func (m *Queue) IsEmpty() bool {
	return m.q.IsEmpty()
}

func (m *Queue) Clear() {
	m.q.Clear()
	m.observe("clear", nil, nil)
}

func (m *Queue) Enqueue(element, prio int) {
	m.q.Enqueue(element, prio)
	m.observe("enqueue", nil, map[string]interface{}{"element": element, "priority": prio})
}

func (m *Queue) DequeueMax() (int, error) {
	p, err := m.DequeueMaxPair()
	return p.Element, err
}

func (m *Queue) PeekMax() (int, error) {
	p, err := m.PeekMaxPair()
	return p.Element, err
}

func (m *Queue) PeekMaxPair() (priority.Pair, error) {
	p, err := m.q.PeekMaxPair()
	m.observe("peek", err, nil)
	return p, err
}

func (m *Queue) DequeueMaxPair() (priority.Pair, error) {
	p, err := m.q.DequeueMaxPair()
	var details map[string]interface{}
	if err == nil {
		details = map[string]interface{}{"element": p.Element, "priority": p.Priority}
	}
	m.observe("dequeue", err, details)
	return p, err
}

func (m *Queue) ModifyPriority(element, prio int) error {
	err := m.q.ModifyPriority(element, prio)
	m.observe("modify", err, map[string]interface{}{"element": element, "priority": prio})
	return err
}

func (m *Queue) observe(op string, err error, details map[string]interface{}) {
	labels := map[string]string{"op": op, "backend": m.backend}
	m.registry.RecordCounter(MetricOperations, 1, labels)
	m.registry.RecordGauge(MetricLength, float64(m.q.Len()), map[string]string{"backend": m.backend})

	if details == nil {
		details = make(map[string]interface{}, 3)
	}
	details["backend"] = m.backend

	if err != nil {
		m.registry.RecordCounter(MetricErrors, 1, labels)
		m.logger.LogError(WARN, op, "queue operation failed", err, details)
		return
	}
	m.logger.Log(DEBUG, op, "queue operation", details)
}

func registerQueueMetrics(registry *metrics.Registry) error {
	defs := []metrics.Metric{
		{
			Name:        MetricOperations,
			Type:        metrics.Counter,
			Description: "Total number of queue operations by op and backend",
			Labels:      []string{"op", "backend"},
		},
		{
			Name:        MetricErrors,
			Type:        metrics.Counter,
			Description: "Total number of failed queue operations by op and backend",
			Labels:      []string{"op", "backend"},
		},
		{
			Name:        MetricLength,
			Type:        metrics.Gauge,
			Description: "Number of queued pairs after the last operation",
			Labels:      []string{"backend"},
		},
	}
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func backendName(q priority.PairQueue) string {
	switch q.(type) {
	case *priority.HeapQueue:
		return priority.Heap.String()
	case *priority.ArrayQueue:
		return priority.Array.String()
	case *priority.ListQueue:
		return priority.List.String()
	case *priority.OrderedQueue:
		return priority.Ordered.String()
	default:
		return "custom"
	}
}
