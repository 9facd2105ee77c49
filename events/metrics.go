package events

import (
	"errors"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink counts channel traffic in Prometheus collectors. Messages and
// records are counted per channel and direction; record counts let operators
// cross-check the conservation invariant from the outside.
type MetricsSink struct {
	mu sync.Mutex

	messagesTotal *prometheus.CounterVec
	recordsTotal  *prometheus.CounterVec

	registerer prometheus.Registerer
	registered bool
}

// newChannelCounterVec creates a counter vec with the standard
// shardflow/channels namespace.
func newChannelCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shardflow",
			Subsystem: "channels",
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// NewMetricsSink creates a metrics sink. A nil registerer falls back to
// prometheus.DefaultRegisterer; call Register before use.
func NewMetricsSink(registerer prometheus.Registerer) *MetricsSink {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &MetricsSink{
		registerer:    registerer,
		messagesTotal: newChannelCounterVec("messages_total", "Total number of messages observed at channel endpoints", []string{"channel", "direction"}),
		recordsTotal:  newChannelCounterVec("records_total", "Total number of records observed at channel endpoints", []string{"channel", "direction"}),
	}
}

// Register registers the Prometheus collectors. Safe to call multiple times.
func (m *MetricsSink) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	collectors := []prometheus.Collector{m.messagesTotal, m.recordsTotal}
	for _, c := range collectors {
		if err := m.registerer.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}

	m.registered = true
	return nil
}

// Log counts one message and its records.
func (m *MetricsSink) Log(event MessagesEvent) {
	direction := "recv"
	if event.IsSend {
		direction = "send"
	}
	channel := strconv.Itoa(event.Channel)
	m.messagesTotal.WithLabelValues(channel, direction).Inc()
	m.recordsTotal.WithLabelValues(channel, direction).Add(float64(event.Length))
}
