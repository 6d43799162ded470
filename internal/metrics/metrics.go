package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	ServiceName string
	Environment string
}

// JournalMetrics counts writes that touch the derived bean counters.
type JournalMetrics struct {
	writes              *prometheus.CounterVec
	inventoryAdjusted   prometheus.Counter
	inventoryClamped    prometheus.Counter
	scheduleTransitions *prometheus.CounterVec
}

var (
	journalOnce    sync.Once
	journalMetrics *JournalMetrics
)

func Journal() *JournalMetrics {
	return JournalWithConfig(Config{})
}

func JournalWithConfig(cfg Config) *JournalMetrics {
	journalOnce.Do(func() {
		journalMetrics = NewJournalMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return journalMetrics
}

func NewJournalMetrics(registerer prometheus.Registerer, cfg Config) *JournalMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	constLabels := constLabels(cfg)

	writes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "brewlog_journal_writes_total",
			Help:        "Journal rows written, by entity and operation.",
			ConstLabels: constLabels,
		},
		[]string{"entity", "op"},
	)

	inventoryAdjusted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "brewlog_inventory_adjustments_total",
			Help:        "Inventory quantity adjustments applied.",
			ConstLabels: constLabels,
		},
	)

	inventoryClamped := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "brewlog_inventory_adjustments_clamped_total",
			Help:        "Inventory adjustments that would have gone below zero.",
			ConstLabels: constLabels,
		},
	)

	scheduleTransitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "brewlog_schedule_transitions_total",
			Help:        "Brewing schedule status changes, by target status and result.",
			ConstLabels: constLabels,
		},
		[]string{"to", "result"}, // applied | rejected
	)

	registerer.MustRegister(writes, inventoryAdjusted, inventoryClamped, scheduleTransitions)

	return &JournalMetrics{
		writes:              writes,
		inventoryAdjusted:   inventoryAdjusted,
		inventoryClamped:    inventoryClamped,
		scheduleTransitions: scheduleTransitions,
	}
}

func (m *JournalMetrics) IncWrite(entity, op string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(entity, op).Inc()
}

func (m *JournalMetrics) ObserveAdjustment(clamped bool) {
	if m == nil {
		return
	}
	m.inventoryAdjusted.Inc()
	if clamped {
		m.inventoryClamped.Inc()
	}
}

func (m *JournalMetrics) IncTransition(to string, applied bool) {
	if m == nil {
		return
	}
	result := "applied"
	if !applied {
		result = "rejected"
	}
	m.scheduleTransitions.WithLabelValues(to, result).Inc()
}

func constLabels(cfg Config) prometheus.Labels {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "brewlog"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	return prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}
}
