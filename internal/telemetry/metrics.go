package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — счётчики и гистограммы выполнения сценариев.
//
// Все методы безопасны на nil-получателе: компоненты, которым метрики
// не нужны, просто не передают Metrics.
type Metrics struct {
	stepsTotal   *prometheus.CounterVec
	stepDuration *prometheus.HistogramVec
	runsTotal    *prometheus.CounterVec
}

// NewMetrics создаёт и регистрирует коллекторы на reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mayhem",
			Name:      "steps_total",
			Help:      "Number of executed scenario steps by step ID and result.",
		}, []string{"step", "result"}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mayhem",
			Name:      "step_duration_seconds",
			Help:      "Duration of scenario step execution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"step"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mayhem",
			Name:      "runs_total",
			Help:      "Number of scenario runs by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.stepsTotal, m.stepDuration, m.runsTotal)
	return m
}

// ObserveStep фиксирует выполнение одного шага.
func (m *Metrics) ObserveStep(stepID, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(stepID, result).Inc()
	m.stepDuration.WithLabelValues(stepID).Observe(elapsed.Seconds())
}

// ObserveRun фиксирует завершение run'а.
func (m *Metrics) ObserveRun(result string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(result).Inc()
}
