// Package metrics собирает метрики чек-инов для Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector реализует service.MetricsRecorder поверх Prometheus
type Collector struct {
	checkins      *prometheus.CounterVec
	failures      *prometheus.CounterVec
	verifications prometheus.Counter
	distance      prometheus.Histogram
}

// NewCollector создаёт Collector и регистрирует метрики в reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		checkins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "elaka_checkins_total",
			Help: "Записанные чек-ины по результату",
		}, []string{"result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "elaka_checkin_failures_total",
			Help: "Отклонённые чек-ины по категории ошибки",
		}, []string{"kind"}),
		verifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "elaka_verifications_total",
			Help: "Пользователи, получившие статус проверенного жителя",
		}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "elaka_checkin_distance_meters",
			Help:    "Расстояние от центра района при чек-ине, метры",
			Buckets: []float64{50, 100, 250, 500, 1000, 1500, 2000, 3000, 5000, 10000},
		}),
	}

	reg.MustRegister(
		c.checkins,
		c.failures,
		c.verifications,
		c.distance,
	)

	return c
}

func (c *Collector) RecordCheckin(result string) {
	c.checkins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordCheckinFailure(kind string) {
	c.failures.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordVerification() {
	c.verifications.Inc()
}

func (c *Collector) ObserveDistance(meters float64) {
	c.distance.Observe(meters)
}

// Handler отдаёт метрики для скрейпа
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
