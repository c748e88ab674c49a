// Package metrics expone contadores Prometheus del BFF en GET /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "embutidos_web"

// Metrics agrupa los colectores. Implementa gate.Recorder, view.Observer y
// api.Observer.
type Metrics struct {
	registry *prometheus.Registry
	gate     *prometheus.CounterVec
	upstream *prometheus.HistogramVec
	batches  *prometheus.CounterVec
	batchDur prometheus.Histogram
}

// New registra los colectores en un registro propio.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		gate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_decisions_total",
			Help:      "Decisiones del filtro de sesión por resultado.",
		}, []string{"outcome"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latencia de las llamadas al backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_batches_total",
			Help:      "Lotes de carga de páginas por resultado.",
		}, []string{"outcome"}),
		batchDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_batch_duration_seconds",
			Help:      "Duración de los lotes de carga.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.gate, m.upstream, m.batches, m.batchDur,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// GateDecision cuenta una decisión del filtro de sesión.
func (m *Metrics) GateDecision(outcome string) {
	m.gate.WithLabelValues(outcome).Inc()
}

// ObserveUpstream registra la latencia de una llamada al backend. status 0
// significa error de transporte.
func (m *Metrics) ObserveUpstream(method, route string, status int, elapsed time.Duration) {
	m.upstream.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveBatch registra un lote de carga de página.
func (m *Metrics) ObserveBatch(outcome string, _ int, elapsed time.Duration) {
	m.batches.WithLabelValues(outcome).Inc()
	m.batchDur.Observe(elapsed.Seconds())
}

// Registry expuesto para tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler Fiber de /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
