package metrics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

// Recorder exposes request and business counters on its own registry.
// When disabled every Record call is a no-op.
type Recorder struct {
	enabled  bool
	logger   *slog.Logger
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight prometheus.Gauge
	events       *prometheus.CounterVec
	clicks       *prometheus.CounterVec
}

func NewRecorder(cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		enabled:  cfg.Enabled,
		logger:   logger,
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		httpInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortlink_events_total",
			Help: "Link lifecycle and redirect outcomes",
		}, []string{"event"}),
		clicks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shortlink_clicks_total",
			Help: "Recorded clicks by device and referrer category",
		}, []string{"device", "referrer"}),
	}
}

func (r *Recorder) Enabled() bool {
	return r.enabled
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled {
		return
	}
	status := strconv.Itoa(m.StatusCode)
	r.httpRequests.WithLabelValues(m.Method, m.Path, status).Inc()
	r.httpDuration.WithLabelValues(m.Method, m.Path, status).Observe(m.Duration.Seconds())
	if m.StatusCode >= http.StatusInternalServerError {
		r.logger.Debug("server error recorded",
			slog.String("path", m.Path),
			slog.Int("status", m.StatusCode),
			slog.String("client_ip", m.ClientIP),
			slog.String("error", m.Error))
	}
}

func (r *Recorder) TrackInFlight() func() {
	if !r.enabled {
		return func() {}
	}
	r.httpInFlight.Inc()
	return r.httpInFlight.Dec
}

func (r *Recorder) RecordEvent(event string) {
	if !r.enabled {
		return
	}
	r.events.WithLabelValues(event).Inc()
}

func (r *Recorder) RecordClick(device domain.Device, referrer string) {
	if !r.enabled {
		return
	}
	r.clicks.WithLabelValues(string(device), referrer).Inc()
}

// WatchPool exports connection pool gauges read at scrape time.
func (r *Recorder) WatchPool(pool *pgxpool.Pool) {
	gauge := func(name, help string, value func(*pgxpool.Stat) float64) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
			return value(pool.Stat())
		})
	}
	r.registry.MustRegister(
		gauge("shortlink_db_pool_acquired_conns", "Connections currently in use",
			func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }),
		gauge("shortlink_db_pool_idle_conns", "Idle connections",
			func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }),
		gauge("shortlink_db_pool_total_conns", "Open connections",
			func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }),
		gauge("shortlink_db_pool_max_conns", "Configured connection limit",
			func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }),
	)
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
