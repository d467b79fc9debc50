package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "menusys"

// Metrics holds the navigation collectors.
type Metrics struct {
	menuVisits      *prometheus.CounterVec
	selections      *prometheus.CounterVec
	invalidInputs   *prometheus.CounterVec
	depth           prometheus.Gauge
	handlerDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		menuVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "menu_visits_total",
				Help:      "Total number of menu entries",
			},
			[]string{"title"},
		),
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "selections_total",
				Help:      "Total number of resolved selections",
			},
			[]string{"title", "handler", "signal"},
		),
		invalidInputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "invalid_inputs_total",
				Help:      "Total number of inputs that matched no choice",
			},
			[]string{"title"},
		),
		depth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "menu_depth",
				Help:      "Depth of the active menu level",
			},
		),
		handlerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "handler_duration_seconds",
				Help:      "Duration of handler executions",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler", "outcome"},
		),
	}

	collectors := []prometheus.Collector{m.menuVisits, m.selections, m.invalidInputs, m.depth, m.handlerDuration}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks records navigation events.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) {
			m.menuVisits.WithLabelValues(e.Title).Inc()
			m.depth.Set(float64(e.Depth))
		},
		OnMenuLeave: func(ctx context.Context, e *domain.MenuEvent) {
			m.depth.Set(float64(e.Depth - 1))
		},
		OnSelect: func(ctx context.Context, e *domain.SelectEvent) {
			m.selections.WithLabelValues(e.Title, e.Handler, e.Signal.String()).Inc()
		},
		OnInvalidInput: func(ctx context.Context, e *domain.SelectEvent) {
			m.invalidInputs.WithLabelValues(e.Title).Inc()
		},
	}
}

// Middleware measures handler durations, labelled by outcome ("ok" or "error").
func (m *Metrics) Middleware() registry.Middleware {
	return func(name string, next domain.HandlerFunc) domain.HandlerFunc {
		return func(ctx context.Context, value string) (domain.Signal, error) {
			start := time.Now()
			sig, err := next(ctx, value)
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.handlerDuration.WithLabelValues(name, outcome).Observe(time.Since(start).Seconds())
			return sig, err
		}
	}
}

// Handler exposes the metrics gathered by g in the Prometheus text format.
// A nil g uses prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
