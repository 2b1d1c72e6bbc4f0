package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/san-kum/rootfind/internal/rootfind"
)

const namespace = "rootfind"

// Solver records the outcome of every solve. It is safe for concurrent use.
type Solver struct {
	reg        *prometheus.Registry
	solves     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewSolver registers the solve collectors, plus the Go runtime and process
// collectors, on a private registry.
func NewSolver() *Solver {
	s := &Solver{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of solves by method and status",
			},
			[]string{"method", "status"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "iterations",
				Help:      "Trace length of solves that reached the loop",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall time of a solve",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"method"},
		),
	}
	s.reg.MustRegister(
		s.solves,
		s.iterations,
		s.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return s
}

func (s *Solver) Name() string { return namespace }

// Observe counts one solve. Failed solves are counted but have no
// iteration sample.
func (s *Solver) Observe(res *rootfind.Result, elapsed time.Duration) {
	if res == nil {
		return
	}
	method := string(res.Method)
	if method == "" {
		method = "unknown"
	}
	s.solves.WithLabelValues(method, string(res.Status)).Inc()
	s.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if res.Status != rootfind.StatusFailed {
		s.iterations.WithLabelValues(method).Observe(float64(res.Iterations()))
	}
}

func (s *Solver) Registry() *prometheus.Registry { return s.reg }

// Handler serves the registry in the Prometheus text format.
func (s *Solver) Handler() http.Handler {
	return promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{Registry: s.reg})
}
