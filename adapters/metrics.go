package adapters

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Averager tracks a running average, backed by a prometheus counter/gauge
// pair so the running sum and count are scrapeable as well as readable
// in-process.
type Averager interface {
	Observe(value float64)
	Read() float64
}

type averager struct {
	mu        sync.RWMutex
	sum       float64
	count     float64
	promCount prometheus.Counter
	promSum   prometheus.Gauge
}

// NewAverager registers a count/sum metric pair under reg and returns an
// Averager backed by them.
func NewAverager(name, help string, reg prometheus.Registerer) (Averager, error) {
	count := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name + "_count",
		Help: "Total # of observations of " + help,
	})
	sum := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name + "_sum",
		Help: "Sum of " + help,
	})
	if err := reg.Register(count); err != nil {
		return nil, err
	}
	if err := reg.Register(sum); err != nil {
		return nil, err
	}
	return &averager{promCount: count, promSum: sum}, nil
}

func (a *averager) Observe(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum += value
	a.count++
	if a.promCount != nil {
		a.promCount.Inc()
	}
	if a.promSum != nil {
		a.promSum.Add(value)
	}
}

func (a *averager) Read() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.count == 0 {
		return 0
	}
	return a.sum / a.count
}

// Metrics is the set of counters a trace run reports to a caller-supplied
// prometheus registry: dispatch count, depth-duration, and collapse count.
type Metrics struct {
	Dispatches      prometheus.Counter
	DepthDurationMs Averager
	Collapses       prometheus.Counter
}

// NewMetrics registers and returns the trace-run metric set against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	dispatches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsbeam_dispatches_total",
		Help: "Total number of trace-run events dispatched.",
	})
	if err := reg.Register(dispatches); err != nil {
		return nil, err
	}
	collapses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsbeam_collapses_total",
		Help: "Total number of depth steps that collapsed the frontier.",
	})
	if err := reg.Register(collapses); err != nil {
		return nil, err
	}
	depthDuration, err := NewAverager("dsbeam_depth_duration_ms", "milliseconds per depth step", reg)
	if err != nil {
		return nil, err
	}
	return &Metrics{Dispatches: dispatches, DepthDurationMs: depthDuration, Collapses: collapses}, nil
}
