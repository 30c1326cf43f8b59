package observability

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "slideshow"

// Status is a point-in-time view of the presentation.
type Status struct {
	Slide    int       `json:"slide"`
	Showing  bool      `json:"showing"`
	Finished int       `json:"finished"`
	Failed   int       `json:"failed"`
	Since    time.Time `json:"since,omitzero"`
}

// Metrics records slide lifecycle events as Prometheus collectors.
type Metrics struct {
	slides         *prometheus.CounterVec
	actionFailures *prometheus.CounterVec
	slideDuration  prometheus.Histogram
	currentSlide   prometheus.Gauge

	mu     sync.Mutex
	status Status
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		slides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slides_total",
			Help:      "Slides run, by result.",
		}, []string{"result"}),
		actionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_failures_total",
			Help:      "Actions that stopped a slide, by action kind.",
		}, []string{"action"}),
		slideDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slide_duration_seconds",
			Help:      "Time from clearing the screen to the end of the trailing wait.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		currentSlide: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_slide",
			Help:      "Number of the slide on screen, 0 when none is.",
		}),
	}

	for _, c := range []prometheus.Collector{m.slides, m.actionFailures, m.slideDuration, m.currentSlide} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns runner hooks that record into m and then call next.
func (m *Metrics) Hooks(next runner.Hooks) runner.Hooks {
	return runner.Hooks{
		OnSlideStart: func(ctx context.Context, e *runner.SlideEvent) {
			m.slideStarted(e)
			if next.OnSlideStart != nil {
				next.OnSlideStart(ctx, e)
			}
		},
		OnSlideEnd: func(ctx context.Context, e *runner.SlideEvent) {
			m.slideEnded(e)
			if next.OnSlideEnd != nil {
				next.OnSlideEnd(ctx, e)
			}
		},
		OnActionFailed: func(ctx context.Context, e *runner.ActionEvent) {
			m.actionFailures.WithLabelValues(domain.Name(e.Action)).Inc()
			if next.OnActionFailed != nil {
				next.OnActionFailed(ctx, e)
			}
		},
	}
}

// Status returns the current presentation status.
func (m *Metrics) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Metrics) slideStarted(e *runner.SlideEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.Slide = e.Number
	m.status.Showing = true
	m.status.Since = e.Timestamp
	m.currentSlide.Set(float64(e.Number))
}

func (m *Metrics) slideEnded(e *runner.SlideEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.status.Since.IsZero() {
		m.slideDuration.Observe(e.Timestamp.Sub(m.status.Since).Seconds())
	}
	m.status.Showing = false
	m.status.Since = time.Time{}
	m.currentSlide.Set(0)

	if e.Err != nil {
		m.status.Failed++
		m.slides.WithLabelValues("failed").Inc()
		return
	}
	m.status.Finished++
	m.slides.WithLabelValues("ok").Inc()
}
