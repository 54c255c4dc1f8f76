package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/workflow"
)

const (
	namespace = "avaliador"

	stageLabel   = "stage"
	outcomeLabel = "outcome"
	stateLabel   = "state"
	kindLabel    = "kind"

	outcomeOK    = "ok"
	outcomeError = "error"
)

// Recorder turns workflow events into Prometheus metrics.
type Recorder struct {
	stageDuration *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	warnings      prometheus.Counter
	inFlight      prometheus.Gauge
}

var _ workflow.Observer = (*Recorder)(nil)

// NewRecorder registers its collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{stageLabel, outcomeLabel}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by terminal state.",
		}, []string{stateLabel}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed runs by error kind.",
		}, []string{kindLabel}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "context_warnings_total",
			Help:      "Runs that continued without rubric context.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_in_progress",
			Help:      "1 while a run is executing.",
		}),
	}
	reg.MustRegister(r.stageDuration, r.runsTotal, r.failuresTotal, r.warnings, r.inFlight)
	return r
}

func (r *Recorder) OnRunStart(*workflow.Report) {
	r.inFlight.Set(1)
}

func (r *Recorder) OnStageStart(*workflow.Report, workflow.State) {}

func (r *Recorder) OnStageDone(_ *workflow.Report, stage workflow.State, dur time.Duration, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	r.stageDuration.WithLabelValues(string(stage), outcome).Observe(dur.Seconds())
}

func (r *Recorder) OnRunDone(rep *workflow.Report) {
	r.inFlight.Set(0)
	r.runsTotal.WithLabelValues(string(rep.State)).Inc()
	if rep.State == workflow.StateFailed {
		kind := rep.ErrorKind
		if kind == "" {
			kind = domain.Kind("unknown")
		}
		r.failuresTotal.WithLabelValues(string(kind)).Inc()
	}
	if len(rep.Warnings) > 0 {
		r.warnings.Inc()
	}
}
