package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes the publication pipeline's Prometheus metrics.
type Recorder struct {
	once            sync.Once
	publishDuration prom.Histogram
	publishOutcome  *prom.CounterVec
	stageFailures   *prom.CounterVec
	commits         prom.Counter
	dedupHits       prom.Counter
	screenings      *prom.CounterVec
}

// NewRecorder constructs and registers the pipeline metrics on reg
// (falls back to a private registry when reg is nil).
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{}
	r.once.Do(func() {
		r.publishDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "portfolio",
			Name:      "publish_duration_seconds",
			Help:      "Total duration of one publication pipeline run",
			Buckets:   prom.DefBuckets,
		})
		r.publishOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "portfolio",
			Name:      "publish_outcomes_total",
			Help:      "Publication outcomes by final status",
		}, []string{"outcome"})
		r.stageFailures = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "portfolio",
			Name:      "stage_failures_total",
			Help:      "Pipeline failures by stage",
		}, []string{"stage"})
		r.commits = prom.NewCounter(prom.CounterOpts{
			Namespace: "portfolio",
			Name:      "files_committed_total",
			Help:      "Files committed to remote repositories",
		})
		r.dedupHits = prom.NewCounter(prom.CounterOpts{
			Namespace: "portfolio",
			Name:      "dedup_hits_total",
			Help:      "Requests answered from the publication log without publishing",
		})
		r.screenings = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "portfolio",
			Name:      "screenings_total",
			Help:      "CV screening requests by outcome",
		}, []string{"outcome"})
		reg.MustRegister(r.publishDuration, r.publishOutcome, r.stageFailures,
			r.commits, r.dedupHits, r.screenings)
	})
	return r
}

func (r *Recorder) ObservePublish(d time.Duration, outcome string) {
	if r == nil {
		return
	}
	r.publishDuration.Observe(d.Seconds())
	r.publishOutcome.WithLabelValues(outcome).Inc()
}

func (r *Recorder) StageFailure(stage string) {
	if r == nil {
		return
	}
	r.stageFailures.WithLabelValues(stage).Inc()
}

func (r *Recorder) FileCommitted() {
	if r == nil {
		return
	}
	r.commits.Inc()
}

func (r *Recorder) DedupHit() {
	if r == nil {
		return
	}
	r.dedupHits.Inc()
}

func (r *Recorder) Screening(outcome string) {
	if r == nil {
		return
	}
	r.screenings.WithLabelValues(outcome).Inc()
}
