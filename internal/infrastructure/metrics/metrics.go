package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"videoskill/internal/ports/output"
)

var _ output.Metrics = (*Recorder)(nil)

// Recorder exports request and fault counters to Prometheus.
type Recorder struct {
	requests *prometheus.CounterVec
	faults   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRecorder registers the skill metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skill_requests_total",
			Help: "Requests answered, by handler",
		}, []string{"handler"}),
		faults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "skill_faults_total",
			Help: "Requests answered by the error handler, by fault kind",
		}, []string{"kind"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skill_request_duration_seconds",
			Help:    "Time spent routing and handling a request",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
	}
}

func (r *Recorder) ObserveRequest(handler string, elapsed time.Duration) {
	r.requests.WithLabelValues(handler).Inc()
	r.latency.WithLabelValues(handler).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveFault(kind string) {
	r.faults.WithLabelValues(kind).Inc()
}
