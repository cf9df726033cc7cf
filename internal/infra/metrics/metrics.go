package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder junta as métricas de uma execução e empurra para o Pushgateway no fim.
// Job batch não fica de pé para ser raspado, por isso push e não /metrics.
type Recorder struct {
	registry *prometheus.Registry
	pushURL  string
	job      string

	rowsTotal     *prometheus.CounterVec
	runDuration   *prometheus.GaugeVec
	lastRunTime   *prometheus.GaugeVec
	fatalFailures *prometheus.CounterVec
}

func NewRecorder(pushURL, job string) *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		pushURL:  pushURL,
		job:      job,

		rowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odoo_sync_rows_total",
				Help: "Total number of source rows processed, by outcome",
			},
			[]string{"mode", "status"},
		),

		runDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "odoo_sync_run_duration_seconds",
				Help: "Duration of the last run in seconds",
			},
			[]string{"mode"},
		),

		lastRunTime: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "odoo_sync_last_run_timestamp_seconds",
				Help: "Unix time of the last finished run",
			},
			[]string{"mode"},
		),

		fatalFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odoo_sync_run_failures_total",
				Help: "Runs aborted before the end of the batch",
			},
			[]string{"mode"},
		),
	}
}

func (r *Recorder) RecordRow(mode, status string) {
	r.rowsTotal.WithLabelValues(mode, status).Inc()
}

func (r *Recorder) RecordRun(mode string, duration time.Duration, finishedAt time.Time) {
	r.runDuration.WithLabelValues(mode).Set(duration.Seconds())
	r.lastRunTime.WithLabelValues(mode).Set(float64(finishedAt.Unix()))
}

func (r *Recorder) RecordAbort(mode string) {
	r.fatalFailures.WithLabelValues(mode).Inc()
}

func (r *Recorder) Enabled() bool {
	return r.pushURL != ""
}

// Push envia tudo ao Pushgateway. Sem URL configurada não faz nada.
func (r *Recorder) Push(ctx context.Context, mode string) error {
	if !r.Enabled() {
		return nil
	}
	return push.New(r.pushURL, r.job).
		Gatherer(r.registry).
		Grouping("mode", mode).
		PushContext(ctx)
}
