package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ProfitScanner/internal/model"
)

var (
	ScanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "profitscan_scan_duration_seconds",
			Help:    "Wall-clock time of a single best-trade scan",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"size"},
	)
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "profitscan_scans_total", Help: "Scans run by outcome"},
		[]string{"outcome"},
	)
	AvgPer10k = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "profitscan_avg_per_10k_seconds", Help: "Last benchmark average normalized to 10 000 elements"},
		[]string{"size"},
	)
)

func init() {
	prometheus.MustRegister(ScanDuration, ScansTotal, AvgPer10k)
}

// Observer feeds benchmark runs and rows into the package collectors.
type Observer struct{}

// ObserveRun records one timed scan.
func (Observer) ObserveRun(run model.BenchRun) {
	ScanDuration.WithLabelValues(strconv.Itoa(run.Size)).Observe(run.Elapsed.Seconds())
	outcome := "none"
	if run.Found {
		outcome = "trade"
	}
	ScansTotal.WithLabelValues(outcome).Inc()
}

// ObserveRow records the aggregate for one series size.
func (Observer) ObserveRow(row model.BenchRow) {
	AvgPer10k.WithLabelValues(strconv.Itoa(row.Count)).Set(row.AvgPer10k.Seconds())
}

// Handler exposes the default registry on /metrics.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve starts the metrics endpoint in the background. Listen failures are logged.
func Serve(addr string, log zerolog.Logger) *http.Server {
	srv := &http.Server{Addr: addr, Handler: Handler()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server")
		}
	}()
	return srv
}
