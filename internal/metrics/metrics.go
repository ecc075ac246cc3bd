package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FetchRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postpace_fetch_runs_total",
		Help: "Total feed fetch attempts",
	})
	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postpace_fetch_errors_total",
		Help: "Total failed feed fetches",
	})
	FetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "postpace_fetch_duration_seconds",
		Help:    "Feed fetch duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	FetchRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpace_fetch_retries_total",
		Help: "Total fetch retry attempts",
	}, []string{"reason"})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpace_command_runs_total",
		Help: "Total command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpace_command_errors_total",
		Help: "Total failed command invocations",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(FetchRuns, FetchErrors, FetchDuration, FetchRetries, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
// No addr configured means no server; the tool stays a plain CLI.
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveFetchDuration records one fetch duration.
func ObserveFetchDuration(start time.Time) {
	FetchDuration.Observe(time.Since(start).Seconds())
}

// IncFetchRetry increments the retry counter; reason is the status code or
// "network".
func IncFetchRetry(reason string) { FetchRetries.WithLabelValues(reason).Inc() }

// IncCommandRun increments the run counter for a subcommand.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError increments the error counter for a subcommand.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
