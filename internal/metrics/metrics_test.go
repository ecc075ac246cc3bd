package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	FetchRuns.Inc()
	FetchErrors.Inc()
	IncFetchRetry("429")
	IncCommandRun("status")
	IncCommandError("status")
	ObserveFetchDuration(time.Now().Add(-150 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"postpace_fetch_runs_total",
		"postpace_fetch_errors_total",
		"postpace_fetch_duration_seconds",
		"postpace_fetch_retries_total",
		"postpace_command_runs_total",
		"postpace_command_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
