package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aevon-lab/anomaly-explorer/internal/focus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var _ focus.Reporter = (*Reporter)(nil)

func TestReporter_CountsLoadsByOutcome(t *testing.T) {
	r := NewReporter()

	r.ReportFocusLoad("farequote", focus.OutcomeSuccess, 120*time.Millisecond)
	r.ReportFocusLoad("farequote", focus.OutcomeSuccess, 80*time.Millisecond)
	r.ReportFocusLoad("farequote", focus.OutcomeError, 5*time.Millisecond)
	r.ReportFocusLoad("gallery", focus.OutcomePartial, 30*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(r.focusLoads.WithLabelValues("farequote", focus.OutcomeSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.focusLoads.WithLabelValues("farequote", focus.OutcomeError)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.focusLoads.WithLabelValues("gallery", focus.OutcomePartial)))
	require.Equal(t, 3, testutil.CollectAndCount(r.loadDuration))
}

func TestReporter_CountsAnnotationFailures(t *testing.T) {
	r := NewReporter()

	r.ReportAnnotationFailure("farequote")
	r.ReportAnnotationFailure("farequote")

	require.Equal(t, 2.0, testutil.ToFloat64(r.annotationFailures.WithLabelValues("farequote")))
}

func TestReporter_Handler(t *testing.T) {
	r := NewReporter()
	r.ReportFocusLoad("farequote", focus.OutcomeSuccess, time.Second)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `explorer_focus_loads_total{job_id="farequote",outcome="success"} 1`)
	require.Contains(t, string(body), "explorer_focus_load_duration_seconds_bucket")
	require.Contains(t, string(body), "go_goroutines")
}
