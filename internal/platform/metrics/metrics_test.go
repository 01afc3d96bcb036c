// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/platform/metrics"
	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/internal/views/argument"
)

// Compile-time checks that Metrics plugs into both observers
var (
	_ argument.Observer = (*metrics.Metrics)(nil)
	_ views.Recorder    = (*metrics.Metrics)(nil)
)

func TestMetrics_Resolutions(t *testing.T) {
	m := metrics.New()

	m.ObserveResolution("taxonomy_index_tid_slug", "resolved")
	m.ObserveResolution("taxonomy_index_tid_slug", "resolved")
	m.ObserveResolution("taxonomy_index_tid_slug", "not_found")

	expected := `
# HELP tagfilter_argument_resolutions_total Contextual argument assignments by plugin and outcome.
# TYPE tagfilter_argument_resolutions_total counter
tagfilter_argument_resolutions_total{outcome="not_found",plugin="taxonomy_index_tid_slug"} 1
tagfilter_argument_resolutions_total{outcome="resolved",plugin="taxonomy_index_tid_slug"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "tagfilter_argument_resolutions_total"))
}

func TestMetrics_Executions(t *testing.T) {
	m := metrics.New()

	m.ObserveExecution("tagged", "ok", 20*time.Millisecond)
	m.ObserveExecution("tagged", "not_found", time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "tagfilter_view_executions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "tagfilter_view_execution_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveResolution("taxonomy_index_tid", "numeric")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `tagfilter_argument_resolutions_total{outcome="numeric",plugin="taxonomy_index_tid"} 1`)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}
