// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/api"
	"github.com/taibuivan/tagfilter/internal/content"
	"github.com/taibuivan/tagfilter/internal/platform/config"
	"github.com/taibuivan/tagfilter/internal/platform/metrics"
	"github.com/taibuivan/tagfilter/internal/platform/sqlite/sqlitetest"
	"github.com/taibuivan/tagfilter/internal/taxonomy"
	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/internal/views/argument"
)

const definitions = `
views:
  - name: tagged
    title: "Tagged %1"
    arguments:
      - id: term
        plugin: taxonomy_index_tid_slug
        options:
          validator: taxonomy_term
`

func newRouter(t *testing.T, checks []api.Check) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := sqlitetest.NewDB(t)
	terms := taxonomy.NewSQLiteRepository(db)
	m := metrics.New()

	catalog, err := views.Parse([]byte(definitions), argument.DefaultRegistry())
	require.NoError(t, err)

	executor := views.NewExecutor(views.ExecutorConfig{
		Arguments: argument.Dependencies{Terms: terms, Observer: m},
		Content:   content.NewSQLiteRepository(db),
		Recorder:  m,
		Logger:    logger,
	})

	liveness, readiness := api.NewHealthHandlers(checks, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewRouter(ctx, &config.Config{Environment: "test"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Taxonomy:  taxonomy.NewHandler(taxonomy.NewService(terms, logger)),
		Views:     views.NewHandler(catalog, executor),
		Metrics:   m.Handler(),
	})
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestRouter_Routes(t *testing.T) {
	router := newRouter(t, nil)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/v1/taxonomy/vocabularies", http.StatusOK},
		{"/api/v1/taxonomy/terms/by-slug/bunny-wabbit", http.StatusOK},
		{"/api/v1/views", http.StatusOK},
		{"/api/v1/views/tagged/bunny-wabbit", http.StatusOK},
		{"/api/v1/views/tagged/nonexistent-slug", http.StatusNotFound},
		{"/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := get(router, tt.path)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_MetricsReflectResolutions(t *testing.T) {
	router := newRouter(t, nil)

	require.Equal(t, http.StatusOK, get(router, "/api/v1/views/tagged/bunny-wabbit").Code)
	require.Equal(t, http.StatusOK, get(router, "/api/v1/views/tagged/17").Code)

	body := get(router, "/metrics").Body.String()
	assert.Contains(t, body, `tagfilter_argument_resolutions_total{outcome="resolved",plugin="taxonomy_index_tid_slug"} 1`)
	assert.Contains(t, body, `tagfilter_argument_resolutions_total{outcome="numeric",plugin="taxonomy_index_tid_slug"} 1`)
	assert.Contains(t, body, `tagfilter_view_executions_total{status="ok",view="tagged"} 2`)
}

func TestReadiness_Degraded(t *testing.T) {
	router := newRouter(t, []api.Check{
		{Name: "sqlite", Probe: func(context.Context) error { return nil }},
		{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
	})

	recorder := get(router, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name string `json:"name"`
				OK   bool   `json:"ok"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 2)
	assert.True(t, body.Data.Checks[0].OK)
	assert.False(t, body.Data.Checks[1].OK)
}
