// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/pkg/pagination"
)

type viewResponse struct {
	Data struct {
		View  string `json:"view"`
		Title string `json:"title"`
		Items []struct {
			ID int `json:"id"`
		} `json:"items"`
	} `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHandler_ExecuteView(t *testing.T) {
	h := newHarness(t)
	handler := views.NewHandler(h.catalog, h.executor).Routes()

	recorder := serve(t, handler, "/tagged/bunny-wabbit")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "MISS", recorder.Header().Get("X-Cache"))

	var body viewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "tagged", body.Data.View)
	assert.Equal(t, "Tagged Bunny Wabbit", body.Data.Title)
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, 2, body.Data.Items[0].ID)
	assert.Equal(t, 2, body.Meta.Total)
	assert.Equal(t, 10, body.Meta.Limit)

	recorder = serve(t, handler, "/tagged/17")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "HIT", recorder.Header().Get("X-Cache"))
}

func TestHandler_Statuses(t *testing.T) {
	h := newHarness(t)
	handler := views.NewHandler(h.catalog, h.executor).Routes()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/tagged", http.StatusOK},
		{"/tagged/all", http.StatusOK},
		{"/tagged/nonexistent-slug", http.StatusNotFound},
		{"/strict", http.StatusNotFound},
		{"/private", http.StatusForbidden},
		{"/missing-view/17", http.StatusNotFound},
		{"/by-term/carrots/news", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(t, handler, tt.path).Code)
		})
	}
}

func TestHandler_Paging(t *testing.T) {
	h := newHarness(t)
	handler := views.NewHandler(h.catalog, h.executor).Routes()

	recorder := serve(t, handler, "/tagged/all?page=2&limit=3")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body viewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 1, body.Data.Items[0].ID)
	assert.Equal(t, 4, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestHandler_PercentEncodedSlug(t *testing.T) {
	h := newHarness(t)
	handler := views.NewHandler(h.catalog, h.executor).Routes()

	recorder := serve(t, handler, "/by-term/bunny%2Dwabbit")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body viewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Bunny Wabbit in", body.Data.Title)
}
