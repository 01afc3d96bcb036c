// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformredis "github.com/taibuivan/tagfilter/internal/platform/redis"
	"github.com/taibuivan/tagfilter/internal/views"
)

func TestNopCache(t *testing.T) {
	cache := views.NopCache{}

	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))
	_, ok, err := cache.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestRedisCache runs against a live server when TEST_REDIS_URL is set.
func TestRedisCache(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := platformredis.NewClient(ctx, redisURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := views.NewRedisCache(client)
	key := "views:result:test:" + t.Name()
	t.Cleanup(func() { client.Del(ctx, key) })

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"view":"test"}`), time.Minute))

	payload, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"view":"test"}`, string(payload))
}
