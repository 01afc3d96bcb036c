// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/tagfilter/internal/platform/constants"
	"github.com/taibuivan/tagfilter/pkg/slice"
)

// ResultCache stores the listed page of a view. Keys are built from resolved
// arguments, so argument resolution always runs before a lookup.
type ResultCache interface {
	// Get returns the cached payload; ok is false on a miss.
	Get(context context.Context, key string) (payload []byte, ok bool, err error)
	Set(context context.Context, key string, payload []byte, ttl time.Duration) error
}

// NopCache never stores anything. It backs the "none" cache plugin.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// RedisCache backs the "time" cache plugin.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed [ResultCache].
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get reads a cached view result.

Parameters:
  - context: context.Context
  - key: string (see [resultKey])

Returns:
  - []byte: JSON payload
  - bool: false on a miss or expiry
  - error: Connectivity errors
*/
func (cache *RedisCache) Get(context context.Context, key string) ([]byte, bool, error) {
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_view_result_get_failed: %w", err)
	}
	return payload, true, nil
}

// Set stores payload under key for ttl.
func (cache *RedisCache) Set(context context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_view_result_set_failed: %w", err)
	}
	return nil
}

// resultKey identifies one page of a view for a set of resolved positions, e.g.
//
//	views:result:tagged:17|-:p1:l10
//
// "all" marks a position on its exception value, "-" one left without a filter.
func resultKey(view string, arguments []ArgumentResult, page, limit int) string {
	parts := make([]string, len(arguments))
	for i, argResult := range arguments {
		switch {
		case argResult.Exception:
			parts[i] = "all"
		case argResult.TermIDs == nil:
			parts[i] = "-"
		default:
			parts[i] = strings.Join(slice.Map(argResult.TermIDs, strconv.Itoa), "+")
		}
	}

	return fmt.Sprintf("%s%s:%s:p%d:l%d", constants.RedisPrefixViewResult, view, strings.Join(parts, "|"), page, limit)
}
