// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/views"
	"github.com/taibuivan/tagfilter/internal/views/argument"
)

const testDefinitions = `
views:
  - name: tagged
    title: "Tagged %1"
    published_only: true
    cache:
      type: time
      ttl: 2m
    arguments:
      - id: term
        plugin: taxonomy_index_tid_slug
        options:
          vocabularies: [tags]
          validator: taxonomy_term

  - name: by-term
    title: "%1 in %2"
    content_types: [article, page]
    sort: oldest
    limit: 2
    arguments:
      - id: term
        plugin: taxonomy_index_tid_slug
        options:
          fail_action: empty
      - id: category
        plugin: taxonomy_index_tid_slug
        options:
          vocabularies: [categories]
          default_action: ignore
          fail_action: empty

  - name: strict
    title: "Strict %1"
    arguments:
      - id: term
        plugin: taxonomy_index_tid
        options:
          validator: taxonomy_term
          default_action: not_found

  - name: fallback
    title: "Fallback %1"
    arguments:
      - id: term
        plugin: taxonomy_index_tid_slug
        options:
          validator: taxonomy_term
          default_action: default
          default_argument: hares
          fail_action: default

  - name: private
    title: "Private"
    arguments:
      - id: term
        plugin: taxonomy_index_tid_slug
        options:
          default_action: access_denied
`

func TestParse(t *testing.T) {
	catalog, err := views.Parse([]byte(testDefinitions), argument.DefaultRegistry())
	require.NoError(t, err)

	names := make([]string, 0)
	for _, definition := range catalog.List() {
		names = append(names, definition.Name)
	}
	assert.Equal(t, []string{"by-term", "fallback", "private", "strict", "tagged"}, names)

	tagged, err := catalog.Get("tagged")
	require.NoError(t, err)
	assert.Equal(t, views.CacheTime, tagged.Cache.Type)
	assert.Equal(t, 2*time.Minute, tagged.Cache.TTL)
	assert.Equal(t, 10, tagged.Limit)
	assert.Equal(t, "newest", tagged.Sort)

	// Argument options have defaults applied at load time
	options := tagged.Arguments[0].Options
	assert.Equal(t, "all", options.Exception.Value)
	assert.Equal(t, argument.ActionNotFound, options.FailAction)
	assert.Equal(t, []string{"tags"}, options.Vocabularies)

	strict, err := catalog.Get("strict")
	require.NoError(t, err)
	assert.Equal(t, views.CacheNone, strict.Cache.Type)

	_, err = catalog.Get("missing")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad_yaml":       "views: [",
		"bad_name":       "views:\n  - name: Not A Slug\n    title: x\n",
		"missing_title":  "views:\n  - name: a\n",
		"unknown_plugin": "views:\n  - name: a\n    title: x\n    arguments:\n      - {id: t, plugin: nope}\n",
		"bad_option":     "views:\n  - name: a\n    title: x\n    arguments:\n      - {id: t, plugin: taxonomy_index_tid, options: {fail_action: explode}}\n",
		"duplicate_arg":  "views:\n  - name: a\n    title: x\n    arguments:\n      - {id: t, plugin: taxonomy_index_tid}\n      - {id: t, plugin: taxonomy_index_tid}\n",
		"duplicate_view": "views:\n  - {name: a, title: x}\n  - {name: a, title: y}\n",
		"bad_cache":      "views:\n  - {name: a, title: x, cache: {type: forever}}\n",
		"limit_too_big":  "views:\n  - {name: a, title: x, limit: 1000}\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := views.Parse([]byte(data), argument.DefaultRegistry())
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinitions), 0o600))

	catalog, err := views.LoadFile(path, argument.DefaultRegistry())
	require.NoError(t, err)
	assert.Len(t, catalog.List(), 5)

	_, err = views.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), argument.DefaultRegistry())
	assert.Error(t, err)
}
