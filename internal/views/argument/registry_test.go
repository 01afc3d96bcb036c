// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/views/argument"
)

func TestDefaultRegistry(t *testing.T) {
	registry := argument.DefaultRegistry()

	assert.Equal(t, []string{"taxonomy_index_tid", "taxonomy_index_tid_slug"}, registry.IDs())

	handler, err := registry.New(argument.PluginTaxonomyIndexTidSlug, argument.Dependencies{Terms: newFakeTerms()}, argument.Options{})
	require.NoError(t, err)
	assert.Equal(t, argument.PluginTaxonomyIndexTidSlug, handler.PluginID())
	assert.IsType(t, &argument.SlugResolvingHandler{}, handler)

	handler, err = registry.New(argument.PluginTaxonomyIndexTid, argument.Dependencies{Terms: newFakeTerms()}, argument.Options{})
	require.NoError(t, err)
	assert.Equal(t, argument.PluginTaxonomyIndexTid, handler.PluginID())
}

func TestRegistry_Errors(t *testing.T) {
	registry := argument.NewRegistry()

	_, err := registry.New("missing", argument.Dependencies{}, argument.Options{})
	assert.Error(t, err)

	factory := func(deps argument.Dependencies, options argument.Options) (argument.Handler, error) {
		return argument.NewTaxonomyIndexTid("custom", deps, options)
	}
	require.NoError(t, registry.Register("custom", factory))
	assert.True(t, registry.Has("custom"))
	assert.Error(t, registry.Register("custom", factory))
	assert.Panics(t, func() { registry.MustRegister("custom", factory) })

	_, err = registry.New("custom", argument.Dependencies{}, argument.Options{Validator: "unknown"})
	assert.Error(t, err)
}
