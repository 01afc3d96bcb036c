// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/platform/dberr"
	"github.com/taibuivan/tagfilter/internal/platform/sqlite/sqlitetest"
	"github.com/taibuivan/tagfilter/internal/taxonomy"
)

func TestSQLiteRepository_FindIDsBySlug(t *testing.T) {
	repository := taxonomy.NewSQLiteRepository(sqlitetest.NewDB(t))
	ctx := context.Background()

	tests := []struct {
		name         string
		slug         string
		vocabularies []string
		want         []int
	}{
		{"single_match", "bunny-wabbit", nil, []int{17}},
		{"no_match", "nonexistent-slug", nil, []int{}},
		{"shared_slug_any_vocabulary", "carrots", nil, []int{1, 21}},
		{"shared_slug_restricted", "carrots", []string{"categories"}, []int{21}},
		{"restricted_excludes_match", "bunny-wabbit", []string{"categories"}, []int{}},
		{"multi_vocabulary_allow_list", "news", []string{"tags", "categories"}, []int{20}},
		{"exact_case", "Bunny-Wabbit", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := repository.FindIDsBySlug(ctx, tt.slug, tt.vocabularies)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSQLiteRepository_GetTermByID(t *testing.T) {
	repository := taxonomy.NewSQLiteRepository(sqlitetest.NewDB(t))
	ctx := context.Background()

	term, err := repository.GetTermByID(ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, "Bunny Wabbit", term.Name)
	assert.Equal(t, "tags", term.VocabularyID)
	require.NotNil(t, term.Slug)
	assert.Equal(t, "bunny-wabbit", *term.Slug)
	require.NotNil(t, term.Description)

	_, err = repository.GetTermByID(ctx, 999)
	assert.True(t, dberr.IsNotFound(err))
}

func TestSQLiteRepository_Vocabularies(t *testing.T) {
	repository := taxonomy.NewSQLiteRepository(sqlitetest.NewDB(t))
	ctx := context.Background()

	vocabularies, err := repository.ListVocabularies(ctx)
	require.NoError(t, err)
	require.Len(t, vocabularies, 2)
	assert.Equal(t, "tags", vocabularies[0].ID)
	assert.Nil(t, vocabularies[1].Description)

	terms, err := repository.ListTerms(ctx, "tags")
	require.NoError(t, err)

	names := make([]string, 0, len(terms))
	for _, term := range terms {
		names = append(names, term.Name)
	}
	// Weight first, then name
	assert.Equal(t, []string{"Bunny Wabbit", "Carrots", "Hares", "Meaning"}, names)

	_, err = repository.GetVocabulary(ctx, "missing")
	assert.True(t, dberr.IsNotFound(err))
}

func TestSQLiteRepository_FindBySlug(t *testing.T) {
	repository := taxonomy.NewSQLiteRepository(sqlitetest.NewDB(t))

	terms, err := repository.FindBySlug(context.Background(), "carrots", nil)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, 1, terms[0].ID)
	assert.Equal(t, "categories", terms[1].VocabularyID)
}
