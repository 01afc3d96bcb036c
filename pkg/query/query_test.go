// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tagfilter/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"tags", "categories"}, query.StringSlice("tags, categories"))
	assert.Equal(t, []string{"tags"}, query.StringSlice(" tags ,,"))
	assert.Nil(t, query.StringSlice(""))
	assert.Nil(t, query.StringSlice(" , "))
}
