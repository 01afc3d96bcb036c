// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tagfilter/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "17"}, slice.Map([]int{1, 17}, strconv.Itoa))
	assert.Equal(t, []string{}, slice.Map([]int{}, strconv.Itoa))
	assert.Nil(t, slice.Map([]int(nil), strconv.Itoa))
}

func TestFilter(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	assert.Equal(t, []int{1, 17}, slice.Filter([]int{0, 1, -3, 17}, positive))
	assert.Equal(t, []int{}, slice.Filter([]int{-1}, positive))
	assert.Nil(t, slice.Filter([]int(nil), positive))
}
