// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/tagfilter/pkg/pointer"
)

func TestTo(t *testing.T) {
	original := "bunny-wabbit"
	p := pointer.To(original)

	original = "changed"
	assert.Equal(t, "bunny-wabbit", *p)
}

func TestVal(t *testing.T) {
	assert.Equal(t, "slug", pointer.Val(pointer.To("slug")))
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, 0, pointer.Val[int](nil))
}
