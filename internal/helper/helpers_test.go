package helper_test

import (
	"testing"

	"github.com/on-the-ground/memoize/internal/helper"
	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[int](func() (any, bool) { return 3, true })
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return "3", true })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return nil, false })
	assert.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 0, helper.IndexOf("anything", 1))

	for _, key := range []string{"", "1,2,3", "a", "b"} {
		i := helper.IndexOf(key, 8)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 8)
		assert.Equal(t, i, helper.IndexOf(key, 8)) // stable
	}
}

func TestIndexOf_ZeroPanics(t *testing.T) {
	assert.Panics(t, func() { helper.IndexOf("k", 0) })
}
