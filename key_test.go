package memoize_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/on-the-ground/memoize"
	"github.com/stretchr/testify/assert"
)

type userID int

type blob []byte

type point struct {
	X, Y int
}

func (p point) String() string {
	return fmt.Sprintf("(%d %d)", p.X, p.Y)
}

func TestKey(t *testing.T) {
	five := 5
	var nilPtr *int

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"numbers", []any{1, 2, 3}, "1,2,3"},
		{"numeric string collides", []any{"1", 2, 3}, "1,2,3"},
		{"booleans", []any{true, false, true}, "true,false,true"},
		{"mixed", []any{1, "2", true}, "1,2,true"},
		{"nil", []any{nil, "a"}, ",a"},
		{"floats", []any{1.5, float64(1), float32(0.25)}, "1.5,1,0.25"},
		{"non finite", []any{math.NaN(), math.Inf(1), math.Inf(-1)}, "NaN,Infinity,-Infinity"},
		{"unsigned", []any{uint8(7), uint64(math.MaxUint64)}, "7,18446744073709551615"},
		{"slice flattens", []any{[]int{1, 2}, 3}, "1,2,3"},
		{"array", []any{[2]string{"a", "b"}}, "a,b"},
		{"nested any", []any{[]any{nil, 1}}, ",1"},
		{"bytes", []any{[]byte("ab")}, "ab"},
		{"named bytes", []any{blob("ab"), 1}, "ab,1"},
		{"byte array", []any{[2]byte{'o', 'k'}}, "ok"},
		{"error", []any{errors.New("boom")}, "boom"},
		{"stringer", []any{point{1, 2}}, "(1 2)"},
		{"named int", []any{userID(7)}, "7"},
		{"pointer", []any{&five}, "5"},
		{"nil pointer", []any{nilPtr}, ""},
		{"struct fallback", []any{struct{ A int }{1}}, "{1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, memoize.Key(tt.args...))
		})
	}
}

func TestKey_Delimiter(t *testing.T) {
	assert.Equal(t, "a"+memoize.Delimiter+"b", memoize.Key("a", "b"))
	assert.Equal(t, memoize.Key("a,b"), memoize.Key("a", "b"))
}

func TestKey_SelfReferenceTerminates(t *testing.T) {
	var self any
	self = &self

	list := []any{nil}
	list[0] = list

	assert.NotPanics(t, func() {
		assert.Equal(t, "", memoize.KeyOf(&self))
		assert.Equal(t, "", memoize.Key(list))
	})
}
