package lineitem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/internal/domain/lineitem"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		current int
		raw     string
		want    int
	}{
		{1, "5", 5},
		{1, "  7", 7},
		{1, "12abc", 12},
		{3, "abc", 1},
		{3, "", 1},
		{3, "0", 1},
		{3, "-2", 3},
		{4, "+2", 2},
		{0, "-9", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lineitem.ParseQuantity(tc.current, tc.raw),
			"ParseQuantity(%d, %q)", tc.current, tc.raw)
	}
}

func TestIncrementDecrement(t *testing.T) {
	assert.Equal(t, 2, lineitem.Increment(1))
	assert.Equal(t, 2, lineitem.Increment(0), "una cantidad inválida se normaliza antes de sumar")
	assert.Equal(t, 1, lineitem.Decrement(2))
	assert.Equal(t, 1, lineitem.Decrement(1), "no baja de 1")
	assert.Equal(t, 1, lineitem.Decrement(-5))
}

func TestIsValid(t *testing.T) {
	assert.True(t, lineitem.IsValid(1))
	assert.False(t, lineitem.IsValid(0))
}
