package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dannykalklus-wq/invoice-app/internal/numeric"
)

func TestCoerce(t *testing.T) {
	type testCase struct {
		name  string
		input any
		want  float64
	}

	tests := []testCase{
		{name: "Float", input: 12.5, want: 12.5},
		{name: "Int", input: 42, want: 42},
		{name: "Int64", input: int64(-7), want: -7},
		{name: "Uint", input: uint(3), want: 3},
		{name: "NaN", input: math.NaN(), want: 0},
		{name: "PosInf", input: math.Inf(1), want: 0},
		{name: "NegInf", input: math.Inf(-1), want: 0},
		{name: "PlainString", input: "19.99", want: 19.99},
		{name: "ThousandsSeparators", input: "1,234.5", want: 1234.5},
		{name: "ManySeparators", input: "12,345,678.9", want: 12345678.9},
		{name: "NegativeString", input: "-588.74", want: -588.74},
		{name: "Garbage", input: "abc", want: 0},
		{name: "Empty", input: "", want: 0},
		{name: "Whitespace", input: "   ", want: 0},
		{name: "Nil", input: nil, want: 0},
		{name: "Bool", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, numeric.Coerce(tt.input), 1e-9)
		})
	}
}

func TestCoerce_Idempotent(t *testing.T) {
	inputs := []any{12.5, "1,234.5", "abc", math.NaN(), nil, -3, "0.001"}

	for _, in := range inputs {
		once := numeric.Coerce(in)
		assert.Equal(t, once, numeric.Coerce(once))
	}
}

func TestParse(t *testing.T) {
	f, ok := numeric.Parse("2,500.25")
	assert.True(t, ok)
	assert.InDelta(t, 2500.25, f, 1e-9)

	f, ok = numeric.Parse("not a number")
	assert.False(t, ok)
	assert.Zero(t, f)

	f, ok = numeric.Parse("")
	assert.False(t, ok)
	assert.Zero(t, f)
}
