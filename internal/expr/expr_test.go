package expr

import (
	"testing"

	"github.com/maxmcd/calc/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		expression string
		want       string
	}{
		{"3+4×2", "3 4 2 × +"},
		{"8-3-2", "8 3 - 2 -"},
		{"7", "7"},
		{"1.5+2.5", "1.5 2.5 +"},
		{"2×3+4", "2 3 × 4 +"},
		{"8÷4÷2", "8 4 ÷ 2 ÷"},
		{"1+2×3-4÷2", "1 2 3 × + 4 2 ÷ -"},
		{"10-2×3×4+1", "10 2 3 × 4 × - 1 +"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			require.Equal(t, tt.want, Convert(tt.expression).String())
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		expression string
		want       float64
	}{
		{"3+4×2", 11},
		{"8-3-2", 3},
		{"1.5+2.5", 4},
		{"7", 7},
		{"8÷4÷2", 1},
		{"2-5", -3},
		{"1+2×3-4÷2", 5},
		{"0.1+0.2", 0.30000000000000004},
		{"9÷2", 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := Eval(tt.expression)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			got, err = Evaluate(Convert(tt.expression))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_divisionByZero(t *testing.T) {
	for _, expression := range []string{"5÷0", "1+5÷0", "5÷0.0×3", "3÷2-1÷0"} {
		t.Run(expression, func(t *testing.T) {
			got, err := Evaluate(Convert(expression))
			require.Equal(t, errs.ErrDivisionByZero, err)
			require.Zero(t, got)
		})
	}
}

func TestEvaluate_malformed(t *testing.T) {
	for _, expression := range []string{"", "3+", "+", "3+4×"} {
		t.Run(expression, func(t *testing.T) {
			_, err := Evaluate(Convert(expression))
			require.True(t, errors.Is(err, errs.ErrMalformedExpression{}), err)
		})
	}
	_, err := Evaluate(Postfix{NumberToken("1", 1), NumberToken("2", 2)})
	require.True(t, errors.Is(err, errs.ErrMalformedExpression{}), err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		expression string
		wantErr    bool
	}{
		{"7", false},
		{"3+4×2", false},
		{"", true},
		{"abc", true},
		{"+3", true},
		{"3+", true},
		{"3++4", true},
		{"3 4", true},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			err := Validate(Tokenize(tt.expression))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.ErrMalformedExpression{}))

			_, err = Eval(tt.expression)
			require.Error(t, err)
		})
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{4, -1, "4"},
		{0.5, -1, "0.5"},
		{0.30000000000000004, -1, "0.30000000000000004"},
		{0.30000000000000004, 10, "0.3"},
		{-3, -1, "-3"},
		{2.0 / 3, 3, "0.667"},
		{1.5, 0, "2"},
		{-0.0001, 2, "0"},
		{1e21, -1, "1000000000000000000000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatResult(tt.v, tt.precision))
	}
}
