package expr

import (
	"fmt"

	"github.com/maxmcd/calc/internal/errs"
)

// Validate checks that a token stream is non-empty, alternates between
// numbers and operators, and starts and ends with a number. Any stream that
// passes converts to a postfix sequence with exactly one more number than
// operators.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return errs.ErrMalformedExpression{Reason: "empty expression"}
	}
	for i, tok := range tokens {
		want := Number
		if i%2 == 1 {
			want = Operator
		}
		if tok.Kind != want {
			return errs.ErrMalformedExpression{
				Reason: fmt.Sprintf("expected %s at position %d, found %q", want, i, tok.Text),
			}
		}
	}
	if last := tokens[len(tokens)-1]; last.Kind != Number {
		return errs.ErrMalformedExpression{
			Reason: fmt.Sprintf("expression ends with operator %q", last.Text),
		}
	}
	return nil
}
