package errs

import "fmt"

// DivisionByZeroMessage is the notice shown to the user when an expression
// divides by zero.
const DivisionByZeroMessage = "0으로 나눌 수 없습니다."

type errDivisionByZero struct{}

func (errDivisionByZero) Error() string { return "division by zero" }

// ErrDivisionByZero is returned by evaluation when the right operand of ÷ is
// zero. No partial result accompanies it.
var ErrDivisionByZero error = errDivisionByZero{}

type ErrMalformedExpression struct {
	Reason string
}

func (e ErrMalformedExpression) Error() string {
	return fmt.Sprintf("malformed expression: %s", e.Reason)
}

// Is matches any ErrMalformedExpression regardless of the reason
func (e ErrMalformedExpression) Is(err error) bool {
	_, ok := err.(ErrMalformedExpression)
	return ok
}
