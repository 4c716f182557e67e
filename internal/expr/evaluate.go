package expr

import (
	"fmt"

	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/logger"
)

// Evaluate runs a postfix sequence on a fresh value stack. Division by zero
// stops evaluation immediately and returns errs.ErrDivisionByZero with no
// result. A sequence that underflows the stack or leaves more than one value
// behind returns errs.ErrMalformedExpression.
func Evaluate(postfix Postfix) (float64, error) {
	var stack valueStack
	for i, tok := range postfix {
		if tok.Kind == Number {
			stack.Push(tok.Value)
			continue
		}
		right, okRight := stack.Pop()
		left, okLeft := stack.Pop()
		if !okRight || !okLeft {
			return 0, errs.ErrMalformedExpression{
				Reason: fmt.Sprintf("operator %s at position %d is missing an operand", tok.Op, i),
			}
		}
		switch tok.Op {
		case Add:
			stack.Push(left + right)
		case Subtract:
			stack.Push(left - right)
		case Multiply:
			stack.Push(left * right)
		case Divide:
			if right == 0 {
				logger.Debugw("division by zero", "postfix", postfix.String(), "position", i)
				return 0, errs.ErrDivisionByZero
			}
			stack.Push(left / right)
		}
	}
	if stack.Len() != 1 {
		return 0, errs.ErrMalformedExpression{
			Reason: fmt.Sprintf("expected one value after evaluation, found %d", stack.Len()),
		}
	}
	result, _ := stack.Pop()
	logger.Debugw("evaluated", "postfix", postfix.String(), "result", result)
	return result, nil
}

// Eval validates, converts and evaluates an infix expression.
func Eval(expression string) (float64, error) {
	tokens := Tokenize(expression)
	if err := Validate(tokens); err != nil {
		return 0, err
	}
	return Evaluate(ConvertTokens(tokens))
}
