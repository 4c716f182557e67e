// Package calculator accumulates keystrokes into an expression and hands it to
// the expression evaluator when equals is pressed. A State holds everything a
// single calculator session needs, there is no package level state.
package calculator

import (
	"strings"
	"unicode/utf8"

	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/expr"
	"github.com/maxmcd/calc/internal/logger"
	"github.com/pkg/errors"
)

type State struct {
	// Expression is the text of the expression display.
	Expression string
	// Result is the text of the result display, empty until an evaluation
	// succeeds.
	Result string
	// Complete is set after a successful evaluation, the next keystroke
	// resets the expression before it is processed.
	Complete bool
	// Notice is a user facing message left by the last keystroke, currently
	// only the division by zero message.
	Notice string

	// Precision is passed to expr.FormatResult when rendering a result.
	Precision int

	// value is the unrounded result, chaining continues from it rather than
	// from the rounded display text.
	value float64
}

func New() *State {
	return &State{Precision: -1}
}

func (s *State) Display() (expression, result string) {
	return s.Expression, s.Result
}

func (s *State) lastInput() string {
	r, size := utf8.DecodeLastRuneInString(s.Expression)
	if size == 0 {
		return ""
	}
	return string(r)
}

func (s *State) endsWithOperator() bool { return expr.IsOperatorSymbol(s.lastInput()) }

// reset runs before the first keystroke that follows an evaluation. An
// operator continues the calculation from the previous result.
func (s *State) reset(continueFromResult bool) {
	if continueFromResult {
		s.Expression = expr.FormatResult(s.value, -1)
	} else {
		s.Expression = ""
	}
	s.Result = ""
	s.Complete = false
}

func (s *State) clear() {
	s.Expression = ""
	s.Result = ""
	s.Complete = false
}

// Press applies a single keystroke. The returned error is only ever from
// evaluation: errs.ErrDivisionByZero, after which the state has been cleared
// and Notice is set, or errs.ErrMalformedExpression, after which the state is
// left untouched.
func (s *State) Press(key Key) error {
	s.Notice = ""
	if key.Kind == Operator && (s.endsWithOperator() || s.lastInput() == ".") {
		return nil
	}
	if s.Complete {
		s.reset(key.Kind == Operator)
	}

	switch key.Kind {
	case Equals:
		if s.Expression == "" || s.endsWithOperator() {
			return nil
		}
		return s.evaluate()
	case Clear:
		s.clear()
	case Backspace:
		_, size := utf8.DecodeLastRuneInString(s.Expression)
		s.Expression = s.Expression[:len(s.Expression)-size]
	case Dot:
		if s.Expression != "" && !strings.HasSuffix(s.Expression, ".") {
			s.Expression += key.Text
		}
	default:
		if s.Expression == "" && (key.Kind == Operator || key.Text == "0") {
			return nil
		}
		s.Expression += key.Text
	}
	return nil
}

func (s *State) evaluate() error {
	value, err := expr.Eval(s.Expression)
	if errors.Is(err, errs.ErrDivisionByZero) {
		logger.Debugw("division by zero, clearing", "expression", s.Expression)
		s.clear()
		s.Notice = errs.DivisionByZeroMessage
		return err
	}
	if err != nil {
		return errors.Wrapf(err, "evaluating %q", s.Expression)
	}
	s.value = value
	s.Result = expr.FormatResult(value, s.Precision)
	s.Complete = true
	logger.Debugw("evaluated", "expression", s.Expression, "result", s.Result)
	return nil
}

// PressString classifies a key with ParseKey and presses it. Unknown keys
// are ignored.
func (s *State) PressString(k string) error {
	key, ok := ParseKey(k)
	if !ok {
		return nil
	}
	return s.Press(key)
}

// Feed presses every key in order. Processing continues past evaluation
// errors, the first one is returned.
func (s *State) Feed(keys []string) (err error) {
	for _, k := range keys {
		if e := s.PressString(k); e != nil && err == nil {
			err = e
		}
	}
	return err
}
