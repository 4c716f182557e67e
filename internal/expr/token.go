package expr

import (
	"strings"
)

type Kind int

const (
	Number Kind = iota
	Operator
)

func (k Kind) String() string {
	if k == Operator {
		return "operator"
	}
	return "number"
}

type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

// Canonical operator glyphs. These are the only operator characters the
// tokenizer recognizes, input aliases are normalized before reaching it.
const (
	AddSymbol      = "+"
	SubtractSymbol = "-"
	MultiplySymbol = "×"
	DivideSymbol   = "÷"
)

var symbols = [...]string{
	Add:      AddSymbol,
	Subtract: SubtractSymbol,
	Multiply: MultiplySymbol,
	Divide:   DivideSymbol,
}

var precedence = [...]int{
	Add:      1,
	Subtract: 1,
	Multiply: 2,
	Divide:   2,
}

func (o Op) Symbol() string  { return symbols[o] }
func (o Op) String() string  { return symbols[o] }
func (o Op) Precedence() int { return precedence[o] }

// OpFromSymbol returns the operator for a canonical glyph.
func OpFromSymbol(s string) (Op, bool) {
	for op, sym := range symbols {
		if sym == s {
			return Op(op), true
		}
	}
	return 0, false
}

// IsOperatorSymbol reports whether s is one of + - × ÷.
func IsOperatorSymbol(s string) bool {
	_, ok := OpFromSymbol(s)
	return ok
}

// Token is either a Number, carrying its parsed value and the digits it was
// read from, or an Operator.
type Token struct {
	Kind  Kind
	Op    Op
	Value float64
	Text  string
}

func NumberToken(text string, value float64) Token {
	return Token{Kind: Number, Value: value, Text: text}
}

func OperatorToken(op Op) Token {
	return Token{Kind: Operator, Op: op, Text: op.Symbol()}
}

func (t Token) String() string { return t.Text }

// Postfix is a token sequence in reverse polish order.
type Postfix []Token

func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
