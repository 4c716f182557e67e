package calculator

import "github.com/maxmcd/calc/internal/expr"

type KeyKind int

const (
	Digit KeyKind = iota
	Dot
	Operator
	Clear
	Backspace
	Equals
)

// Key is a classified keystroke. Text holds the character that is appended
// to the expression for Digit, Dot and Operator keys, operators always use
// their canonical glyph.
type Key struct {
	Kind KeyKind
	Text string
}

var aliases = map[string]Key{
	".": {Kind: Dot, Text: "."},

	expr.AddSymbol:      {Kind: Operator, Text: expr.AddSymbol},
	expr.SubtractSymbol: {Kind: Operator, Text: expr.SubtractSymbol},
	expr.MultiplySymbol: {Kind: Operator, Text: expr.MultiplySymbol},
	expr.DivideSymbol:   {Kind: Operator, Text: expr.DivideSymbol},
	"*":                 {Kind: Operator, Text: expr.MultiplySymbol},
	"/":                 {Kind: Operator, Text: expr.DivideSymbol},

	"=":     {Kind: Equals},
	"Enter": {Kind: Equals},
	"enter": {Kind: Equals},

	"Escape": {Kind: Clear},
	"esc":    {Kind: Clear},
	"AC":     {Kind: Clear},
	"clear":  {Kind: Clear},

	"Backspace": {Kind: Backspace},
	"backspace": {Kind: Backspace},
	"〈":         {Kind: Backspace},
}

// ParseKey classifies a key name or symbol. Keys outside the accepted set
// return false and should be ignored.
func ParseKey(s string) (Key, bool) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Key{Kind: Digit, Text: s}, true
	}
	k, ok := aliases[s]
	return k, ok
}
