package expr

import (
	"strconv"
	"unicode/utf8"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Tokenize splits an expression into numbers and operators. A number is one
// or more digits optionally followed by a dot and one or more digits. Every
// other character, including a dot that isn't followed by a digit, is
// dropped.
func Tokenize(expression string) (tokens []Token) {
	for i := 0; i < len(expression); {
		if isDigit(expression[i]) {
			start := i
			for i < len(expression) && isDigit(expression[i]) {
				i++
			}
			if i+1 < len(expression) && expression[i] == '.' && isDigit(expression[i+1]) {
				i++
				for i < len(expression) && isDigit(expression[i]) {
					i++
				}
			}
			text := expression[start:i]
			// Only digits and a dot can reach here so this can't fail, outside
			// of overflow to ±Inf which ParseFloat still reports.
			value, _ := strconv.ParseFloat(text, 64)
			tokens = append(tokens, NumberToken(text, value))
			continue
		}
		r, size := utf8.DecodeRuneInString(expression[i:])
		if op, ok := OpFromSymbol(string(r)); ok {
			tokens = append(tokens, OperatorToken(op))
		}
		i += size
	}
	return tokens
}
