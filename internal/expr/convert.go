package expr

import "github.com/maxmcd/calc/internal/logger"

// Convert tokenizes an infix expression and reorders it into postfix using
// the shunting-yard algorithm. Operators of equal precedence are emitted
// left to right.
//
// Convert does no validation. An expression that is empty or ends in an
// operator produces a postfix sequence that Evaluate will reject.
func Convert(expression string) Postfix {
	return ConvertTokens(Tokenize(expression))
}

// ConvertTokens is Convert over an already tokenized expression.
func ConvertTokens(tokens []Token) Postfix {
	var hold opStack
	output := make(Postfix, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == Number {
			output = append(output, tok)
			continue
		}
		for hold.Len() > 0 && hold.Peek().Precedence() >= tok.Op.Precedence() {
			output = append(output, OperatorToken(hold.Pop()))
		}
		hold.Push(tok.Op)
	}
	for hold.Len() > 0 {
		output = append(output, OperatorToken(hold.Pop()))
	}
	logger.Debugw("converted", "postfix", output.String())
	return output
}
