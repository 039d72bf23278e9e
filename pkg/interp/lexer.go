package interp

type tokenType byte

const (
	termToken tokenType = iota
	opToken
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isWord(c byte) bool { return isDigit(c) || isLetter(c) || c == '_' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f' }

func isOperator(c byte) bool { return c == '+' || c == '-' || c == '*' || c == '/' }

// tokenize splits an expression into terms and operators and checks they
// alternate as term (op term)*.
func tokenize(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isSpace(c):
			i++
		case isWord(c):
			start := i
			for i < len(expr) && isWord(expr[i]) {
				i++
			}
			if len(toks) > 0 && toks[len(toks)-1].typ == termToken {
				return nil, syntaxError("missing operator before '%s'", expr[start:i])
			}
			toks = append(toks, token{typ: termToken, text: expr[start:i], pos: start})
		case isOperator(c):
			if len(toks) == 0 || toks[len(toks)-1].typ == opToken {
				return nil, syntaxError("missing operand before '%c' at position %d", c, i)
			}
			toks = append(toks, token{typ: opToken, text: string(c), pos: i})
			i++
		default:
			return nil, syntaxError("unexpected character %q at position %d", c, i)
		}
	}
	if len(toks) == 0 {
		return nil, syntaxError("empty expression")
	}
	if last := toks[len(toks)-1]; last.typ == opToken {
		return nil, syntaxError("missing operand after '%s'", last.text)
	}
	return toks, nil
}
