package interp

import (
	"strings"

	"github.com/nspcc-dev/lineinterp/pkg/symbol"
)

// evalConcat appends string variables in order. Literals are not accepted
// here, only the declaration form allows a quoted string.
func evalConcat(tbl *symbol.Table, expr string) (string, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, tok := range toks {
		if tok.typ == opToken {
			if tok.text != "+" {
				return "", &Error{Kind: TypeMismatch, Expected: symbol.String, Text: tok.text}
			}
			continue
		}
		if isDigit(tok.text[0]) {
			return "", typeError(tok.text, symbol.String)
		}
		v, ok := tbl.Lookup(tok.text)
		if !ok {
			return "", newError(UndefinedVariable, tok.text)
		}
		if v.Kind != symbol.String {
			return "", typeError(tok.text, symbol.String)
		}
		val, init := v.Value()
		if !init {
			return "", newError(Uninitialized, tok.text)
		}
		sb.WriteString(val.Str)
	}
	return sb.String(), nil
}
