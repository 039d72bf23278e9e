package interp

import (
	"errors"
	"strconv"

	"github.com/nspcc-dev/lineinterp/pkg/symbol"
)

// evalArithmetic folds expr strictly left to right: ((0 + t0) op1 t1) op2 t2...
// There is no operator precedence, 2+3*4 is 20.
func evalArithmetic(tbl *symbol.Table, expr string) (int64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	var (
		value   int64
		pending = "+"
	)
	for _, tok := range toks {
		if tok.typ == opToken {
			pending = tok.text
			continue
		}
		operand, err := intOperand(tbl, tok.text)
		if err != nil {
			return 0, err
		}
		switch pending {
		case "+":
			value += operand
		case "-":
			value -= operand
		case "*":
			value *= operand
		case "/":
			if operand == 0 {
				return 0, newError(DivisionByZero, "")
			}
			value /= operand
		}
	}
	return value, nil
}

// intOperand resolves a term to an integer. Terms starting with a digit are
// literals, everything else is a variable name.
func intOperand(tbl *symbol.Table, term string) (int64, error) {
	if isDigit(term[0]) {
		for i := 1; i < len(term); i++ {
			if !isDigit(term[i]) {
				return 0, syntaxError("malformed integer literal '%s'", term)
			}
		}
		n, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, syntaxError("integer literal '%s' is out of range", term)
			}
			return 0, syntaxError("malformed integer literal '%s'", term)
		}
		return n, nil
	}
	v, ok := tbl.Lookup(term)
	if !ok {
		return 0, newError(UndefinedVariable, term)
	}
	if v.Kind != symbol.Int {
		return 0, typeError(term, symbol.Int)
	}
	val, init := v.Value()
	if !init {
		return 0, newError(Uninitialized, term)
	}
	return val.Int, nil
}
