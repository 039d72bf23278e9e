/*
Package interp implements statement recognition and evaluation for the
line interpreter. An Interpreter owns a symbol table and processes one
line at a time, it never terminates the process itself: every failure is
returned as *Error and the caller decides whether the session goes on.
*/
package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nspcc-dev/lineinterp/pkg/symbol"
	"go.uber.org/zap"
)

// Input provides values for scanf statements.
type Input interface {
	// ReadLine shows the prompt and blocks until a line is entered.
	ReadLine(prompt string) (string, error)
}

// Interpreter executes statements against its symbol table.
type Interpreter struct {
	table *symbol.Table
	in    Input
	out   io.Writer
	log   *zap.Logger
}

// New creates an Interpreter with the given table, scanf input and print
// output. log can be nil.
func New(tbl *symbol.Table, in Input, out io.Writer, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{
		table: tbl,
		in:    in,
		out:   out,
		log:   log,
	}
}

// Table returns the symbol table used by the interpreter.
func (i *Interpreter) Table() *symbol.Table {
	return i.table
}

// ProcessLine executes a single statement. Blank lines are ignored. If an
// error is returned the table is left as it was before the call.
func (i *Interpreter) ProcessLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	st, r, ok := classify(line)
	if !ok {
		return i.fail(st, line, newError(InvalidSyntax, ""))
	}
	if err := r.exec(i, st); err != nil {
		return i.fail(st, line, err)
	}
	statementsProcessed.WithLabelValues(st.Kind.String()).Inc()
	variablesDeclared.Set(float64(i.table.Len()))
	i.log.Debug("statement processed",
		zap.Stringer("kind", st.Kind),
		zap.String("name", st.Name))
	return nil
}

func (i *Interpreter) fail(st Statement, line string, err error) error {
	var e *Error
	kind := "output"
	if errors.As(err, &e) {
		kind = e.Kind.String()
		e.Line = line
	}
	statementErrors.WithLabelValues(kind).Inc()
	i.log.Debug("statement failed",
		zap.String("line", line),
		zap.String("name", st.Name),
		zap.Error(err))
	return err
}

func (i *Interpreter) checkUndeclared(name string) error {
	if _, ok := i.table.Find(name); ok {
		return newError(AlreadyDeclared, name)
	}
	return nil
}

func (i *Interpreter) declare(name string, kind symbol.Kind, initial *symbol.Value) error {
	err := i.table.Declare(name, kind, initial)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, symbol.ErrAlreadyDeclared):
		return newError(AlreadyDeclared, name)
	case errors.Is(err, symbol.ErrCapacityExceeded):
		return &Error{Kind: CapacityExceeded, Name: name, Limit: i.table.Limit()}
	default:
		return err
	}
}

func (i *Interpreter) execIntDeclare(st Statement) error {
	if err := i.checkUndeclared(st.Name); err != nil {
		return err
	}
	if st.Kind == IntDeclare {
		return i.declare(st.Name, symbol.Int, nil)
	}
	n, err := evalArithmetic(i.table, st.Expr)
	if err != nil {
		return err
	}
	v := symbol.IntValue(n)
	return i.declare(st.Name, symbol.Int, &v)
}

func (i *Interpreter) execStringDeclare(st Statement) error {
	if err := i.checkUndeclared(st.Name); err != nil {
		return err
	}
	var v symbol.Value
	switch st.Kind {
	case StringDeclare:
		return i.declare(st.Name, symbol.String, nil)
	case StringDeclareLiteral:
		v = symbol.StringValue(st.Expr)
	default:
		s, err := evalConcat(i.table, st.Expr)
		if err != nil {
			return err
		}
		v = symbol.StringValue(s)
	}
	return i.declare(st.Name, symbol.String, &v)
}

func (i *Interpreter) execAssign(st Statement) error {
	idx, ok := i.table.Find(st.Name)
	if !ok {
		return newError(UndefinedVariable, st.Name)
	}
	var v symbol.Value
	switch i.table.Get(idx).Kind {
	case symbol.Int:
		n, err := evalArithmetic(i.table, st.Expr)
		if err != nil {
			return err
		}
		v = symbol.IntValue(n)
	default:
		s, err := evalConcat(i.table, st.Expr)
		if err != nil {
			return err
		}
		v = symbol.StringValue(s)
	}
	return i.table.Set(idx, v)
}

func (i *Interpreter) execPrint(st Statement) error {
	v, ok := i.table.Lookup(st.Name)
	if !ok {
		return newError(UndefinedVariable, st.Name)
	}
	val, init := v.Value()
	if !init {
		return newError(Uninitialized, st.Name)
	}
	_, err := fmt.Fprintln(i.out, val.String())
	return err
}

func (i *Interpreter) execScan(st Statement) error {
	idx, ok := i.table.Find(st.Name)
	if !ok {
		return newError(UndefinedVariable, st.Name)
	}
	if i.in == nil {
		return &Error{Kind: InvalidInput, Name: st.Name, cause: errors.New("no input available")}
	}
	raw, err := i.in.ReadLine(fmt.Sprintf("Enter value for %s: ", st.Name))
	if err != nil && !(errors.Is(err, io.EOF) && raw != "") {
		return &Error{Kind: InvalidInput, Name: st.Name, cause: err}
	}
	text := strings.TrimSpace(raw)
	var v symbol.Value
	if i.table.Get(idx).Kind == symbol.Int {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return &Error{Kind: InvalidInput, Name: st.Name, Text: text}
		}
		v = symbol.IntValue(n)
	} else {
		v = symbol.StringValue(text)
	}
	return i.table.Set(idx, v)
}
