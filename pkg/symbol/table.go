/*
Package symbol implements the variable table used by the interpreter.
Variables are kept in declaration order and are never removed.
*/
package symbol

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind is the type tag of a variable.
type Kind byte

// Variable kinds.
const (
	Int Kind = iota
	String
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Various table errors.
var (
	ErrAlreadyDeclared  = errors.New("already declared")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrKindMismatch     = errors.New("kind mismatch")
)

// Value is a typed variable value.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	return Value{Kind: Int, Int: i}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{Kind: String, Str: s}
}

// String returns decimal representation for integers and raw text for strings.
func (v Value) String() string {
	if v.Kind == Int {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Str
}

// Variable is a single table slot.
type Variable struct {
	Name        string
	Kind        Kind
	Initialized bool
	value       Value
}

// Value returns the variable value and whether it's initialized.
func (v Variable) Value() (Value, bool) {
	return v.value, v.Initialized
}

// Table is an insertion-ordered set of variables. It's not safe for
// concurrent use, each session owns its own table.
type Table struct {
	vars  []Variable
	index map[string]int
	limit int
}

// NewTable creates an empty table. limit > 0 caps the number of variables
// that can be declared, zero or negative means no limit.
func NewTable(limit int) *Table {
	return &Table{
		index: make(map[string]int),
		limit: limit,
	}
}

// Find returns the index of the named variable.
func (t *Table) Find(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Declare adds a new variable of the given kind. If initial is not nil the
// variable is initialized with it, initial kind must match.
func (t *Table) Declare(name string, kind Kind, initial *Value) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyDeclared, name)
	}
	if t.limit > 0 && len(t.vars) >= t.limit {
		return fmt.Errorf("%w: %d variables", ErrCapacityExceeded, t.limit)
	}
	v := Variable{Name: name, Kind: kind}
	if initial != nil {
		if initial.Kind != kind {
			return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, name, kind, initial.Kind)
		}
		v.value = *initial
		v.Initialized = true
	}
	t.index[name] = len(t.vars)
	t.vars = append(t.vars, v)
	return nil
}

// Get returns a copy of the variable at index i.
func (t *Table) Get(i int) Variable {
	return t.vars[i]
}

// Lookup returns a copy of the named variable.
func (t *Table) Lookup(name string) (Variable, bool) {
	i, ok := t.index[name]
	if !ok {
		return Variable{}, false
	}
	return t.vars[i], true
}

// Set stores val into the variable at index i and marks it initialized.
// Variable kind never changes, so val must be of the same kind.
func (t *Table) Set(i int, val Value) error {
	v := &t.vars[i]
	if v.Kind != val.Kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, v.Name, v.Kind, val.Kind)
	}
	v.value = val
	v.Initialized = true
	return nil
}

// Len returns the number of declared variables.
func (t *Table) Len() int {
	return len(t.vars)
}

// Limit returns configured capacity (0 if unbounded).
func (t *Table) Limit() int {
	if t.limit < 0 {
		return 0
	}
	return t.limit
}

// Variables returns all variables in declaration order.
func (t *Table) Variables() []Variable {
	res := make([]Variable, len(t.vars))
	copy(res, t.vars)
	return res
}
