package interp

import (
	"fmt"

	"github.com/nspcc-dev/lineinterp/pkg/symbol"
)

// ErrorKind classifies interpreter errors.
type ErrorKind byte

// Error kinds.
const (
	AlreadyDeclared ErrorKind = iota + 1
	UndefinedVariable
	TypeMismatch
	Uninitialized
	DivisionByZero
	InvalidSyntax
	CapacityExceeded
	InvalidInput
)

var errorKindNames = map[ErrorKind]string{
	AlreadyDeclared:   "already_declared",
	UndefinedVariable: "undefined_variable",
	TypeMismatch:      "type_mismatch",
	Uninitialized:     "uninitialized",
	DivisionByZero:    "division_by_zero",
	InvalidSyntax:     "invalid_syntax",
	CapacityExceeded:  "capacity_exceeded",
	InvalidInput:      "invalid_input",
}

// String implements the fmt.Stringer interface.
func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(k))
}

// Error is returned for any statement that can't be executed. The table is
// left untouched when it happens.
type Error struct {
	Kind ErrorKind
	// Name is the variable (or operand token) the error refers to.
	Name string
	// Expected is the required kind for TypeMismatch.
	Expected symbol.Kind
	// Text carries the offending line, operator, input or detail.
	Text string
	// Limit is the table capacity for CapacityExceeded.
	Limit int
	// Line is the statement that failed.
	Line string

	cause error
}

// Sentinel errors to be used with errors.Is, they match any *Error of the
// same kind.
var (
	ErrAlreadyDeclared   = &Error{Kind: AlreadyDeclared}
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable}
	ErrTypeMismatch      = &Error{Kind: TypeMismatch}
	ErrUninitialized     = &Error{Kind: Uninitialized}
	ErrDivisionByZero    = &Error{Kind: DivisionByZero}
	ErrInvalidSyntax     = &Error{Kind: InvalidSyntax}
	ErrCapacityExceeded  = &Error{Kind: CapacityExceeded}
	ErrInvalidInput      = &Error{Kind: InvalidInput}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case AlreadyDeclared:
		return fmt.Sprintf("Variable '%s' already declared", e.Name)
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable '%s'", e.Name)
	case TypeMismatch:
		if e.Text != "" {
			return fmt.Sprintf("Operator '%s' can't be applied to %s operands", e.Text, e.Expected)
		}
		if e.Expected == symbol.Int {
			return fmt.Sprintf("Cannot perform arithmetic on non-integer operand '%s'", e.Name)
		}
		return fmt.Sprintf("Cannot concatenate non-string operand '%s'", e.Name)
	case Uninitialized:
		return fmt.Sprintf("Uninitialized variable '%s'", e.Name)
	case DivisionByZero:
		return "Division by zero"
	case InvalidSyntax:
		if e.Text != "" {
			return "Invalid syntax: " + e.Text
		}
		return "Invalid syntax"
	case CapacityExceeded:
		return fmt.Sprintf("Too many variables: limit of %d reached declaring '%s'", e.Limit, e.Name)
	case InvalidInput:
		if e.cause != nil {
			return fmt.Sprintf("Failed to read value for '%s': %s", e.Name, e.cause)
		}
		return fmt.Sprintf("Invalid integer value '%s' for '%s'", e.Text, e.Name)
	default:
		return e.Kind.String()
	}
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Unwrap returns the underlying cause if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

func syntaxError(format string, args ...any) *Error {
	return &Error{Kind: InvalidSyntax, Text: fmt.Sprintf(format, args...)}
}

func typeError(name string, expected symbol.Kind) *Error {
	return &Error{Kind: TypeMismatch, Name: name, Expected: expected}
}
