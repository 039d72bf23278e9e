package interp

import (
	"fmt"
	"regexp"
)

// StatementKind is the form of a recognized statement.
type StatementKind byte

// Statement forms in matching priority order.
const (
	IntDeclareAssign StatementKind = iota
	IntDeclare
	StringDeclareLiteral
	StringDeclare
	StringDeclareConcat
	Assign
	Print
	Scan
)

var statementKindNames = [...]string{
	IntDeclareAssign:     "int_declare_assign",
	IntDeclare:           "int_declare",
	StringDeclareLiteral: "string_declare_literal",
	StringDeclare:        "string_declare",
	StringDeclareConcat:  "string_declare_concat",
	Assign:               "assign",
	Print:                "print",
	Scan:                 "scanf",
}

// String implements the fmt.Stringer interface.
func (k StatementKind) String() string {
	if int(k) < len(statementKindNames) {
		return statementKindNames[k]
	}
	return fmt.Sprintf("StatementKind(%d)", byte(k))
}

// Statement is a classified input line.
type Statement struct {
	Kind StatementKind
	// Name is the declared, assigned, printed or scanned variable.
	Name string
	// Expr is the right-hand side expression or string literal.
	Expr string
}

const ident = `([A-Za-z][A-Za-z0-9_]*)`

type rule struct {
	kind    StatementKind
	pattern *regexp.Regexp
	exec    func(*Interpreter, Statement) error
}

// rules are tried in order, several forms are prefixes of each other so
// the order matters. A string literal ends at its closing quote, anything
// after it is ignored.
var rules = []rule{
	{IntDeclareAssign, regexp.MustCompile(`^\s*int\s+` + ident + `\s*=\s*(\S.*?)\s*$`), (*Interpreter).execIntDeclare},
	{IntDeclare, regexp.MustCompile(`^\s*int\s+` + ident + `\s*$`), (*Interpreter).execIntDeclare},
	{StringDeclareLiteral, regexp.MustCompile(`^\s*string\s+` + ident + `\s*=\s*"([^"]*)"`), (*Interpreter).execStringDeclare},
	{StringDeclare, regexp.MustCompile(`^\s*string\s+` + ident + `\s*$`), (*Interpreter).execStringDeclare},
	{StringDeclareConcat, regexp.MustCompile(`^\s*string\s+` + ident + `\s*=\s*(\S.*?)\s*$`), (*Interpreter).execStringDeclare},
	{Assign, regexp.MustCompile(`^\s*` + ident + `\s*=\s*(\S.*?)\s*$`), (*Interpreter).execAssign},
	{Print, regexp.MustCompile(`^\s*print\s+` + ident + `\s*$`), (*Interpreter).execPrint},
	{Scan, regexp.MustCompile(`^\s*scanf\s+` + ident + `\s*$`), (*Interpreter).execScan},
}

// Classify returns the first statement form matching the line.
func Classify(line string) (Statement, bool) {
	st, _, ok := classify(line)
	return st, ok
}

func classify(line string) (Statement, *rule, bool) {
	for i := range rules {
		m := rules[i].pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		st := Statement{Kind: rules[i].kind, Name: m[1]}
		if len(m) > 2 {
			st.Expr = m[2]
		}
		return st, &rules[i], true
	}
	return Statement{}, nil, false
}
