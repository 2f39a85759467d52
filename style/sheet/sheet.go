package sheet

import (
	"errors"
	"fmt"

	"github.com/gorilla/css/scanner"

	"github.com/npillmayer/peacock/style"
)

// Error codes wrapped by ParseError, to be checked with errors.Is. Selector
// text inside a sheet additionally surfaces the error codes of package
// selector.
var (
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownProperty = errors.New("unknown property")
	ErrBadValue        = errors.New("bad property value")
)

// ParseError reports where in the stylesheet text parsing failed and why.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stylesheet: %v at %d:%d near %q", e.Err, e.Line, e.Column, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

func perr(tok *scanner.Token, code error) *ParseError {
	return &ParseError{Line: tok.Line, Column: tok.Column, Token: tok.Value, Err: code}
}

// Sheet is an immutable collection of named style sets.
type Sheet struct {
	names  []string
	styles map[string]*style.Set
}

// Names lists the style names in declaration order.
func (sh *Sheet) Names() []string {
	return sh.names
}

// Style looks up a style set by name.
func (sh *Sheet) Style(name string) (*style.Set, bool) {
	s, ok := sh.styles[name]
	return s, ok
}
