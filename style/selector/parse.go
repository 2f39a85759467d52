package selector

import (
	"errors"
	"fmt"

	"github.com/gorilla/css/scanner"
)

// Error codes wrapped by ParseError, checkable with errors.Is.
var (
	// ErrAnchorMisplaced flags an '&' that is not the leading token of the
	// last group of its alternative, or a second '&'.
	ErrAnchorMisplaced = errors.New("anchor '&' must lead the last group")

	// ErrUnknownPseudo flags a ':' followed by an identifier outside the
	// fixed pseudo-class vocabulary.
	ErrUnknownPseudo = errors.New("unknown pseudo class")

	// ErrUnexpectedToken flags any token the grammar has no place for.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminatedGroup flags selector text that ends where a group or
	// term was still expected (trailing '>' or ',', empty input).
	ErrUnterminatedGroup = errors.New("unterminated selector")
)

// ParseError describes a selector syntax error with its source position.
type ParseError struct {
	Line   int
	Column int
	Token  string // offending token text, empty at end of input
	Err    error  // one of the error codes above
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("selector: %v at %d:%d", e.Err, e.Line, e.Column)
	}
	return fmt.Sprintf("selector: %v at %d:%d near %q", e.Err, e.Line, e.Column, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

func perr(tok *scanner.Token, code error) *ParseError {
	text := tok.Value
	if tok.Type == scanner.TokenEOF {
		text = ""
	}
	return &ParseError{Line: tok.Line, Column: tok.Column, Token: text, Err: code}
}

var pseudoOps = map[string]op{
	"hover":         opHover,
	"focus":         opFocus,
	"focus-within":  opFocusWithin,
	"focus-visible": opFocusVisible,
	"first-child":   opFirstChild,
	"last-child":    opLastChild,
}

// MustParse is Parse for selector literals known to be well-formed; it
// panics on a parse error.
func MustParse(src string) *Selector {
	sel, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return sel
}

// Parse parses selector text into a Selector. The returned error, if any,
// is a *ParseError. Parsing is a single left-to-right pass; whitespace and
// comments separate tokens but carry no meaning.
func Parse(src string) (*Selector, error) {
	p := parser{scan: scanner.New(src)}
	sel, err := p.parse()
	if err != nil {
		tracer().Debugf("selector %q does not parse: %v", src, err)
		return nil, err
	}
	tracer().Debugf("parsed selector %q, depth %d", src, sel.depth)
	return sel, nil
}

type parser struct {
	scan *scanner.Scanner
}

// group collects one term group while scanning an alternative.
type group struct {
	star   bool
	anchor bool
	terms  []node
	// position of the '&', for anchor placement errors found at the end
	// of the alternative
	aline, acol int
}

func (g *group) empty() bool {
	return !g.star && !g.anchor && len(g.terms) == 0
}

func (p *parser) parse() (*Selector, error) {
	sel := &Selector{}
	var groups []group
	cur := group{}
	anchorSeen := false

	// flush the current group at '>' or the end of an alternative
	flush := func(tok *scanner.Token) *ParseError {
		if cur.empty() {
			if tok.Type == scanner.TokenEOF {
				return perr(tok, ErrUnterminatedGroup)
			}
			return perr(tok, ErrUnexpectedToken)
		}
		groups = append(groups, cur)
		cur = group{}
		return nil
	}

	// finish an alternative at ',' or end of input
	finish := func(tok *scanner.Token) *ParseError {
		if cur.empty() && len(groups) == 0 {
			if tok.Type == scanner.TokenEOF {
				return perr(tok, ErrUnterminatedGroup)
			}
			return perr(tok, ErrUnexpectedToken)
		}
		if err := flush(tok); err != nil {
			return err
		}
		for i, g := range groups {
			if g.anchor && i != len(groups)-1 {
				return &ParseError{Line: g.aline, Column: g.acol, Token: "&", Err: ErrAnchorMisplaced}
			}
		}
		sel.alts = append(sel.alts, buildChain(groups))
		if len(groups) > sel.depth {
			sel.depth = len(groups)
		}
		for _, g := range groups {
			for _, t := range g.terms {
				if t.op == opHover {
					sel.hover = true
				}
			}
		}
		groups = nil
		anchorSeen = false
		return nil
	}

	for {
		tok := p.scan.Next()
		switch tok.Type {
		case scanner.TokenS, scanner.TokenComment, scanner.TokenBOM:
			continue
		case scanner.TokenEOF:
			if err := finish(tok); err != nil {
				return nil, err
			}
			return sel, nil
		case scanner.TokenChar:
			switch tok.Value {
			case ".":
				name, err := p.ident(tok)
				if err != nil {
					return nil, err
				}
				cur.terms = append(cur.terms, node{op: opClass, name: name})
			case ":":
				name, err := p.ident(tok)
				if err != nil {
					return nil, err
				}
				pop, ok := pseudoOps[name]
				if !ok {
					return nil, &ParseError{Line: tok.Line, Column: tok.Column, Token: ":" + name, Err: ErrUnknownPseudo}
				}
				cur.terms = append(cur.terms, node{op: pop})
			case "&":
				if anchorSeen || !cur.empty() {
					return nil, perr(tok, ErrAnchorMisplaced)
				}
				cur.anchor = true
				cur.aline, cur.acol = tok.Line, tok.Column
				anchorSeen = true
			case "*":
				if !cur.empty() {
					return nil, perr(tok, ErrUnexpectedToken)
				}
				cur.star = true
			case ">":
				if err := flush(tok); err != nil {
					return nil, err
				}
			case ",":
				if err := finish(tok); err != nil {
					return nil, err
				}
			default:
				return nil, perr(tok, ErrUnexpectedToken)
			}
		default:
			return nil, perr(tok, ErrUnexpectedToken)
		}
	}
}

// ident reads the identifier that must immediately follow a '.' or ':'.
func (p *parser) ident(after *scanner.Token) (string, *ParseError) {
	tok := p.scan.Next()
	if tok.Type != scanner.TokenIdent {
		if tok.Type == scanner.TokenEOF {
			return "", perr(after, ErrUnterminatedGroup)
		}
		return "", perr(tok, ErrUnexpectedToken)
	}
	return tok.Value, nil
}

// buildChain links the groups of one alternative into a match chain. The
// chain is anchor-first: terms of the last group, then one opParent per
// combinator step with the respective ancestor group's terms, then opAccept.
func buildChain(groups []group) *node {
	var seq []*node
	last := groups[len(groups)-1]
	if last.anchor {
		seq = append(seq, &node{op: opCurrent})
	}
	for i := range last.terms {
		t := last.terms[i]
		seq = append(seq, &t)
	}
	for gi := len(groups) - 2; gi >= 0; gi-- {
		seq = append(seq, &node{op: opParent})
		g := groups[gi]
		for i := range g.terms {
			t := g.terms[i]
			seq = append(seq, &t)
		}
	}
	seq = append(seq, &node{op: opAccept})
	for i := 0; i < len(seq)-1; i++ {
		seq[i].next = seq[i+1]
	}
	return seq[0]
}
