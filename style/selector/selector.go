package selector

import "strings"

// State is the dynamic-state view a selector is matched against. Elements
// of the host tree provide it; the matcher only ever reads it. Parent must
// return nil (an untyped nil, not a typed one wrapped in the interface) when
// the element has no parent.
type State interface {
	HasClass(name string) bool
	Hovered() bool
	Focused() bool
	FocusWithin() bool
	FocusVisible() bool
	FirstChild() bool
	LastChild() bool
	Parent() State
}

// --- Selector AST ----------------------------------------------------------

type op uint8

const (
	opAccept op = iota // chain terminator, matches unconditionally
	opCurrent          // the '&' anchor marker
	opParent           // step to the parent state
	opClass
	opHover
	opFocus
	opFocusWithin
	opFocusVisible
	opFirstChild
	opLastChild
)

// A parsed alternative is a chain of nodes, read anchor-first: the terms of
// the anchor group come first, every opParent consumes one level of the
// ancestor chain, and opAccept terminates the chain.
type node struct {
	op   op
	name string // class name for opClass
	next *node
}

// Selector is a parsed selector expression. The zero value is useless;
// selectors are created by Parse and immutable afterwards, so they may be
// shared freely.
type Selector struct {
	alts  []*node
	depth int
	hover bool
}

// Depth reports the maximum number of term groups over all alternatives,
// i.e. 1 plus the longest ancestor walk a match may take. Hosts can use it
// to bound how much of the hierarchy styling has to watch.
func (sel *Selector) Depth() int {
	return sel.depth
}

// UsesHover reports whether any alternative tests the hover pseudo state.
// Hosts use this as a change-detection hint: only selectors with hover
// tests need re-matching on pointer movement.
func (sel *Selector) UsesHover() bool {
	return sel.hover
}

// --- Matching --------------------------------------------------------------

// Matches evaluates the selector against an element state. Alternatives are
// tried left to right and or-ed together. A nil state matches nothing.
func (sel *Selector) Matches(st State) bool {
	if sel == nil || st == nil {
		return false
	}
	for _, alt := range sel.alts {
		if alt.matches(st) {
			return true
		}
	}
	return false
}

func (n *node) matches(st State) bool {
	switch n.op {
	case opAccept:
		return true
	case opCurrent:
		return n.next.matches(st)
	case opParent:
		if p := st.Parent(); p != nil {
			return n.next.matches(p)
		}
		return false
	case opClass:
		return st.HasClass(n.name) && n.next.matches(st)
	case opHover:
		return st.Hovered() && n.next.matches(st)
	case opFocus:
		return st.Focused() && n.next.matches(st)
	case opFocusWithin:
		return st.FocusWithin() && n.next.matches(st)
	case opFocusVisible:
		return st.FocusVisible() && n.next.matches(st)
	case opFirstChild:
		return st.FirstChild() && n.next.matches(st)
	case opLastChild:
		return st.LastChild() && n.next.matches(st)
	}
	return false
}

// --- Display ---------------------------------------------------------------

var pseudoNames = map[op]string{
	opHover:        "hover",
	opFocus:        "focus",
	opFocusWithin:  "focus-within",
	opFocusVisible: "focus-visible",
	opFirstChild:   "first-child",
	opLastChild:    "last-child",
}

// String renders the selector in source form. The result parses back to an
// equal selector; groups without terms render as '*'.
func (sel *Selector) String() string {
	var b strings.Builder
	for i, alt := range sel.alts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeAlt(&b, alt)
	}
	return b.String()
}

func writeAlt(b *strings.Builder, chain *node) {
	// Segments in chain order, i.e. anchor first; printed in reverse.
	type segment struct {
		anchor bool
		terms  []string
	}
	var segs []segment
	seg := segment{}
	for n := chain; n != nil; n = n.next {
		switch n.op {
		case opAccept:
			segs = append(segs, seg)
		case opCurrent:
			seg.anchor = true
		case opParent:
			segs = append(segs, seg)
			seg = segment{}
		case opClass:
			seg.terms = append(seg.terms, "."+n.name)
		default:
			seg.terms = append(seg.terms, ":"+pseudoNames[n.op])
		}
	}
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if i < len(segs)-1 {
			b.WriteString(" > ")
		}
		if s.anchor {
			b.WriteString("&")
		} else if len(s.terms) == 0 {
			b.WriteString("*")
		}
		for _, t := range s.terms {
			b.WriteString(t)
		}
	}
}

// Equal reports structural equality of two selectors.
func (sel *Selector) Equal(other *Selector) bool {
	if sel == nil || other == nil {
		return sel == other
	}
	if len(sel.alts) != len(other.alts) {
		return false
	}
	for i := range sel.alts {
		a, b := sel.alts[i], other.alts[i]
		for a != nil && b != nil {
			if a.op != b.op || a.name != b.name {
				return false
			}
			a, b = a.next, b.next
		}
		if a != nil || b != nil {
			return false
		}
	}
	return true
}
