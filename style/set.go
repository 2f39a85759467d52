package style

import (
	"sort"

	"github.com/npillmayer/peacock/style/selector"
)

// Set is an immutable bag of style declarations: a sparse property table,
// selector-gated nested rules, and transition declarations. Sets are
// created by a Builder (or the stylesheet parser) and never change
// afterwards, so a *Set may be attached to any number of elements and read
// concurrently without synchronization.
type Set struct {
	props       map[PropID]Value
	rules       []Rule
	transitions []Transition
	depth       int
	hover       bool
}

// Rule pairs a selector with the Set it gates. The nested Set may carry
// rules of its own; all selectors are always evaluated against the state of
// the element being styled, never against intermediate results.
type Rule struct {
	Sel   *selector.Selector
	Props *Set
}

// Prop looks up a base property declaration.
func (s *Set) Prop(p PropID) (Value, bool) {
	v, ok := s.props[p]
	return v, ok
}

// PropIDs returns the declared base properties in ascending PropID order.
func (s *Set) PropIDs() []PropID {
	ids := make([]PropID, 0, len(s.props))
	for p := range s.props {
		ids = append(ids, p)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Rules returns the selector-gated rules in declaration order. Callers must
// not modify the returned slice.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Transitions returns the transition declarations in declaration order.
// Callers must not modify the returned slice.
func (s *Set) Transitions() []Transition {
	return s.transitions
}

// Empty reports whether the Set declares nothing at all.
func (s *Set) Empty() bool {
	return len(s.props) == 0 && len(s.rules) == 0 && len(s.transitions) == 0
}

// Depth reports how far up the ancestor chain any selector of this Set
// (nested rules included) may look. A Set without rules has depth 0.
func (s *Set) Depth() int {
	return s.depth
}

// UsesHover reports whether any selector of this Set (nested rules
// included) tests the hover pseudo state. Hosts use it to limit re-styling
// on pointer movement.
func (s *Set) UsesHover() bool {
	return s.hover
}
