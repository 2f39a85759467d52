package peacock

import (
	"sort"

	"github.com/npillmayer/peacock/style"
	"github.com/npillmayer/peacock/style/selector"
)

// Element is a node of the host UI tree, as far as styling is concerned:
// it carries classes, the dynamic pseudo-state flags, an ordered list of
// attached style sets, and the animation bookkeeping of the tick driver.
// Elements are not safe for concurrent use; a tree belongs to the single
// goroutine driving it.
type Element struct {
	label    string
	parent   *Element
	children []*Element

	classes map[string]bool

	hovered      bool
	focused      bool
	focusVisible bool
	focusWithin  int // focused elements in the subtree, self included

	styles  []*style.Set
	applied *style.Computed
	anims   map[style.PropID]*animation
}

// NewElement creates a detached element. The label is free-form and only
// used for dumps and diagnostics.
func NewElement(label string) *Element {
	return &Element{
		label:   label,
		classes: make(map[string]bool),
		anims:   make(map[style.PropID]*animation),
	}
}

// Label returns the element's diagnostic label.
func (el *Element) Label() string {
	return el.label
}

// --- Tree structure --------------------------------------------------------

// AppendChild adds child as the last child, detaching it from a previous
// parent first. It returns the receiver.
func (el *Element) AppendChild(child *Element) *Element {
	if child == nil || child == el {
		return el
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = el
	el.children = append(el.children, child)
	if child.focusWithin > 0 {
		for anc := el; anc != nil; anc = anc.parent {
			anc.focusWithin += child.focusWithin
		}
	}
	return el
}

// RemoveChild detaches child from the receiver. It reports whether child
// actually was a child.
func (el *Element) RemoveChild(child *Element) bool {
	i := el.IndexOfChild(child)
	if i < 0 {
		return false
	}
	el.children = append(el.children[:i], el.children[i+1:]...)
	child.parent = nil
	if child.focusWithin > 0 {
		for anc := el; anc != nil; anc = anc.parent {
			anc.focusWithin -= child.focusWithin
		}
	}
	return true
}

// Parent returns the parent element, nil for a root.
func (el *Element) Parent() *Element {
	return el.parent
}

// ChildCount returns the number of children.
func (el *Element) ChildCount() int {
	return len(el.children)
}

// Child returns child i, nil if out of range.
func (el *Element) Child(i int) *Element {
	if i < 0 || i >= len(el.children) {
		return nil
	}
	return el.children[i]
}

// IndexOfChild returns the position of child, -1 if it is not a child.
func (el *Element) IndexOfChild(child *Element) int {
	for i, c := range el.children {
		if c == child {
			return i
		}
	}
	return -1
}

// --- Attached styles -------------------------------------------------------

// WithStyles attaches style sets and returns the receiver, for chaining
// during tree construction.
func (el *Element) WithStyles(sets ...*style.Set) *Element {
	el.styles = append(el.styles, sets...)
	return el
}

// AddStyle appends a style set at the end of the element's list. Later
// sets win over earlier ones during resolution.
func (el *Element) AddStyle(s *style.Set) {
	if s != nil {
		el.styles = append(el.styles, s)
	}
}

// SetStyles replaces the element's style list.
func (el *Element) SetStyles(sets ...*style.Set) {
	el.styles = append(el.styles[:0:0], sets...)
}

// Styles returns the attached style sets in order. Callers must not modify
// the returned slice.
func (el *Element) Styles() []*style.Set {
	return el.styles
}

// Applied returns the style snapshot of the last tick, including animated
// values, or nil before the first tick.
func (el *Element) Applied() *style.Computed {
	return el.applied
}

// AnimationCount returns the number of transitions currently running on
// the element.
func (el *Element) AnimationCount() int {
	return len(el.anims)
}

// --- Dynamic state ---------------------------------------------------------

// SetHovered flags the element as hovered by the pointer.
func (el *Element) SetHovered(hovered bool) {
	el.hovered = hovered
}

// Hovered reports the hover flag.
func (el *Element) Hovered() bool {
	return el.hovered
}

// SetFocused flags the element as holding the input focus; visible
// additionally marks the focus as one that should be indicated visually.
// Focus containment (':focus-within') is maintained transitively: the
// element and all its ancestors are updated.
func (el *Element) SetFocused(focused, visible bool) {
	el.focusVisible = focused && visible
	if focused == el.focused {
		return
	}
	el.focused = focused
	delta := 1
	if !focused {
		delta = -1
	}
	for anc := el; anc != nil; anc = anc.parent {
		anc.focusWithin += delta
	}
}

// Focused reports the focus flag.
func (el *Element) Focused() bool {
	return el.focused
}

// State exposes the element to selector matching.
func (el *Element) State() selector.State {
	return elemState{el}
}

// elemState adapts Element to selector.State. A separate type keeps the
// selector-facing Parent method, which returns State, from colliding with
// the tree-facing one.
type elemState struct {
	el *Element
}

func (s elemState) HasClass(name string) bool { return s.el.classes[name] }
func (s elemState) Hovered() bool             { return s.el.hovered }
func (s elemState) Focused() bool             { return s.el.focused }
func (s elemState) FocusWithin() bool         { return s.el.focusWithin > 0 }
func (s elemState) FocusVisible() bool        { return s.el.focusVisible }

// FirstChild reports whether the element is the first among its siblings.
// A root element counts as both first and last.
func (s elemState) FirstChild() bool {
	p := s.el.parent
	return p == nil || p.children[0] == s.el
}

// LastChild reports whether the element is the last among its siblings.
func (s elemState) LastChild() bool {
	p := s.el.parent
	return p == nil || p.children[len(p.children)-1] == s.el
}

func (s elemState) Parent() selector.State {
	if s.el.parent == nil {
		return nil
	}
	return elemState{s.el.parent}
}

// --- Classes ---------------------------------------------------------------

// AddClass adds a class to the element.
func (el *Element) AddClass(name string) {
	if name != "" {
		el.classes[name] = true
	}
}

// RemoveClass removes a class from the element.
func (el *Element) RemoveClass(name string) {
	delete(el.classes, name)
}

// ToggleClass flips a class and reports whether it is now present.
func (el *Element) ToggleClass(name string) bool {
	if el.classes[name] {
		delete(el.classes, name)
		return false
	}
	el.AddClass(name)
	return el.classes[name]
}

// SetClass adds or removes a class.
func (el *Element) SetClass(name string, on bool) {
	if on {
		el.AddClass(name)
	} else {
		el.RemoveClass(name)
	}
}

// HasClass reports whether the element carries a class.
func (el *Element) HasClass(name string) bool {
	return el.classes[name]
}

// Classes lists the element's classes in sorted order.
func (el *Element) Classes() []string {
	if len(el.classes) == 0 {
		return nil
	}
	names := make([]string, 0, len(el.classes))
	for name := range el.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
