package style

import (
	"sort"

	"github.com/npillmayer/peacock/style/selector"
)

// Computed is one element's fully merged style snapshot: for every property
// any contributing Set declared, the value of the last declaration in
// traversal order, plus the transition declarations gathered along the way.
// A Computed is produced fresh by every Resolve call and is never shared
// between elements.
type Computed struct {
	props       map[PropID]Value
	transitions []Transition
}

// Resolve merges the Sets attached to an element, in attachment order, into
// one Computed snapshot. Per Set the base properties apply first, then the
// selector-gated rules in declared order, recursively; later declarations
// overwrite earlier ones. Selectors are matched against st as it is right
// now. Resolution is deterministic and cannot fail; nil Sets and unmatched
// rules simply contribute nothing.
func Resolve(sets []*Set, st selector.State) *Computed {
	cs := &Computed{props: make(map[PropID]Value)}
	for _, s := range sets {
		if s != nil {
			cs.apply(s, st)
		}
	}
	tracer().Debugf("resolved %d sets to %d properties", len(sets), len(cs.props))
	return cs
}

func (cs *Computed) apply(s *Set, st selector.State) {
	for p, v := range s.props {
		cs.props[p] = v
	}
	cs.transitions = append(cs.transitions, s.transitions...)
	for _, r := range s.rules {
		if r.Sel.Matches(st) {
			cs.apply(r.Props, st)
		}
	}
}

// Prop looks up a computed property value.
func (cs *Computed) Prop(p PropID) (Value, bool) {
	v, ok := cs.props[p]
	return v, ok
}

// PropIDs returns the computed properties in ascending PropID order.
func (cs *Computed) PropIDs() []PropID {
	ids := make([]PropID, 0, len(cs.props))
	for p := range cs.props {
		ids = append(ids, p)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of computed properties.
func (cs *Computed) Len() int {
	return len(cs.props)
}

// Put overwrites one property of the snapshot. The animation layer uses it
// to merge in-flight interpolated values over freshly computed ones;
// snapshots are transient and per-element, so overwriting is safe.
func (cs *Computed) Put(p PropID, v Value) {
	if cs.props == nil {
		cs.props = make(map[PropID]Value)
	}
	cs.props[p] = v
}

// Transition returns the transition declared for a property, if any. With
// multiple declarations for the same property the first one gathered wins.
func (cs *Computed) Transition(p PropID) (Transition, bool) {
	for _, t := range cs.transitions {
		if t.Property == p {
			return t, true
		}
	}
	return Transition{}, false
}

// Transitions returns all gathered transition declarations in traversal
// order. Callers must not modify the returned slice.
func (cs *Computed) Transitions() []Transition {
	return cs.transitions
}

// Equal reports whether two snapshots carry the same properties with the
// same values. Transition declarations are not compared.
func (cs *Computed) Equal(other *Computed) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	if len(cs.props) != len(other.props) {
		return false
	}
	for p, v := range cs.props {
		if w, ok := other.props[p]; !ok || w != v {
			return false
		}
	}
	return true
}

// --- Diffing ---------------------------------------------------------------

// Change is one diffed property difference. From or To is the unset Value
// when the property is absent on the respective side.
type Change struct {
	Prop PropID
	From Value
	To   Value
}

// Diff lists the properties whose values differ between two snapshots, in
// ascending PropID order. Either snapshot may be nil, which counts as
// empty. Equality is the tag-plus-payload equality of Value.
func Diff(prev, cur *Computed) []Change {
	var keys []PropID
	seen := make(map[PropID]bool)
	collect := func(cs *Computed) {
		if cs == nil {
			return
		}
		for p := range cs.props {
			if !seen[p] {
				seen[p] = true
				keys = append(keys, p)
			}
		}
	}
	collect(prev)
	collect(cur)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var changes []Change
	for _, p := range keys {
		var from, to Value
		if prev != nil {
			from = prev.props[p]
		}
		if cur != nil {
			to = cur.props[p]
		}
		if from != to {
			changes = append(changes, Change{Prop: p, From: from, To: to})
		}
	}
	return changes
}
