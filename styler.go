package peacock

import (
	"github.com/npillmayer/peacock/style"
)

// ApplyFunc receives an element's freshly applied style snapshot, once per
// element per tick.
type ApplyFunc func(el *Element, cs *style.Computed)

// Styler drives style resolution and transition animation over an element
// tree. All methods must be called from the goroutine owning the tree;
// the engine itself takes no locks.
type Styler struct {
	apply ApplyFunc
}

// Option configures a Styler.
type Option func(*Styler)

// Applier installs a callback notified of every applied snapshot. The
// snapshot handed to the callback includes animated values.
func Applier(fn ApplyFunc) Option {
	return func(s *Styler) { s.apply = fn }
}

// New creates a Styler.
func New(opts ...Option) *Styler {
	s := &Styler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances time by dt seconds and restyles the tree below root in
// preorder.
func (s *Styler) Tick(root *Element, dt float64) {
	if root == nil {
		return
	}
	s.UpdateElement(root, dt)
	for _, child := range root.children {
		s.Tick(child, dt)
	}
}

// UpdateElement restyles a single element: its style sets are re-resolved
// against its current state and diffed against the previously applied
// snapshot. A changed property with a transition declaration starts an
// animation from the previously shown value; if an animation is already
// running and the target moved, it restarts from the currently shown value
// toward the new target. Properties without a declaration, values that
// cannot interpolate and brand-new properties apply immediately. Running
// animations then advance by dt, finished ones apply their exact end value
// and are dropped.
func (s *Styler) UpdateElement(el *Element, dt float64) {
	cur := style.Resolve(el.styles, el.State())
	changes := style.Diff(el.applied, cur)
	if len(changes) > 0 {
		tracer().Debugf("element %q: %d changed properties", el.label, len(changes))
	}
	for _, ch := range changes {
		if ch.To.IsUnset() { // property vanished, forget its animation
			delete(el.anims, ch.Prop)
			continue
		}
		tr, ok := cur.Transition(ch.Prop)
		if !ok {
			delete(el.anims, ch.Prop)
			continue
		}
		if anim, running := el.anims[ch.Prop]; running {
			if anim.to != ch.To {
				anim.from = anim.current()
				anim.to = ch.To
				anim.elapsed = 0
				anim.spec = tr
				tracer().Debugf("element %q: retarget %s from %s to %s", el.label,
					ch.Prop, anim.from, anim.to)
			}
			continue
		}
		if _, ok := style.Lerp(ch.From, ch.To, 0); !ok {
			continue // discrete change, applies this tick as resolved
		}
		el.anims[ch.Prop] = &animation{from: ch.From, to: ch.To, spec: tr}
		tracer().Debugf("element %q: transition %s from %s to %s over %gs", el.label,
			ch.Prop, ch.From, ch.To, tr.Duration)
	}
	for p, anim := range el.anims {
		anim.elapsed += dt
		if anim.done() {
			cur.Put(p, anim.to)
			delete(el.anims, p)
			continue
		}
		cur.Put(p, anim.current())
	}
	el.applied = cur
	if s.apply != nil {
		s.apply(el, cur)
	}
}
