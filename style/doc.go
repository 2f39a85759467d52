/*
Package style implements the value model, the immutable style fragments and
the composition engine of a restricted, CSS-inspired styling system for
retained-mode UI trees.

Overview

Style declarations live in immutable Sets: sparse property-to-value tables
plus selector-gated nested rules and transition declarations. An element of
the host tree carries an ordered list of Sets; Resolve merges them, in that
order, into one Computed snapshot. Attachment order is the only priority
mechanism there is: later declarations overwrite earlier ones, and no
specificity or cascade weighting exists. Selector-gated rules apply their
nested Set exactly when their selector matches the element's current dynamic
state.

Values are a tagged union over lengths (absolute device units, percentages,
viewport-relative units), plain numbers, colors, keywords and auto, in the
flags-plus-payload option-type style. A value's tag decides whether changes
to it can be interpolated; Lerp refuses mismatched or discrete tags and the
animation layer then snaps instead.

Resolution is a pure function of the Set list and the dynamic state: no
hidden ordering, deterministic across runs, and total — there is no invalid
Computed and no error path once the Sets exist.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peacock.style'.
func tracer() tracing.Trace {
	return tracing.Select("peacock.style")
}
