/*
Package peacock is a styling engine for retained-mode UI trees.

Overview

Styling follows a CSS-like cascade, deliberately cut down: elements carry
an ordered list of immutable style sets (package style), rules inside a
set are gated by a restricted selector language (package style/selector),
and resolution is a pure function of the set list and the element's
dynamic state. There is no specificity. The last set and, within a set,
the last matching rule wins.

The Styler is the tick driver on top of the pure core: once per frame it
re-resolves every element of a tree, diffs against what the element showed
before, and animates changed properties that carry a transition
declaration. Animated values retarget smoothly: when a target changes
mid-flight, the transition restarts from the currently shown value. The
engine is strictly single-threaded; a tree and its Styler belong to one
goroutine, which is the common situation inside a UI loop.

A minimal round trip:

	hot := style.NewStyle().
	    BackgroundColor(style.RGB(0.3, 0.3, 0.3)).
	    Selector("&:hover", func(b *style.Builder) {
	        b.BackgroundColor(style.RGB(0.5, 0.5, 0.5))
	    }).
	    Transition(style.PropBackgroundColor, 0.3, 0, timing.EaseOut).
	    MustBuild()

	button := peacock.NewElement("button").WithStyles(hot)
	styler := peacock.New(peacock.Applier(paint))

	// once per frame:
	styler.Tick(button, dt)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package peacock

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peacock.engine'.
func tracer() tracing.Trace {
	return tracing.Select("peacock.engine")
}
