/*
Package sheet parses a small stylesheet text format into style sets.

Overview

A stylesheet is a sequence of named style blocks:

	button {
	    width:            100px;
	    background_color: #444;
	    &:hover { background_color: #666; }
	    transition: background_color 0.3s ease-out;
	}

Blocks contain property declarations, nested selector blocks (the selector
grammar of package selector) and 'transition' shorthands. CSS-style block
comments may appear wherever whitespace may. Property names and value
syntax follow the property table of package style; lengths accept px, pt,
%, vw, vh, vmin, vmax, a bare number (pixels) or 'auto', colors the hex
notations plus rgb(), rgba(), hsl() and hsla().

Parsing is strict: unknown property names, keywords outside a property's
vocabulary and malformed values are reported as *ParseError with line and
column, never silently dropped. The sheet itself is immutable after Parse.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peacock.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("peacock.sheet")
}
