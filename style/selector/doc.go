/*
Package selector implements the restricted selector language used to gate
style rules on dynamic element state.

Overview

Selectors are deliberately much weaker than CSS selectors. A selector is a
list of alternatives, separated by commas; an alternative is a sequence of
term groups joined by '>', which always means strict parent (each '>' steps
up exactly one level of the ancestor chain, there is no descendant search
and no sibling navigation). Terms are class tests ('.name') and pseudo-state
tests (':hover', ':focus', ':focus-within', ':focus-visible', ':first-child',
':last-child'). The marker '&' names the element being styled (the anchor)
and is only legal in the last group of an alternative; '*' stands for a
group without constraints. Examples:

	&:hover
	.sidebar > &.item
	.accented > &, .urgent > &

This restriction is what keeps matching linear: evaluation starts at the
anchor and walks the parent chain group by group, so the cost is bounded by
the number of groups times the number of terms, with no backtracking.

All validation happens in Parse; matching a parsed selector cannot fail.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peacock.selector'.
func tracer() tracing.Trace {
	return tracing.Select("peacock.selector")
}
