package peacock

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders an element tree as indented text, with classes, state flags
// and the applied properties of every element. Intended for debugging and
// test failure output.
func Dump(root *Element) string {
	if root == nil {
		return "<no tree>\n"
	}
	header := fmt.Sprintf("\n%s\n", describe(root))
	printer := tp.New()
	for _, child := range root.children {
		dumpInto(printer, child)
	}
	return header + printer.String()
}

func dumpInto(printer tp.Tree, el *Element) {
	if len(el.children) == 0 {
		printer.AddNode(describe(el))
		return
	}
	branch := printer.AddBranch(describe(el))
	for _, child := range el.children {
		dumpInto(branch, child)
	}
}

func describe(el *Element) string {
	var sb strings.Builder
	if el.label == "" {
		sb.WriteString("element")
	} else {
		sb.WriteString(el.label)
	}
	for _, c := range el.Classes() {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	if el.hovered {
		sb.WriteString(":hover")
	}
	if el.focused {
		sb.WriteString(":focus")
	}
	if el.focusWithin > 0 {
		sb.WriteString(":focus-within")
	}
	if cs := el.applied; cs != nil && cs.Len() > 0 {
		sb.WriteString(" {")
		for i, p := range cs.PropIDs() {
			if i > 0 {
				sb.WriteString("; ")
			}
			v, _ := cs.Prop(p)
			fmt.Fprintf(&sb, "%s: %s", p, v)
		}
		sb.WriteByte('}')
	}
	return sb.String()
}
