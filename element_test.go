package peacock_test

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/peacock"
	"github.com/npillmayer/peacock/style"
)

func TestElementTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	root := peacock.NewElement("root")
	a := peacock.NewElement("a")
	b := peacock.NewElement("b")
	root.AppendChild(a).AppendChild(b)
	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", root.ChildCount())
	}
	if a.Parent() != root || b.Parent() != root {
		t.Error("expected both children to point at root, don't")
	}
	if root.Child(0) != a || root.Child(1) != b {
		t.Error("expected children in append order, aren't")
	}
	if root.Child(2) != nil || root.Child(-1) != nil {
		t.Error("expected out-of-range children to be nil, aren't")
	}
	if root.IndexOfChild(b) != 1 {
		t.Errorf("expected b at index 1, is %d", root.IndexOfChild(b))
	}

	// reparenting detaches first
	b.AppendChild(a)
	if root.ChildCount() != 1 || a.Parent() != b {
		t.Error("expected a to move below b, didn't")
	}
	if !b.RemoveChild(a) || a.Parent() != nil {
		t.Error("expected a to detach, didn't")
	}
	if b.RemoveChild(a) {
		t.Error("expected removing a stranger to report false, didn't")
	}
}

func TestElementClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("div")
	el.AddClass("menu")
	el.AddClass("item")
	el.AddClass("menu") // idempotent
	if !el.HasClass("menu") || !el.HasClass("item") {
		t.Error("expected both classes to be present, aren't")
	}
	if got := el.Classes(); !reflect.DeepEqual(got, []string{"item", "menu"}) {
		t.Errorf("expected sorted classes [item menu], got %v", got)
	}
	el.RemoveClass("menu")
	if el.HasClass("menu") {
		t.Error("expected menu to be gone, isn't")
	}
	if on := el.ToggleClass("active"); !on || !el.HasClass("active") {
		t.Error("expected toggle to add active, didn't")
	}
	if on := el.ToggleClass("active"); on || el.HasClass("active") {
		t.Error("expected toggle to remove active, didn't")
	}
	el.SetClass("frozen", true)
	el.SetClass("frozen", false)
	if el.HasClass("frozen") {
		t.Error("expected frozen to be unset again, isn't")
	}
}

func TestElementStateAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	root := peacock.NewElement("root")
	first := peacock.NewElement("first")
	last := peacock.NewElement("last")
	root.AppendChild(first).AppendChild(last)
	first.AddClass("item")
	first.SetHovered(true)

	st := first.State()
	if !st.HasClass("item") || st.HasClass("menu") {
		t.Error("expected class item and no class menu, got otherwise")
	}
	if !st.Hovered() {
		t.Error("expected the state to report hover, doesn't")
	}
	if !st.FirstChild() || st.LastChild() {
		t.Error("expected first-but-not-last, got otherwise")
	}
	if last.State().FirstChild() || !last.State().LastChild() {
		t.Error("expected last-but-not-first, got otherwise")
	}
	if p := st.Parent(); p == nil || !p.FirstChild() || !p.LastChild() {
		t.Error("expected the root to be first and last, isn't")
	}
	if root.State().Parent() != nil {
		t.Error("expected the root state to have no parent, has one")
	}
}

func TestFocusWithinPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	root := peacock.NewElement("root")
	form := peacock.NewElement("form")
	input := peacock.NewElement("input")
	root.AppendChild(form)
	form.AppendChild(input)

	input.SetFocused(true, true)
	if !input.Focused() || !input.State().FocusVisible() {
		t.Error("expected the input to hold visible focus, doesn't")
	}
	for _, el := range []*peacock.Element{input, form, root} {
		if !el.State().FocusWithin() {
			t.Errorf("expected %s to contain focus, doesn't", el.Label())
		}
	}

	// moving the focused subtree moves containment
	aside := peacock.NewElement("aside")
	root.AppendChild(aside)
	aside.AppendChild(form)
	if !aside.State().FocusWithin() || !root.State().FocusWithin() {
		t.Error("expected containment to follow the subtree, didn't")
	}

	input.SetFocused(false, false)
	for _, el := range []*peacock.Element{input, form, aside, root} {
		if el.State().FocusWithin() {
			t.Errorf("expected %s not to contain focus anymore, does", el.Label())
		}
	}
	if input.State().FocusVisible() {
		t.Error("expected focus-visible to clear with the focus, didn't")
	}
}

func TestElementStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	s1 := style.NewStyle().Width(style.Px(1)).MustBuild()
	s2 := style.NewStyle().Width(style.Px(2)).MustBuild()
	el := peacock.NewElement("div").WithStyles(s1)
	el.AddStyle(s2)
	if got := el.Styles(); len(got) != 2 || got[0] != s1 || got[1] != s2 {
		t.Errorf("expected styles [s1 s2], got %d entries", len(got))
	}
	el.SetStyles(s2)
	if got := el.Styles(); len(got) != 1 || got[0] != s2 {
		t.Errorf("expected styles [s2], got %d entries", len(got))
	}
	if el.Applied() != nil {
		t.Error("expected no applied snapshot before the first tick, got one")
	}
}
