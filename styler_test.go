package peacock_test

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/peacock"
	"github.com/npillmayer/peacock/style"
	"github.com/npillmayer/peacock/style/timing"
)

var (
	red  = style.RGB(1, 0, 0)
	blue = style.RGB(0, 0, 1)
	grey = style.RGB(0.3, 0.3, 0.3)
)

// widths builds a style whose width is switched by classes and animated
// over one second.
func widths(fn timing.Function, delay float64) *style.Set {
	return style.NewStyle().
		Width(style.Px(0)).
		Selector("&.wide", func(b *style.Builder) { b.Width(style.Px(100)) }).
		Selector("&.wider", func(b *style.Builder) { b.Width(style.Px(200)) }).
		Transition(style.PropWidth, 1, delay, fn).
		MustBuild()
}

func appliedWidth(t *testing.T, el *peacock.Element) style.Value {
	t.Helper()
	v, ok := el.Applied().Prop(style.PropWidth)
	if !ok {
		t.Fatal("expected an applied width, found none")
	}
	return v
}

func TestTickApplies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().BackgroundColor(red).Width(style.Px(100)).MustBuild()
	root := peacock.NewElement("root")
	box := peacock.NewElement("box").WithStyles(set)
	box.AddClass("wide")
	root.AppendChild(box)

	var calls int
	s := peacock.New(peacock.Applier(func(el *peacock.Element, cs *style.Computed) {
		calls++
		if cs != el.Applied() {
			t.Error("expected the callback to see the applied snapshot, doesn't")
		}
	}))
	s.Tick(root, 0)
	if calls != 2 {
		t.Errorf("expected the applier to run for both elements, ran %d times", calls)
	}
	if v, _ := box.Applied().Prop(style.PropBackgroundColor); v != style.Paint(red) {
		t.Errorf("expected background red, is %s", v)
	}
	if v := appliedWidth(t, box); v != style.Px(100) {
		t.Errorf("expected width 100px, is %s", v)
	}
	dump := peacock.Dump(root)
	t.Logf("tree =\n%s", dump)
	if !strings.Contains(dump, "box.wide") {
		t.Errorf("expected the dump to mention box.wide, doesn't:\n%s", dump)
	}
}

func TestTransitionAdvances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("box").WithStyles(widths(nil, 0))
	s := peacock.New()
	s.Tick(el, 0)
	if v := appliedWidth(t, el); v != style.Px(0) {
		t.Fatalf("expected the initial width to apply instantly, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Fatal("expected the first application not to animate, does")
	}

	el.AddClass("wide")
	s.Tick(el, 0.5)
	if v := appliedWidth(t, el); v != style.Px(50) {
		t.Errorf("expected width 50px halfway, is %s", v)
	}
	if el.AnimationCount() != 1 {
		t.Errorf("expected one running animation, got %d", el.AnimationCount())
	}

	s.Tick(el, 0.5)
	if v := appliedWidth(t, el); v != style.Px(100) {
		t.Errorf("expected the exact end value 100px, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Errorf("expected the animation record to be gone, got %d", el.AnimationCount())
	}

	s.Tick(el, 0.25)
	if v := appliedWidth(t, el); v != style.Px(100) {
		t.Errorf("expected the width to stay at 100px, is %s", v)
	}
}

func TestTransitionRetargets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("box").WithStyles(widths(nil, 0))
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("wide")
	s.Tick(el, 0.4)
	if v := appliedWidth(t, el); v != style.Px(40) {
		t.Fatalf("expected width 40px before retargeting, is %s", v)
	}

	// move the target mid-flight: no jump, restart from the shown value
	el.RemoveClass("wide")
	el.AddClass("wider")
	s.Tick(el, 0)
	if v := appliedWidth(t, el); v != style.Px(40) {
		t.Errorf("expected the width to hold at 40px on retarget, is %s", v)
	}
	if el.AnimationCount() != 1 {
		t.Errorf("expected the animation to keep running, got %d records", el.AnimationCount())
	}

	s.Tick(el, 0.5)
	if v := appliedWidth(t, el); v != style.Px(120) {
		t.Errorf("expected width 120px halfway to the new target, is %s", v)
	}
	s.Tick(el, 0.5)
	if v := appliedWidth(t, el); v != style.Px(200) {
		t.Errorf("expected the exact new end value 200px, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Errorf("expected no animation records, got %d", el.AnimationCount())
	}
}

func TestTransitionDelay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("box").WithStyles(widths(nil, 0.5))
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("wide")

	s.Tick(el, 0.3) // still inside the delay window
	if v := appliedWidth(t, el); v != style.Px(0) {
		t.Errorf("expected the width to hold during the delay, is %s", v)
	}
	if el.AnimationCount() != 1 {
		t.Error("expected the animation to be pending, isn't")
	}

	s.Tick(el, 0.4) // 0.2s into the 1s ramp
	if v := appliedWidth(t, el); v != style.Px(20) {
		t.Errorf("expected width 20px shortly after the delay, is %s", v)
	}

	s.Tick(el, 1.3)
	if v := appliedWidth(t, el); v != style.Px(100) {
		t.Errorf("expected the exact end value 100px, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Error("expected the animation record to be gone, isn't")
	}
}

func TestTransitionEasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("box").WithStyles(widths(timing.EaseIn, 0))
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("wide")
	s.Tick(el, 0.5)
	// ease-in at half time is (1/2)^3 of the distance
	if v := appliedWidth(t, el); v != style.Px(12.5) {
		t.Errorf("expected width 12.5px, is %s", v)
	}
}

func TestTransitionZeroDuration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		Width(style.Px(0)).
		Selector("&.wide", func(b *style.Builder) { b.Width(style.Px(100)) }).
		Transition(style.PropWidth, 0, 0, nil).
		MustBuild()
	el := peacock.NewElement("box").WithStyles(set)
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("wide")
	s.Tick(el, 0.016)
	if v := appliedWidth(t, el); v != style.Px(100) {
		t.Errorf("expected a zero-duration transition to jump to 100px, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Error("expected no lingering record, got one")
	}
}

func TestDiscreteSnaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		Display("flex").
		Selector("&.grid", func(b *style.Builder) { b.Display("grid") }).
		Transition(style.PropDisplay, 1, 0, nil).
		MustBuild()
	el := peacock.NewElement("box").WithStyles(set)
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("grid")
	s.Tick(el, 0.1)
	if v, _ := el.Applied().Prop(style.PropDisplay); v != style.Word("grid") {
		t.Errorf("expected display to snap to grid, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Error("expected no record for a discrete change, got one")
	}
}

func TestColorTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		BackgroundColor(red).
		Selector("&.cool", func(b *style.Builder) { b.BackgroundColor(blue) }).
		Transition(style.PropBackgroundColor, 1, 0, nil).
		MustBuild()
	el := peacock.NewElement("box").WithStyles(set)
	s := peacock.New()
	s.Tick(el, 0)
	el.AddClass("cool")
	s.Tick(el, 0.5)
	v, _ := el.Applied().Prop(style.PropBackgroundColor)
	if v == style.Paint(red) || v == style.Paint(blue) {
		t.Errorf("expected an intermediate color halfway, is %s", v)
	}
	s.Tick(el, 0.5)
	if v, _ := el.Applied().Prop(style.PropBackgroundColor); v != style.Paint(blue) {
		t.Errorf("expected the exact end color, is %s", v)
	}
	if el.AnimationCount() != 0 {
		t.Error("expected the color animation to be finished, isn't")
	}
}

func TestHoverReversalHoldsValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		BackgroundColor(grey).
		Selector("&:hover", func(b *style.Builder) { b.BackgroundColor(blue) }).
		Transition(style.PropBackgroundColor, 0.3, 0, timing.EaseOut).
		MustBuild()
	el := peacock.NewElement("button").WithStyles(set)
	s := peacock.New()
	s.Tick(el, 0)
	el.SetHovered(true)
	s.Tick(el, 0.15)
	var before style.Color
	v, _ := el.Applied().Prop(style.PropBackgroundColor)
	if v.Match().Paint(&before) == nil {
		t.Fatal("expected a color halfway in, isn't one")
	}

	// releasing hover mid-flight reverses smoothly from the shown color
	el.SetHovered(false)
	s.Tick(el, 0)
	var after style.Color
	v, _ = el.Applied().Prop(style.PropBackgroundColor)
	if v.Match().Paint(&after) == nil {
		t.Fatal("expected a color after reversal, isn't one")
	}
	if math.Abs(after.R-before.R) > 1e-9 ||
		math.Abs(after.G-before.G) > 1e-9 ||
		math.Abs(after.B-before.B) > 1e-9 {
		t.Errorf("expected the reversal to hold the shown color, jumped %v -> %v", before, after)
	}
	if el.AnimationCount() != 1 {
		t.Error("expected the reversal animation to run, doesn't")
	}
}

func TestIdempotentTicks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	el := peacock.NewElement("box").WithStyles(widths(nil, 0))
	el.AddClass("wide")
	s := peacock.New()
	s.Tick(el, 0.1)
	first := el.Applied()
	s.Tick(el, 0.1)
	second := el.Applied()
	if !first.Equal(second) {
		t.Error("expected unchanged inputs to restyle identically, didn't")
	}
	if el.AnimationCount() != 0 {
		t.Errorf("expected no animation records, got %d", el.AnimationCount())
	}
}

func TestParentHoverScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		BackgroundColor(red).
		Selector(".menu:hover > &", func(b *style.Builder) { b.BackgroundColor(blue) }).
		MustBuild()
	menu := peacock.NewElement("menu").WithStyles(set)
	menu.AddClass("menu")
	item := peacock.NewElement("item").WithStyles(set)
	menu.AppendChild(item)

	s := peacock.New()
	menu.SetHovered(true)
	s.Tick(menu, 0)
	if v, _ := item.Applied().Prop(style.PropBackgroundColor); v != style.Paint(blue) {
		t.Errorf("expected the item below the hovered menu to be blue, is %s", v)
	}
	if v, _ := menu.Applied().Prop(style.PropBackgroundColor); v != style.Paint(red) {
		t.Errorf("expected the menu itself to stay red, is %s", v)
	}
}

func TestStructuralRestyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.engine")
	defer teardown()
	//
	set := style.NewStyle().
		Selector("&:first-child", func(b *style.Builder) { b.OutlineWidth(style.Px(1)) }).
		MustBuild()
	root := peacock.NewElement("root")
	a := peacock.NewElement("a").WithStyles(set)
	b := peacock.NewElement("b").WithStyles(set)
	root.AppendChild(a).AppendChild(b)

	s := peacock.New()
	s.Tick(root, 0)
	if _, ok := a.Applied().Prop(style.PropOutlineWidth); !ok {
		t.Error("expected the first child to get an outline, didn't")
	}
	if _, ok := b.Applied().Prop(style.PropOutlineWidth); ok {
		t.Error("expected the second child to get no outline, did")
	}

	root.RemoveChild(a)
	s.Tick(root, 0)
	if _, ok := b.Applied().Prop(style.PropOutlineWidth); !ok {
		t.Error("expected b to become first child and gain the outline, didn't")
	}
}
