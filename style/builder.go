package style

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/peacock/style/selector"
	"github.com/npillmayer/peacock/style/timing"
)

// validate checks a value against the property's class before it enters a
// Set. Everything behind this check is trusted by the resolver.
func validate(p PropID, v Value) error {
	if p >= propCount {
		return fmt.Errorf("unknown property id %d", p)
	}
	if v.IsUnset() {
		return fmt.Errorf("property %s: cannot declare the unset value", p)
	}
	switch p.Class() {
	case LengthProp:
		if v.flags == valueDimen || v.flags == valueAuto || v.flags&relativeMask > 0 {
			return nil
		}
		return fmt.Errorf("property %s wants a length, got %s", p, v)
	case NumberProp:
		if v.flags == valueNumber {
			return nil
		}
		return fmt.Errorf("property %s wants a number, got %s", p, v)
	case IntegerProp:
		if v.flags == valueNumber && v.n == math.Trunc(v.n) {
			return nil
		}
		return fmt.Errorf("property %s wants an integer, got %s", p, v)
	case ColorProp:
		if v.flags == valueColor {
			return nil
		}
		return fmt.Errorf("property %s wants a color, got %s", p, v)
	case WordProp:
		if v.flags != valueKeyword {
			return fmt.Errorf("property %s wants a keyword, got %s", p, v)
		}
		for _, w := range p.Keywords() {
			if w == v.word {
				return nil
			}
		}
		return fmt.Errorf("property %s does not accept keyword %q", p, v.word)
	}
	return nil
}

// Builder assembles an immutable Set. Builders are single-use: after Build
// the builder must be discarded. All setters return the receiver for
// chaining; errors (bad keywords, malformed selectors) are collected and
// surface from Build.
type Builder struct {
	props       map[PropID]Value
	rules       []Rule
	transitions []Transition
	err         error
	built       bool
}

// NewStyle starts a fresh style declaration.
func NewStyle() *Builder {
	return &Builder{props: make(map[PropID]Value)}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Prop declares a property with an explicit value. The typed setters below
// are sugar over this.
func (b *Builder) Prop(p PropID, v Value) *Builder {
	if err := validate(p, v); err != nil {
		return b.fail(err)
	}
	b.props[p] = v
	return b
}

// Selector declares a nested rule: fn populates the Set that applies when
// sel matches the element being styled.
func (b *Builder) Selector(sel string, fn func(*Builder)) *Builder {
	parsed, err := selector.Parse(sel)
	if err != nil {
		return b.fail(err)
	}
	sub := NewStyle()
	fn(sub)
	set, err := sub.Build()
	if err != nil {
		return b.fail(err)
	}
	return b.Rule(parsed, set)
}

// Rule attaches an already-parsed nested rule.
func (b *Builder) Rule(sel *selector.Selector, props *Set) *Builder {
	if sel == nil || props == nil {
		return b.fail(errors.New("a rule needs both a selector and a property set"))
	}
	b.rules = append(b.rules, Rule{Sel: sel, Props: props})
	return b
}

// Transition declares that changes to prop animate over duration seconds,
// after delay seconds, shaped by fn (nil means linear).
func (b *Builder) Transition(prop PropID, duration, delay float64, fn timing.Function) *Builder {
	if fn == nil {
		fn = timing.Linear
	}
	b.transitions = append(b.transitions, Transition{Property: prop, Duration: duration, Delay: delay, Timing: fn})
	return b
}

// Build freezes the declarations into an immutable Set.
func (b *Builder) Build() (*Set, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, errors.New("style builder is single-use and was already built")
	}
	b.built = true
	s := &Set{props: b.props, rules: b.rules, transitions: b.transitions}
	for _, r := range b.rules {
		d := r.Sel.Depth()
		if sub := r.Props.Depth(); sub > d {
			d = sub
		}
		if d > s.depth {
			s.depth = d
		}
		if r.Sel.UsesHover() || r.Props.UsesHover() {
			s.hover = true
		}
	}
	return s, nil
}

// MustBuild is Build for declarations known to be well-formed; it panics on
// a collected error.
func (b *Builder) MustBuild() *Set {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// --- Typed setters ---------------------------------------------------------

func (b *Builder) Display(kw string) *Builder   { return b.Prop(PropDisplay, Word(kw)) }
func (b *Builder) Position(kw string) *Builder  { return b.Prop(PropPosition, Word(kw)) }
func (b *Builder) Overflow(kw string) *Builder  { return b.Prop(PropOverflow, Word(kw)) }
func (b *Builder) Direction(kw string) *Builder { return b.Prop(PropDirection, Word(kw)) }

func (b *Builder) Left(v Value) *Builder   { return b.Prop(PropLeft, v) }
func (b *Builder) Right(v Value) *Builder  { return b.Prop(PropRight, v) }
func (b *Builder) Top(v Value) *Builder    { return b.Prop(PropTop, v) }
func (b *Builder) Bottom(v Value) *Builder { return b.Prop(PropBottom, v) }

func (b *Builder) Width(v Value) *Builder     { return b.Prop(PropWidth, v) }
func (b *Builder) Height(v Value) *Builder    { return b.Prop(PropHeight, v) }
func (b *Builder) MinWidth(v Value) *Builder  { return b.Prop(PropMinWidth, v) }
func (b *Builder) MinHeight(v Value) *Builder { return b.Prop(PropMinHeight, v) }
func (b *Builder) MaxWidth(v Value) *Builder  { return b.Prop(PropMaxWidth, v) }
func (b *Builder) MaxHeight(v Value) *Builder { return b.Prop(PropMaxHeight, v) }

func (b *Builder) AspectRatio(r float64) *Builder { return b.Prop(PropAspectRatio, Num(r)) }

// Margin sets all four margin sides at once.
func (b *Builder) Margin(v Value) *Builder {
	return b.MarginLeft(v).MarginRight(v).MarginTop(v).MarginBottom(v)
}

func (b *Builder) MarginLeft(v Value) *Builder   { return b.Prop(PropMarginLeft, v) }
func (b *Builder) MarginRight(v Value) *Builder  { return b.Prop(PropMarginRight, v) }
func (b *Builder) MarginTop(v Value) *Builder    { return b.Prop(PropMarginTop, v) }
func (b *Builder) MarginBottom(v Value) *Builder { return b.Prop(PropMarginBottom, v) }

// Padding sets all four padding sides at once.
func (b *Builder) Padding(v Value) *Builder {
	return b.PaddingLeft(v).PaddingRight(v).PaddingTop(v).PaddingBottom(v)
}

func (b *Builder) PaddingLeft(v Value) *Builder   { return b.Prop(PropPaddingLeft, v) }
func (b *Builder) PaddingRight(v Value) *Builder  { return b.Prop(PropPaddingRight, v) }
func (b *Builder) PaddingTop(v Value) *Builder    { return b.Prop(PropPaddingTop, v) }
func (b *Builder) PaddingBottom(v Value) *Builder { return b.Prop(PropPaddingBottom, v) }

// Border sets all four border widths at once.
func (b *Builder) Border(v Value) *Builder {
	return b.BorderLeft(v).BorderRight(v).BorderTop(v).BorderBottom(v)
}

func (b *Builder) BorderLeft(v Value) *Builder   { return b.Prop(PropBorderLeft, v) }
func (b *Builder) BorderRight(v Value) *Builder  { return b.Prop(PropBorderRight, v) }
func (b *Builder) BorderTop(v Value) *Builder    { return b.Prop(PropBorderTop, v) }
func (b *Builder) BorderBottom(v Value) *Builder { return b.Prop(PropBorderBottom, v) }

func (b *Builder) FlexDirection(kw string) *Builder { return b.Prop(PropFlexDirection, Word(kw)) }
func (b *Builder) FlexWrap(kw string) *Builder      { return b.Prop(PropFlexWrap, Word(kw)) }
func (b *Builder) FlexGrow(n float64) *Builder      { return b.Prop(PropFlexGrow, Num(n)) }
func (b *Builder) FlexShrink(n float64) *Builder    { return b.Prop(PropFlexShrink, Num(n)) }
func (b *Builder) FlexBasis(v Value) *Builder       { return b.Prop(PropFlexBasis, v) }

// Gap sets the row and column gaps at once.
func (b *Builder) Gap(v Value) *Builder { return b.RowGap(v).ColumnGap(v) }

func (b *Builder) RowGap(v Value) *Builder    { return b.Prop(PropRowGap, v) }
func (b *Builder) ColumnGap(v Value) *Builder { return b.Prop(PropColumnGap, v) }

func (b *Builder) AlignItems(kw string) *Builder     { return b.Prop(PropAlignItems, Word(kw)) }
func (b *Builder) AlignSelf(kw string) *Builder      { return b.Prop(PropAlignSelf, Word(kw)) }
func (b *Builder) AlignContent(kw string) *Builder   { return b.Prop(PropAlignContent, Word(kw)) }
func (b *Builder) JustifyItems(kw string) *Builder   { return b.Prop(PropJustifyItems, Word(kw)) }
func (b *Builder) JustifySelf(kw string) *Builder    { return b.Prop(PropJustifySelf, Word(kw)) }
func (b *Builder) JustifyContent(kw string) *Builder { return b.Prop(PropJustifyContent, Word(kw)) }

func (b *Builder) BackgroundColor(c Color) *Builder { return b.Prop(PropBackgroundColor, Paint(c)) }
func (b *Builder) BorderColor(c Color) *Builder     { return b.Prop(PropBorderColor, Paint(c)) }
func (b *Builder) Color(c Color) *Builder           { return b.Prop(PropColor, Paint(c)) }
func (b *Builder) OutlineColor(c Color) *Builder    { return b.Prop(PropOutlineColor, Paint(c)) }

func (b *Builder) OutlineWidth(v Value) *Builder  { return b.Prop(PropOutlineWidth, v) }
func (b *Builder) OutlineOffset(v Value) *Builder { return b.Prop(PropOutlineOffset, v) }

func (b *Builder) ZIndex(z int) *Builder            { return b.Prop(PropZIndex, Num(float64(z))) }
func (b *Builder) FontSize(s float64) *Builder      { return b.Prop(PropFontSize, Num(s)) }
func (b *Builder) PointerEvents(kw string) *Builder { return b.Prop(PropPointerEvents, Word(kw)) }

// Scale sets both scale axes at once.
func (b *Builder) Scale(s float64) *Builder { return b.ScaleX(s).ScaleY(s) }

func (b *Builder) ScaleX(s float64) *Builder   { return b.Prop(PropScaleX, Num(s)) }
func (b *Builder) ScaleY(s float64) *Builder   { return b.Prop(PropScaleY, Num(s)) }
func (b *Builder) Rotation(r float64) *Builder { return b.Prop(PropRotation, Num(r)) }
