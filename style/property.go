package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// PropID enumerates every stylable attribute. The numeric order is fixed
// and used for deterministic iteration only; it never encodes priority.
type PropID uint8

const (
	PropDisplay PropID = iota
	PropPosition
	PropOverflow
	PropDirection
	PropLeft
	PropRight
	PropTop
	PropBottom
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropAspectRatio
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMarginBottom
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPaddingBottom
	PropBorderLeft
	PropBorderRight
	PropBorderTop
	PropBorderBottom
	PropFlexDirection
	PropFlexWrap
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropRowGap
	PropColumnGap
	PropAlignItems
	PropAlignSelf
	PropAlignContent
	PropJustifyItems
	PropJustifySelf
	PropJustifyContent
	PropBackgroundColor
	PropBorderColor
	PropColor
	PropOutlineColor
	PropOutlineWidth
	PropOutlineOffset
	PropZIndex
	PropFontSize
	PropPointerEvents
	PropScaleX
	PropScaleY
	PropRotation

	propCount // must stay last
)

// PropClass partitions properties by the value syntax they accept.
type PropClass uint8

const (
	LengthProp  PropClass = iota // absolute/percent/viewport lengths and auto
	NumberProp                   // plain scalar
	IntegerProp                  // scalar restricted to integers (z_index)
	ColorProp
	WordProp // keyword from a fixed per-property vocabulary
)

type propInfo struct {
	name  string
	class PropClass
	words []string
}

var alignWords = []string{"default", "start", "end", "flex_start", "flex_end", "center", "baseline", "stretch"}
var alignSelfWords = []string{"auto", "start", "end", "flex_start", "flex_end", "center", "baseline", "stretch"}
var contentWords = []string{"default", "start", "end", "flex_start", "flex_end", "center", "stretch", "space_between", "space_evenly", "space_around"}
var justifyWords = []string{"default", "start", "end", "center", "baseline", "stretch"}
var justifySelfWords = []string{"auto", "start", "end", "center", "baseline", "stretch"}

var propTable = [propCount]propInfo{
	PropDisplay:        {"display", WordProp, []string{"flex", "grid", "block", "none"}},
	PropPosition:       {"position", WordProp, []string{"relative", "absolute"}},
	PropOverflow:       {"overflow", WordProp, []string{"visible", "clip", "hidden", "scroll"}},
	PropDirection:      {"direction", WordProp, []string{"inherit", "ltr", "rtl"}},
	PropLeft:           {"left", LengthProp, nil},
	PropRight:          {"right", LengthProp, nil},
	PropTop:            {"top", LengthProp, nil},
	PropBottom:         {"bottom", LengthProp, nil},
	PropWidth:          {"width", LengthProp, nil},
	PropHeight:         {"height", LengthProp, nil},
	PropMinWidth:       {"min_width", LengthProp, nil},
	PropMinHeight:      {"min_height", LengthProp, nil},
	PropMaxWidth:       {"max_width", LengthProp, nil},
	PropMaxHeight:      {"max_height", LengthProp, nil},
	PropAspectRatio:    {"aspect_ratio", NumberProp, nil},
	PropMarginLeft:     {"margin_left", LengthProp, nil},
	PropMarginRight:    {"margin_right", LengthProp, nil},
	PropMarginTop:      {"margin_top", LengthProp, nil},
	PropMarginBottom:   {"margin_bottom", LengthProp, nil},
	PropPaddingLeft:    {"padding_left", LengthProp, nil},
	PropPaddingRight:   {"padding_right", LengthProp, nil},
	PropPaddingTop:     {"padding_top", LengthProp, nil},
	PropPaddingBottom:  {"padding_bottom", LengthProp, nil},
	PropBorderLeft:     {"border_left", LengthProp, nil},
	PropBorderRight:    {"border_right", LengthProp, nil},
	PropBorderTop:      {"border_top", LengthProp, nil},
	PropBorderBottom:   {"border_bottom", LengthProp, nil},
	PropFlexDirection:  {"flex_direction", WordProp, []string{"row", "column", "row_reverse", "column_reverse"}},
	PropFlexWrap:       {"flex_wrap", WordProp, []string{"nowrap", "wrap", "wrap_reverse"}},
	PropFlexGrow:       {"flex_grow", NumberProp, nil},
	PropFlexShrink:     {"flex_shrink", NumberProp, nil},
	PropFlexBasis:      {"flex_basis", LengthProp, nil},
	PropRowGap:         {"row_gap", LengthProp, nil},
	PropColumnGap:      {"column_gap", LengthProp, nil},
	PropAlignItems:     {"align_items", WordProp, alignWords},
	PropAlignSelf:      {"align_self", WordProp, alignSelfWords},
	PropAlignContent:   {"align_content", WordProp, contentWords},
	PropJustifyItems:   {"justify_items", WordProp, justifyWords},
	PropJustifySelf:    {"justify_self", WordProp, justifySelfWords},
	PropJustifyContent: {"justify_content", WordProp, contentWords},

	PropBackgroundColor: {"background_color", ColorProp, nil},
	PropBorderColor:     {"border_color", ColorProp, nil},
	PropColor:           {"color", ColorProp, nil},
	PropOutlineColor:    {"outline_color", ColorProp, nil},
	PropOutlineWidth:    {"outline_width", LengthProp, nil},
	PropOutlineOffset:   {"outline_offset", LengthProp, nil},
	PropZIndex:          {"z_index", IntegerProp, nil},
	PropFontSize:        {"font_size", NumberProp, nil},
	PropPointerEvents:   {"pointer_events", WordProp, []string{"auto", "none"}},
	PropScaleX:          {"scale_x", NumberProp, nil},
	PropScaleY:          {"scale_y", NumberProp, nil},
	PropRotation:        {"rotation", NumberProp, nil},
}

var propByName map[string]PropID

func init() {
	propByName = make(map[string]PropID, propCount)
	for p := PropID(0); p < propCount; p++ {
		propByName[propTable[p].name] = p
	}
}

// String returns the property's canonical snake_case name, as used by the
// stylesheet format.
func (p PropID) String() string {
	if p >= propCount {
		return "invalid"
	}
	return propTable[p].name
}

// Class returns the value class the property accepts.
func (p PropID) Class() PropClass {
	if p >= propCount {
		return WordProp
	}
	return propTable[p].class
}

// Keywords returns the keyword vocabulary for WordProp properties, nil for
// all others. Callers must not modify the returned slice.
func (p PropID) Keywords() []string {
	if p >= propCount {
		return nil
	}
	return propTable[p].words
}

// PropByName resolves a canonical property name to its PropID.
func PropByName(name string) (PropID, bool) {
	p, ok := propByName[name]
	return p, ok
}

// NumProperties returns the size of the property enumeration.
func NumProperties() int {
	return int(propCount)
}
