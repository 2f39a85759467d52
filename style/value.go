package style

import (
	"math"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	valueNone uint32 = 0 // the zero value is "unset"

	valueAuto    uint32 = 0x0001
	valueDimen   uint32 = 0x0002
	valueNumber  uint32 = 0x0003
	valueColor   uint32 = 0x0004
	valueKeyword uint32 = 0x0005
	kindMask     uint32 = 0x000f

	// Flags for relative dimensions
	valuePercent uint32 = 0x0100
	valueVW      uint32 = 0x0200
	valueVH      uint32 = 0x0300
	valueVMIN    uint32 = 0x0400
	valueVMAX    uint32 = 0x0500
	relativeMask uint32 = 0xff00
)

// PxUnit is one CSS reference pixel in device units (1px = ¾pt).
const PxUnit = (3 * dimen.PT) / 4

// Value is an option type for style values.
type Value struct {
	flags uint32
	d     dimen.DU
	n     float64
	word  string
	col   Color
}

/*
type Value
	= Unset
	| Auto
	| JustDimen dimen
	| Percentage n
	| Viewport n unit
	| Num n
	| Paint color
	| Word keyword
*/

// Auto creates the 'auto' value.
func Auto() Value {
	return Value{flags: valueAuto}
}

// JustDimen creates an absolute length value of x device units.
func JustDimen(x dimen.DU) Value {
	return Value{d: x, flags: valueDimen}
}

// Px creates an absolute length value from CSS reference pixels.
func Px(pixels float64) Value {
	return Value{d: dimen.DU(math.Round(pixels * float64(PxUnit))), flags: valueDimen}
}

// Percentage creates a %-relative value. n is the percentage count, i.e.
// 50 for "50%"; fractional counts are legal.
func Percentage(n float64) Value {
	return Value{n: n, flags: valuePercent}
}

// Vw creates a viewport-width-relative value (n hundredths of the width).
func Vw(n float64) Value {
	return Value{n: n, flags: valueVW}
}

// Vh creates a viewport-height-relative value.
func Vh(n float64) Value {
	return Value{n: n, flags: valueVH}
}

// Vmin creates a value relative to the smaller viewport dimension.
func Vmin(n float64) Value {
	return Value{n: n, flags: valueVMIN}
}

// Vmax creates a value relative to the larger viewport dimension.
func Vmax(n float64) Value {
	return Value{n: n, flags: valueVMAX}
}

// Num creates a plain scalar value (flex factors, scale, rotation, …).
func Num(n float64) Value {
	return Value{n: n, flags: valueNumber}
}

// Word creates a keyword value such as "flex" or "absolute".
func Word(ident string) Value {
	return Value{word: ident, flags: valueKeyword}
}

// Paint creates a color value.
func Paint(c Color) Value {
	return Value{col: c, flags: valueColor}
}

// IsUnset reports whether v is the zero ("not set") value.
func (v Value) IsUnset() bool {
	return v.flags == valueNone
}

// AsPx converts an absolute length value to CSS reference pixels. The
// second return is false for every other kind of value.
func (v Value) AsPx() (float64, bool) {
	if v.flags != valueDimen {
		return 0, false
	}
	return float64(v.d) / float64(PxUnit), true
}

func (v Value) String() string {
	switch v.flags {
	case valueNone:
		return "unset"
	case valueAuto:
		return "auto"
	case valueDimen:
		return fmtFloat(float64(v.d)/float64(PxUnit)) + "px"
	case valuePercent:
		return fmtFloat(v.n) + "%"
	case valueVW:
		return fmtFloat(v.n) + "vw"
	case valueVH:
		return fmtFloat(v.n) + "vh"
	case valueVMIN:
		return fmtFloat(v.n) + "vmin"
	case valueVMAX:
		return fmtFloat(v.n) + "vmax"
	case valueNumber:
		return fmtFloat(v.n)
	case valueColor:
		return v.col.Hex()
	case valueKeyword:
		return v.word
	}
	return "invalid"
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// --- Matching --------------------------------------------------------------

func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

type Matcher struct {
	value Value
}

// IsKind matches when v's kind and unit equal the receiver's, payloads
// aside.
func (m *Matcher) IsKind(v Value) *Matcher {
	if m.value.flags == v.flags {
		return m
	}
	return nil
}

// Just extracts an absolute length.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.value.flags == valueDimen {
		if du != nil {
			*du = m.value.d
		}
		return m
	}
	return nil
}

// Percentage extracts a %-relative value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.value.flags == valuePercent {
		if p != nil {
			*p = m.value.n
		}
		return m
	}
	return nil
}

// Viewport extracts the count of any viewport-relative value; disambiguate
// the unit with IsKind if it matters.
func (m *Matcher) Viewport(n *float64) *Matcher {
	switch m.value.flags {
	case valueVW, valueVH, valueVMIN, valueVMAX:
		if n != nil {
			*n = m.value.n
		}
		return m
	}
	return nil
}

// Num extracts a plain scalar.
func (m *Matcher) Num(n *float64) *Matcher {
	if m.value.flags == valueNumber {
		if n != nil {
			*n = m.value.n
		}
		return m
	}
	return nil
}

// Paint extracts a color.
func (m *Matcher) Paint(c *Color) *Matcher {
	if m.value.flags == valueColor {
		if c != nil {
			*c = m.value.col
		}
		return m
	}
	return nil
}

// Word extracts a keyword.
func (m *Matcher) Word(w *string) *Matcher {
	if m.value.flags == valueKeyword {
		if w != nil {
			*w = m.value.word
		}
		return m
	}
	return nil
}

// --- Interpolation ---------------------------------------------------------

// Lerp interpolates between two values at fraction t in [0,1]. It requires
// both values to carry the same tag and the tag to be continuous: absolute
// lengths, percentages, viewport units of the same kind, numbers and
// colors. For everything else (keywords, auto, unset, mismatched tags) the
// second return is false and the caller is expected to snap to 'to'.
func Lerp(from, to Value, t float64) (Value, bool) {
	if from.flags != to.flags {
		return Value{}, false
	}
	switch {
	case from.flags == valueDimen:
		x := float64(from.d)*(1-t) + float64(to.d)*t
		return Value{d: dimen.DU(math.Round(x)), flags: valueDimen}, true
	case from.flags == valueNumber || from.flags&relativeMask > 0:
		return Value{n: from.n*(1-t) + to.n*t, flags: from.flags}, true
	case from.flags == valueColor:
		return Paint(from.col.Lerp(to.col, t)), true
	}
	return Value{}, false
}
