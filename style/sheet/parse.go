package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/tyse/core/dimen"

	"github.com/npillmayer/peacock/style"
	"github.com/npillmayer/peacock/style/selector"
	"github.com/npillmayer/peacock/style/timing"
)

// Parse reads a stylesheet from src. It either returns a complete sheet or
// the first error encountered, as a *ParseError.
func Parse(src string) (*Sheet, error) {
	p := &parser{sc: scanner.New(src)}
	sh := &Sheet{styles: make(map[string]*style.Set)}
	for {
		tok := p.next()
		switch {
		case tok.Type == scanner.TokenEOF:
			tracer().Debugf("stylesheet with %d styles parsed", len(sh.names))
			return sh, nil
		case tok.Type == scanner.TokenError:
			return nil, perr(tok, ErrSyntax)
		case tok.Type != scanner.TokenIdent:
			return nil, perr(tok, ErrSyntax)
		}
		name := tok.Value
		if br := p.next(); !isChar(br, "{") {
			return nil, perr(br, ErrSyntax)
		}
		b := style.NewStyle()
		if err := p.block(b); err != nil {
			return nil, err
		}
		set, err := b.Build()
		if err != nil {
			return nil, &ParseError{Line: tok.Line, Column: tok.Column, Token: name, Err: err}
		}
		if _, dup := sh.styles[name]; dup {
			err := fmt.Errorf("%w: style %q redefined", ErrSyntax, name)
			return nil, &ParseError{Line: tok.Line, Column: tok.Column, Token: name, Err: err}
		}
		tracer().Debugf("parsed style %q", name)
		sh.names = append(sh.names, name)
		sh.styles[name] = set
	}
}

type parser struct {
	sc *scanner.Scanner
}

// next returns the next token that is not whitespace or a comment.
func (p *parser) next() *scanner.Token {
	for {
		tok := p.sc.Next()
		switch tok.Type {
		case scanner.TokenS, scanner.TokenComment, scanner.TokenBOM:
			continue
		}
		return tok
	}
}

// block parses statements up to and including the closing brace. Statements
// are property declarations, nested selector rules and transition
// shorthands.
func (p *parser) block(b *style.Builder) error {
	for {
		stmt, stop, err := p.statement()
		if err != nil {
			return err
		}
		switch stop {
		case "{":
			if err := p.nested(b, stmt); err != nil {
				return err
			}
		default: // ";" or "}"; empty statements are tolerated
			if len(content(stmt)) > 0 {
				if err := p.declaration(b, stmt); err != nil {
					return err
				}
			}
			if stop == "}" {
				return nil
			}
		}
	}
}

// statement buffers raw tokens up to the next '{', ';' or '}'. Comments
// count as whitespace.
func (p *parser) statement() (toks []*scanner.Token, stop string, err error) {
	for {
		tok := p.sc.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return nil, "", perr(tok, ErrSyntax)
		case scanner.TokenBOM:
			continue
		case scanner.TokenComment:
			toks = append(toks, &scanner.Token{Type: scanner.TokenS, Value: " ", Line: tok.Line, Column: tok.Column})
			continue
		case scanner.TokenChar:
			switch tok.Value {
			case "{", ";", "}":
				return toks, tok.Value, nil
			}
		}
		toks = append(toks, tok)
	}
}

// nested parses the body of a selector rule; stmt holds the buffered
// selector text preceding '{'.
func (p *parser) nested(b *style.Builder, stmt []*scanner.Token) error {
	line, col := position(stmt)
	selText := strings.TrimSpace(joined(stmt))
	sel, err := selector.Parse(selText)
	if err != nil {
		return &ParseError{Line: line, Column: col, Token: selText, Err: err}
	}
	sub := style.NewStyle()
	if err := p.block(sub); err != nil {
		return err
	}
	props, err := sub.Build()
	if err != nil {
		return &ParseError{Line: line, Column: col, Token: selText, Err: err}
	}
	b.Rule(sel, props)
	return nil
}

func (p *parser) declaration(b *style.Builder, stmt []*scanner.Token) error {
	toks := content(stmt)
	name := toks[0]
	if name.Type != scanner.TokenIdent {
		return perr(name, ErrSyntax)
	}
	if len(toks) < 2 {
		return perr(name, ErrSyntax)
	}
	if !isChar(toks[1], ":") {
		return perr(toks[1], ErrSyntax)
	}
	value := toks[2:]
	if propName(name.Value) == "transition" {
		return p.transitions(b, value, name)
	}
	pid, ok := style.PropByName(propName(name.Value))
	if !ok {
		return perr(name, ErrUnknownProperty)
	}
	v, err := p.valueOf(pid, value, name)
	if err != nil {
		return err
	}
	b.Prop(pid, v)
	return nil
}

func (p *parser) valueOf(pid style.PropID, toks []*scanner.Token, at *scanner.Token) (style.Value, error) {
	if len(toks) == 0 {
		return style.Value{}, perr(at, ErrBadValue)
	}
	sign := 1.0
	if isChar(toks[0], "-") {
		sign = -1
		toks = toks[1:]
		if len(toks) == 0 {
			return style.Value{}, perr(at, ErrBadValue)
		}
	}
	head := toks[0]
	switch pid.Class() {
	case style.LengthProp:
		if len(toks) != 1 {
			return style.Value{}, perr(toks[1], ErrBadValue)
		}
		return length(head, sign)
	case style.NumberProp, style.IntegerProp:
		if len(toks) != 1 || head.Type != scanner.TokenNumber {
			return style.Value{}, perr(head, ErrBadValue)
		}
		f, err := strconv.ParseFloat(head.Value, 64)
		if err != nil {
			return style.Value{}, perr(head, ErrBadValue)
		}
		f *= sign
		if pid.Class() == style.IntegerProp && f != math.Trunc(f) {
			return style.Value{}, perr(head, ErrBadValue)
		}
		return style.Num(f), nil
	case style.ColorProp:
		if sign < 0 {
			return style.Value{}, perr(head, ErrBadValue)
		}
		return color(toks)
	case style.WordProp:
		if sign < 0 || len(toks) != 1 || head.Type != scanner.TokenIdent {
			return style.Value{}, perr(head, ErrBadValue)
		}
		for _, w := range pid.Keywords() {
			if w == head.Value {
				return style.Word(head.Value), nil
			}
		}
		return style.Value{}, perr(head, ErrBadValue)
	}
	return style.Value{}, perr(head, ErrBadValue)
}

func length(tok *scanner.Token, sign float64) (style.Value, error) {
	switch tok.Type {
	case scanner.TokenIdent:
		if tok.Value == "auto" && sign > 0 {
			return style.Auto(), nil
		}
	case scanner.TokenNumber: // bare numbers are pixels
		if f, err := strconv.ParseFloat(tok.Value, 64); err == nil {
			return style.Px(sign * f), nil
		}
	case scanner.TokenPercentage:
		if f, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64); err == nil {
			return style.Percentage(sign * f), nil
		}
	case scanner.TokenDimension:
		i := strings.IndexFunc(tok.Value, unicode.IsLetter)
		if i <= 0 {
			break
		}
		f, err := strconv.ParseFloat(tok.Value[:i], 64)
		if err != nil {
			break
		}
		f *= sign
		switch strings.ToLower(tok.Value[i:]) {
		case "px":
			return style.Px(f), nil
		case "pt":
			return style.JustDimen(dimen.DU(math.Round(f * float64(dimen.PT)))), nil
		case "vw":
			return style.Vw(f), nil
		case "vh":
			return style.Vh(f), nil
		case "vmin":
			return style.Vmin(f), nil
		case "vmax":
			return style.Vmax(f), nil
		}
	}
	return style.Value{}, perr(tok, ErrBadValue)
}

func color(toks []*scanner.Token) (style.Value, error) {
	head := toks[0]
	switch head.Type {
	case scanner.TokenHash:
		if len(toks) != 1 {
			return style.Value{}, perr(toks[1], ErrBadValue)
		}
		c, err := style.HexColor(head.Value)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrBadValue, err)
			return style.Value{}, &ParseError{Line: head.Line, Column: head.Column, Token: head.Value, Err: err}
		}
		return style.Paint(c), nil
	case scanner.TokenFunction:
		return colorCall(head, toks[1:])
	}
	return style.Value{}, perr(head, ErrBadValue)
}

// colorCall parses the argument list of rgb(), rgba(), hsl() and hsla().
func colorCall(fn *scanner.Token, toks []*scanner.Token) (style.Value, error) {
	if len(toks) == 0 || !isChar(toks[len(toks)-1], ")") {
		return style.Value{}, perr(fn, ErrBadValue)
	}
	var args []float64
	var pct []bool
	expectComma := false
	for _, t := range toks[:len(toks)-1] {
		if expectComma {
			if !isChar(t, ",") {
				return style.Value{}, perr(t, ErrBadValue)
			}
			expectComma = false
			continue
		}
		switch t.Type {
		case scanner.TokenNumber:
			f, err := strconv.ParseFloat(t.Value, 64)
			if err != nil {
				return style.Value{}, perr(t, ErrBadValue)
			}
			args = append(args, f)
			pct = append(pct, false)
		case scanner.TokenPercentage:
			f, err := strconv.ParseFloat(strings.TrimSuffix(t.Value, "%"), 64)
			if err != nil {
				return style.Value{}, perr(t, ErrBadValue)
			}
			args = append(args, f)
			pct = append(pct, true)
		default:
			return style.Value{}, perr(t, ErrBadValue)
		}
		expectComma = true
	}
	channel := func(i int) float64 { // rgb channels are 0..255 or percentages
		if pct[i] {
			return clamp01(args[i] / 100)
		}
		return clamp01(args[i] / 255)
	}
	alpha := func(i int) float64 { // alpha is 0..1 or a percentage
		if pct[i] {
			return clamp01(args[i] / 100)
		}
		return clamp01(args[i])
	}
	fraction := alpha // saturation and lightness read like alpha
	switch strings.ToLower(strings.TrimSuffix(fn.Value, "(")) {
	case "rgb":
		if len(args) == 3 {
			return style.Paint(style.RGB(channel(0), channel(1), channel(2))), nil
		}
	case "rgba":
		if len(args) == 4 {
			return style.Paint(style.RGBA(channel(0), channel(1), channel(2), alpha(3))), nil
		}
	case "hsl":
		if len(args) == 3 {
			return style.Paint(style.HSL(args[0], fraction(1), fraction(2))), nil
		}
	case "hsla":
		if len(args) == 4 {
			return style.Paint(style.HSLA(args[0], fraction(1), fraction(2), alpha(3))), nil
		}
	}
	return style.Value{}, perr(fn, ErrBadValue)
}

// transitions parses the comma-separated entries of a transition shorthand,
// each of the form 'prop duration [timing] [delay]'.
func (p *parser) transitions(b *style.Builder, toks []*scanner.Token, at *scanner.Token) error {
	var entries [][]*scanner.Token
	var cur []*scanner.Token
	for _, t := range toks {
		if isChar(t, ",") {
			entries = append(entries, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	entries = append(entries, cur)
	for _, e := range entries {
		if err := p.transition(b, e, at); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) transition(b *style.Builder, toks []*scanner.Token, at *scanner.Token) error {
	if len(toks) < 2 {
		return perr(at, ErrBadValue)
	}
	if toks[0].Type != scanner.TokenIdent {
		return perr(toks[0], ErrBadValue)
	}
	pid, ok := style.PropByName(propName(toks[0].Value))
	if !ok {
		return perr(toks[0], ErrUnknownProperty)
	}
	dur, err := seconds(toks[1])
	if err != nil {
		return err
	}
	var fn timing.Function
	var delay float64
	haveTiming, haveDelay := false, false
	for _, t := range toks[2:] {
		switch {
		case t.Type == scanner.TokenIdent && !haveTiming:
			f, ok := timing.ByName(t.Value)
			if !ok {
				return perr(t, ErrBadValue)
			}
			fn = f
			haveTiming = true
		case t.Type == scanner.TokenDimension && !haveDelay:
			d, err := seconds(t)
			if err != nil {
				return err
			}
			delay = d
			haveDelay = true
		default:
			return perr(t, ErrBadValue)
		}
	}
	b.Transition(pid, dur, delay, fn)
	return nil
}

// seconds reads a duration token, '0.3s' or '300ms'.
func seconds(tok *scanner.Token) (float64, error) {
	if tok.Type == scanner.TokenDimension {
		i := strings.IndexFunc(tok.Value, unicode.IsLetter)
		if i > 0 {
			if f, err := strconv.ParseFloat(tok.Value[:i], 64); err == nil {
				switch strings.ToLower(tok.Value[i:]) {
				case "s":
					return f, nil
				case "ms":
					return f / 1000, nil
				}
			}
		}
	}
	return 0, perr(tok, ErrBadValue)
}

// --- Token helpers ---------------------------------------------------------

func isChar(tok *scanner.Token, ch string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == ch
}

// content drops whitespace tokens.
func content(toks []*scanner.Token) []*scanner.Token {
	var out []*scanner.Token
	for _, t := range toks {
		if t.Type != scanner.TokenS {
			out = append(out, t)
		}
	}
	return out
}

// joined reconstructs source text, collapsing whitespace runs.
func joined(toks []*scanner.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		if t.Type == scanner.TokenS {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(t.Value)
	}
	return sb.String()
}

func position(toks []*scanner.Token) (line, col int) {
	for _, t := range toks {
		if t.Type != scanner.TokenS {
			return t.Line, t.Column
		}
	}
	if len(toks) > 0 {
		return toks[0].Line, toks[0].Column
	}
	return 1, 1
}

func propName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
