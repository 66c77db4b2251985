package slatelog

import (
	"strconv"
	"strings"
)

// align is the fill/alignment mode of a parsed format spec.
type align byte

const (
	alignNone   align = 0
	alignLeft   align = '<'
	alignRight  align = '>'
	alignCenter align = '^'
)

// specFmt is a parsed format spec: [[fill]align][width]['.'precision], used
// by the string formatter's placeholder/severity/timestamp handling. No
// type field is parsed; characters after the precision are ignored, as are
// malformed specs. Values are first rendered to
// their default textual form (respecting precision for floats/strings),
// then padded to width using fill and align.
type specFmt struct {
	fill      rune
	align     align
	width     int
	precision int
	hasPrec   bool
}

// parseSpec parses a token spec. raw may be empty or may carry a leading
// ':' (Token.Spec always does, when present); both are accepted.
func parseSpec(raw string) specFmt {
	s := strings.TrimPrefix(raw, ":")
	f := specFmt{fill: ' '}
	if s == "" {
		return f
	}

	runes := []rune(s)
	i := 0
	if len(runes) >= 2 && isAlignRune(runes[1]) {
		f.fill = runes[0]
		f.align = align(runes[1])
		i = 2
	} else if len(runes) >= 1 && isAlignRune(runes[0]) {
		f.align = align(runes[0])
		i = 1
	}

	widthStart := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i > widthStart {
		f.width, _ = strconv.Atoi(string(runes[widthStart:i]))
	}

	if i < len(runes) && runes[i] == '.' {
		i++
		precStart := i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		f.precision, _ = strconv.Atoi(string(runes[precStart:i]))
		f.hasPrec = true
	}

	return f
}

func isAlignRune(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

// render renders v to text honoring f's precision (floats get
// strconv.FormatFloat at the given precision, strings are truncated to it),
// then pads the result to f's width using f's fill and alignment.
func (f specFmt) render(v Value) string {
	var s string
	switch v.kind {
	case KindFloat64:
		if f.hasPrec {
			s = strconv.FormatFloat(v.f, 'f', f.precision, 64)
		} else {
			s = v.Text()
		}
	case KindString:
		s = v.s
		if f.hasPrec && f.precision < len(s) {
			s = s[:f.precision]
		}
	default:
		s = v.Text()
	}
	return f.pad(s, v.kind)
}

// renderText pads an already-rendered string (used for Severity names and
// Timestamp output, which have no Value/Kind of their own).
func (f specFmt) renderText(s string) string {
	return f.pad(s, KindString)
}

func (f specFmt) pad(s string, kind ValueKind) string {
	if f.width <= len(s) {
		return s
	}
	padding := f.width - len(s)
	a := f.align
	if a == alignNone {
		if kind == KindString {
			a = alignLeft
		} else {
			a = alignRight
		}
	}
	fill := string(f.fill)
	switch a {
	case alignLeft:
		return s + strings.Repeat(fill, padding)
	case alignRight:
		return strings.Repeat(fill, padding) + s
	case alignCenter:
		left := padding / 2
		right := padding - left
		return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
	default:
		return s
	}
}
