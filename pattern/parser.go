package pattern

import "strings"

// state is the parser's current lexical mode.
type state int

const (
	stWhatever state = iota
	stLiteral
	stPlaceholder
	stBroken
)

// nameByte reports whether ch can appear inside a placeholder name.
// Digits are accepted anywhere, including the first position, mirroring
// the original tokenizer rather than the stricter [A-Za-z_][A-Za-z0-9_]*
// grammar note in the data model (which describes the shape of a
// well-formed name, not an extra parse-time check).
func nameByte(ch byte) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9' || ch == '_'
}

// Parser tokenizes a pattern string one Token at a time. It is a single-use,
// single-pass generator: construct with New, call Next until it reports no
// more tokens or returns an error. A Parser is not safe for concurrent use,
// and once Next returns an error every subsequent call fails with a
// BrokenParser error.
type Parser struct {
	pattern string
	pos     int
	state   state
	brokenAt *ParseError
}

// New constructs a Parser over pattern. Parsing does not start until the
// first call to Next.
func New(pattern string) *Parser {
	return &Parser{pattern: pattern}
}

// Next returns the next token in the pattern. ok is false, with a nil error,
// at end of input. Once Next has returned a non-nil error, every subsequent
// call returns a BrokenParser error.
func (p *Parser) Next() (tok Token, ok bool, err error) {
	for {
		switch p.state {
		case stBroken:
			return Token{}, false, p.brokenError()
		case stWhatever:
			if p.pos >= len(p.pattern) {
				return Token{}, false, nil
			}
			if p.hasPrefix("{{") {
				p.state = stLiteral
				continue
			}
			if p.pattern[p.pos] == '{' {
				p.pos++
				p.state = stPlaceholder
				continue
			}
			p.state = stLiteral
			continue
		case stLiteral:
			t, lerr := p.parseLiteral()
			if lerr != nil {
				return Token{}, false, p.fail(lerr)
			}
			return t, true, nil
		case stPlaceholder:
			t, perr := p.parsePlaceholder()
			if perr != nil {
				return Token{}, false, p.fail(perr)
			}
			return t, true, nil
		}
	}
}

// Parse runs p to completion and returns every token, or the first error
// encountered.
func (p *Parser) Parse() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Parse tokenizes pattern in full. It is a convenience wrapper around
// New(pattern).Parse() for callers that don't need streaming semantics.
func ParsePattern(patternStr string) ([]Token, error) {
	return New(patternStr).Parse()
}

func (p *Parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.pattern[p.pos:], s)
}

func (p *Parser) fail(err *ParseError) *ParseError {
	p.state = stBroken
	p.brokenAt = err
	return err
}

func (p *Parser) brokenError() *ParseError {
	pos := p.pos
	if p.brokenAt != nil {
		pos = p.brokenAt.Pos
	}
	return &ParseError{Kind: BrokenParser, Pos: pos, Pattern: p.pattern}
}

// parseLiteral accumulates literal text starting at p.pos, collapsing {{
// and }} escapes, until it hits an unescaped '{' (the start of a
// placeholder), a bare '}' (an error), or end of input.
func (p *Parser) parseLiteral() (Token, *ParseError) {
	var sb strings.Builder
	for p.pos < len(p.pattern) {
		if p.hasPrefix("{{") {
			sb.WriteByte('{')
			p.pos += 2
			continue
		}
		if p.hasPrefix("}}") {
			sb.WriteByte('}')
			p.pos += 2
			continue
		}
		ch := p.pattern[p.pos]
		switch ch {
		case '{':
			p.pos++
			p.state = stPlaceholder
			return Token{Kind: Literal, Value: sb.String()}, nil
		case '}':
			return Token{}, &ParseError{Kind: Illformed, Pos: p.pos, Pattern: p.pattern}
		default:
			sb.WriteByte(ch)
			p.pos++
		}
	}
	p.state = stWhatever
	return Token{Kind: Literal, Value: sb.String()}, nil
}

// parsePlaceholder runs from just after the opening '{' of a placeholder:
// it collects a name, then routes to parseSpec/parseTimestamp for the
// reserved severity/timestamp names or a generic Placeholder otherwise.
func (p *Parser) parsePlaceholder() (Token, *ParseError) {
	var name strings.Builder
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		switch {
		case nameByte(ch):
			name.WriteByte(ch)
			p.pos++
		case ch == ':':
			// The colon becomes the first byte of Spec; see Token's doc
			// comment on why Spec retains it.
			p.pos++
			switch name.String() {
			case "severity":
				return p.parseSpec(Token{Kind: Severity, Spec: ":"})
			case "timestamp":
				return p.parseTimestamp(Token{Kind: Timestamp, Spec: ":"})
			default:
				return p.parseSpec(Token{Kind: Placeholder, Name: name.String(), Spec: ":"})
			}
		case ch == '}':
			p.pos++
			p.state = stWhatever
			switch name.String() {
			case "severity":
				return Token{Kind: Severity}, nil
			case "timestamp":
				return Token{Kind: Timestamp}, nil
			default:
				return Token{Kind: Placeholder, Name: name.String()}, nil
			}
		default:
			return Token{}, &ParseError{Kind: InvalidPlaceholder, Pos: p.pos, Pattern: p.pattern}
		}
	}
	return Token{}, &ParseError{Kind: Illformed, Pos: p.pos, Pattern: p.pattern}
}

// parseSpec collects raw spec characters (appended to tok.Spec, which may
// already hold a leading ':') up to and including the closing '}'.
func (p *Parser) parseSpec(tok Token) (Token, *ParseError) {
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		if ch == '}' {
			p.pos++
			p.state = stWhatever
			return tok, nil
		}
		tok.Spec += string(ch)
		p.pos++
	}
	return Token{}, &ParseError{Kind: Illformed, Pos: p.pos, Pattern: p.pattern}
}

// parseTimestamp optionally consumes a {tspattern} sub-pattern immediately
// after the colon, then falls through to parseSpec for the remainder. The
// colon that introduces the sub-pattern is consumed only to reach it and
// never becomes part of Spec; parseSpec re-adds its own leading colon (the
// one separating the sub-pattern from the width/align spec) as it scans,
// so tok.Spec is reset first to avoid duplicating it.
func (p *Parser) parseTimestamp(tok Token) (Token, *ParseError) {
	if p.pos < len(p.pattern) && p.pattern[p.pos] == '{' {
		p.pos++
		var sb strings.Builder
		closed := false
		for p.pos < len(p.pattern) {
			ch := p.pattern[p.pos]
			if ch == '}' {
				p.pos++
				closed = true
				break
			}
			sb.WriteByte(ch)
			p.pos++
		}
		if !closed {
			return Token{}, &ParseError{Kind: Illformed, Pos: p.pos, Pattern: p.pattern}
		}
		tok.TSPattern = sb.String()
		tok.Spec = ""
	}
	return p.parseSpec(tok)
}
