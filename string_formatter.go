package slatelog

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"

	"github.com/slatelog/slatelog/pattern"
)

// defaultTimestampPattern is used for a Timestamp token with no explicit
// sub-pattern ({timestamp} or {timestamp:<spec>}), per §4.2.
const defaultTimestampPattern = "%Y-%m-%d %H:%M:%S.%f"

// Formatter turns a Record into a line of output.
type Formatter interface {
	Format(rec *Record) (string, error)
}

// StringFormatter interprets a pre-parsed token sequence against a Record.
// It is built once per pattern (via NewStringFormatter) and reused across
// records; it never re-parses the pattern.
type StringFormatter struct {
	tokens   []pattern.Token
	resolver SeverityResolver
}

// NewStringFormatter builds a StringFormatter over an already-parsed token
// sequence, such as one produced by pattern.ParsePattern. resolver names a
// record's Severity; pass DefaultSeverityResolver if the caller has no
// custom severity vocabulary.
func NewStringFormatter(tokens []pattern.Token, resolver SeverityResolver) *StringFormatter {
	if resolver == nil {
		resolver = DefaultSeverityResolver
	}
	return &StringFormatter{tokens: tokens, resolver: resolver}
}

// Format renders rec against f's tokens. It returns a MissingAttribute
// FormatError if a Placeholder token names an attribute rec doesn't carry.
func (f *StringFormatter) Format(rec *Record) (string, error) {
	var buf strings.Builder
	for _, tok := range f.tokens {
		switch tok.Kind {
		case pattern.Literal:
			buf.WriteString(tok.Value)

		case pattern.Placeholder:
			v, ok := rec.Get(tok.Name)
			if !ok {
				return "", &FormatError{Kind: MissingAttribute, Name: tok.Name}
			}
			buf.WriteString(parseSpec(tok.Spec).render(v))

		case pattern.Severity:
			name := f.resolver(rec.Severity)
			buf.WriteString(parseSpec(tok.Spec).renderText(name))

		case pattern.Timestamp:
			layout := tok.TSPattern
			if layout == "" {
				layout = defaultTimestampPattern
			}
			// strftime has no %f verb: expand it to zero-padded
			// microseconds first, leaving an escaped %%f untouched.
			micros := fmt.Sprintf("%06d", rec.Time.Nanosecond()/1000)
			layout = strings.NewReplacer("%%", "%%", "%f", micros).Replace(layout)
			rendered, err := strftime.Format(layout, rec.Time)
			if err != nil {
				return "", err
			}
			buf.WriteString(parseSpec(tok.Spec).renderText(rendered))
		}
	}
	return buf.String(), nil
}
