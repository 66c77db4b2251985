package slatelog

import (
	"strconv"
	"time"
)

// Severity is an integer-ordered log level. Its meaning is entirely up to
// the caller-supplied SeverityResolver; slatelog treats it as opaque.
type Severity int32

// A default severity scale, named by DefaultSeverityResolver. LogSink (see
// logrsink.go) uses SeverityInfo for Info at every V-level and
// SeverityError for Error. Callers driving Record directly are free to use
// their own scale; the string formatter only ever asks a SeverityResolver to name
// whatever value it's given.
const (
	SeverityDebug   Severity = -2
	SeverityInfo    Severity = -1
	SeverityWarning Severity = 0
	SeverityError   Severity = 1
)

// SeverityResolver names a Severity for display. It is supplied by the
// caller; slatelog never hardcodes a severity vocabulary.
type SeverityResolver func(Severity) string

// DefaultSeverityResolver names the four Severity constants above and
// falls back to "LEVEL<n>" for anything else.
func DefaultSeverityResolver(s Severity) string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "LEVEL" + strconv.Itoa(int(s))
	}
}

// Attribute is one named, typed entry in a Record's ordered attribute list.
type Attribute struct {
	Name  string
	Value Value
}

// Record is a single log event: an ordered, uniquely-keyed list of
// attributes plus a Severity and a Time. NewRecord seeds the list with the
// two reserved attributes, "message" (string) and "timestamp" (the Unix
// epoch seconds of Time, as an integer), in that order; Set appends
// further attributes or overwrites an existing one in place.
type Record struct {
	Severity Severity
	Time     time.Time

	attrs []Attribute
	index map[string]int
}

// NewRecord constructs a Record carrying the given severity, timestamp, and
// message. The message and timestamp are recorded as ordinary attributes
// ("message", "timestamp") so that a generic {message}/{timestamp}
// placeholder lookup (were those names not reserved by the pattern parser)
// and the JSON formatter both see them like any other attribute.
func NewRecord(severity Severity, t time.Time, message string) *Record {
	r := &Record{
		Severity: severity,
		Time:     t,
		index:    make(map[string]int, 8),
	}
	r.Set("message", StringValue(message))
	r.Set("timestamp", Int64Value(t.Unix()))
	return r
}

// Set adds name=value to the end of the attribute list, or overwrites the
// value in place if name is already present (preserving its original
// position, per the "ordered mapping... unique" invariant).
func (r *Record) Set(name string, v Value) *Record {
	if idx, ok := r.index[name]; ok {
		r.attrs[idx].Value = v
		return r
	}
	r.index[name] = len(r.attrs)
	r.attrs = append(r.attrs, Attribute{Name: name, Value: v})
	return r
}

// Get looks up an attribute by name.
func (r *Record) Get(name string) (Value, bool) {
	if idx, ok := r.index[name]; ok {
		return r.attrs[idx].Value, true
	}
	return Value{}, false
}

// Attributes returns the Record's attributes in insertion order. The
// returned slice must not be mutated by the caller.
func (r *Record) Attributes() []Attribute {
	return r.attrs
}

// Clone returns a Record carrying the same severity, time, and attributes,
// safe to extend independently of r without mutating a shared Record.
func (r *Record) Clone() *Record {
	c := &Record{
		Severity: r.Severity,
		Time:     r.Time,
		attrs:    append([]Attribute(nil), r.attrs...),
		index:    make(map[string]int, len(r.index)),
	}
	for k, v := range r.index {
		c.index[k] = v
	}
	return c
}
