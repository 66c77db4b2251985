package slatelog

import "fmt"

// FormatErrorKind discriminates the ways a formatter can fail.
type FormatErrorKind int

const (
	// MissingAttribute is returned when a Placeholder token names an
	// attribute absent from the record being formatted.
	MissingAttribute FormatErrorKind = iota
)

// FormatError is returned by Formatter.Format.
type FormatError struct {
	Kind FormatErrorKind
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format: missing attribute %q", e.Name)
}

// SinkErrorKind discriminates the ways a sink can fail.
type SinkErrorKind int

const (
	// OpenFailed is returned when a sink's backing resource could not be
	// opened on first use.
	OpenFailed SinkErrorKind = iota
)

// SinkError is returned by Sink.Consume.
type SinkError struct {
	Kind SinkErrorKind
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink: open %q: %s", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
