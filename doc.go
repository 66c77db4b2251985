// Package slatelog is a small, embeddable structured-logging core: a
// pattern-based string formatter, a JSON formatter, a lazily-opened file
// sink, and a Frontend that ties a formatter to one or more sinks.
//
// A Record carries a Severity, a Time, and an ordered, uniquely-keyed list
// of attributes. Patterns such as "[{severity}] {timestamp} {message}" are
// parsed once (see the pattern subpackage) into a token sequence and bound
// to a StringFormatter, which can then be reused across many Records
// without re-parsing. JSONFormatter instead walks a Record's attributes
// directly, honoring an optional name mapping and field hierarchy.
//
// For integration with the github.com/go-logr/logr ecosystem, LogSink
// adapts a Frontend into a logr.LogSink, so existing code written against
// logr.Logger can be backed by slatelog without change.
package slatelog
