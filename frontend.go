package slatelog

import "sync"

// Frontend binds a Formatter to one or more Sinks. For each record, it
// applies the formatter once, then calls every sink's Consume with the
// result, serialized by a single mutex so concurrent callers never
// interleave a message's bytes within a sink.
type Frontend struct {
	formatter Formatter
	sinks     []Sink

	mu sync.Mutex
}

// NewFrontend binds formatter to sinks. Records logged through the
// returned Frontend are formatted once and delivered to every sink, in the
// order given, regardless of earlier sink failures.
func NewFrontend(formatter Formatter, sinks ...Sink) *Frontend {
	return &Frontend{formatter: formatter, sinks: sinks}
}

// Log formats rec and delivers it to every sink. If multiple sinks are
// attached, a failure in one does not prevent delivery to the others; Log
// returns the first error encountered, after every sink has been tried.
func (fe *Frontend) Log(rec *Record) error {
	line, err := fe.formatter.Format(rec)
	if err != nil {
		return err
	}

	fe.mu.Lock()
	defer fe.mu.Unlock()

	var first error
	for _, sink := range fe.sinks {
		if err := sink.Consume(line); err != nil && first == nil {
			first = err
		}
	}
	return first
}
