package slatelog

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

// Level is an atomic, ordered verbosity threshold, adapted from the
// teacher's own sync/atomic-wrapped Level type (pkg/log/log.go in
// ethersphere/bee): LogSink.Enabled(level) compares a logr V-level against
// the current threshold. Unlike the teacher's copy-by-value field (which
// decouples a cloned logger's threshold from its parent's), LogSink shares
// one *Level across every WithValues/WithName descendant, so SetVerbosity
// on the root logger is visible to all of them.
type Level int32

func (l *Level) get() Level  { return Level(atomic.LoadInt32((*int32)(l))) }
func (l *Level) set(v Level) { atomic.StoreInt32((*int32)(l), int32(v)) }

const (
	// VerbosityNone disables everything except Error.
	VerbosityNone Level = -1
	// VerbosityAll enables every V-level.
	VerbosityAll Level = 1<<31 - 1
)

// LogSink adapts a Frontend into a github.com/go-logr/logr.LogSink, so that
// any logr.Logger can be backed by slatelog's own formatter/sink pipeline
// instead of zap or zerolog (compare ethersphere/bee's registry.go, which
// wires a logr.Logger over zapr/zerologr).
type LogSink struct {
	frontend  *Frontend
	resolver  SeverityResolver
	verbosity *Level

	name   string
	values []interface{}
}

var _ logr.LogSink = (*LogSink)(nil)

// NewLogSink adapts frontend into a logr.LogSink. A nil resolver defaults
// to DefaultSeverityResolver. The returned sink starts at VerbosityNone+1
// (i.e. only V(0) and Error are enabled); call SetVerbosity to raise it.
func NewLogSink(frontend *Frontend, resolver SeverityResolver) *LogSink {
	if resolver == nil {
		resolver = DefaultSeverityResolver
	}
	v := Level(0)
	return &LogSink{frontend: frontend, resolver: resolver, verbosity: &v}
}

// SetVerbosity changes the maximum V-level this sink (and every logger
// derived from it) will emit.
func (s *LogSink) SetVerbosity(v Level) { s.verbosity.set(v) }

// Init implements logr.LogSink. slatelog does not currently use the
// supplied RuntimeInfo.
func (s *LogSink) Init(info logr.RuntimeInfo) {}

// Enabled implements logr.LogSink.
func (s *LogSink) Enabled(level int) bool {
	return Level(level) <= s.verbosity.get()
}

// Info implements logr.LogSink.
func (s *LogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	rec := s.buildRecord(SeverityInfo, msg)
	if level > 0 {
		rec.Set("v", Int64Value(int64(level)))
	}
	setKeysAndValues(rec, keysAndValues)
	_ = s.frontend.Log(rec)
}

// Error implements logr.LogSink. Errors are always emitted, regardless of
// the verbosity threshold.
func (s *LogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	rec := s.buildRecord(SeverityError, msg)
	if err != nil {
		rec.Set("error", StringValue(err.Error()))
	}
	setKeysAndValues(rec, keysAndValues)
	_ = s.frontend.Log(rec)
}

// WithValues implements logr.LogSink.
func (s *LogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	c := s.clone()
	c.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return c
}

// WithName implements logr.LogSink.
func (s *LogSink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name != "" {
		c.name += "/"
	}
	c.name += name
	return c
}

func (s *LogSink) clone() *LogSink {
	c := *s
	return &c
}

func (s *LogSink) buildRecord(severity Severity, msg string) *Record {
	rec := NewRecord(severity, time.Now(), msg)
	if s.name != "" {
		rec.Set("logger", StringValue(s.name))
	}
	setKeysAndValues(rec, s.values)
	return rec
}

func setKeysAndValues(rec *Record, kvs []interface{}) {
	for i := 0; i+1 < len(kvs); i += 2 {
		name, ok := kvs[i].(string)
		if !ok {
			name = fmt.Sprintf("%v", kvs[i])
		}
		rec.Set(name, toValue(kvs[i+1]))
	}
}

// toValue converts an arbitrary logr key-value into slatelog's closed
// Value variant, falling back to its default string representation for
// any type the variant doesn't cover directly.
func toValue(v interface{}) Value {
	switch x := v.(type) {
	case int:
		return Int64Value(int64(x))
	case int8:
		return Int64Value(int64(x))
	case int16:
		return Int64Value(int64(x))
	case int32:
		return Int64Value(int64(x))
	case int64:
		return Int64Value(x)
	case uint:
		return Uint64Value(uint64(x))
	case uint8:
		return Uint64Value(uint64(x))
	case uint16:
		return Uint64Value(uint64(x))
	case uint32:
		return Uint64Value(uint64(x))
	case uint64:
		return Uint64Value(x)
	case float32:
		return Float64Value(float64(x))
	case float64:
		return Float64Value(x)
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case error:
		return StringValue(x.Error())
	case fmt.Stringer:
		return StringValue(x.String())
	default:
		return StringValue(fmt.Sprintf("%v", x))
	}
}
