package slatelog

import "strconv"

// ValueKind discriminates the concrete type held by a Value.
type ValueKind uint8

const (
	KindInt64 ValueKind = iota
	KindUint64
	KindFloat64
	KindString
	KindBool
)

// Value is a closed tagged variant over the attribute types a Record can
// carry: signed integer, unsigned integer, floating-point, string, and
// bool, per the record model's data model.
type Value struct {
	kind ValueKind
	i    int64
	u    uint64
	f    float64
	s    string
	b    bool
}

// Int64Value wraps a signed integer attribute value.
func Int64Value(v int64) Value { return Value{kind: KindInt64, i: v} }

// Uint64Value wraps an unsigned integer attribute value.
func Uint64Value(v uint64) Value { return Value{kind: KindUint64, u: v} }

// Float64Value wraps a floating-point attribute value.
func Float64Value(v float64) Value { return Value{kind: KindFloat64, f: v} }

// StringValue wraps a string attribute value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// BoolValue wraps a boolean attribute value.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind reports which alternative v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Int64 returns v's signed-integer payload, and whether v actually holds a
// signed integer. The payload is zero when it does not; no conversion is
// made.
func (v Value) Int64() (int64, bool) { return v.i, v.kind == KindInt64 }

// Uint64 returns v's unsigned-integer payload, and whether v actually
// holds an unsigned integer (zero payload when it does not).
func (v Value) Uint64() (uint64, bool) { return v.u, v.kind == KindUint64 }

// Float64 returns v's float payload, and whether v actually holds a float
// (zero payload when it does not).
func (v Value) Float64() (float64, bool) { return v.f, v.kind == KindFloat64 }

// Str returns v's string payload, and whether v actually holds a string
// (empty payload when it does not).
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Bool returns v's bool payload, and whether v actually holds a bool
// (false payload when it does not).
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Interface returns v's value as the matching native Go type (int64,
// uint64, float64, string, or bool), suitable for handing to a JSON
// encoder that should preserve the semantic type.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt64:
		return v.i
	case KindUint64:
		return v.u
	case KindFloat64:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Text renders v in its default textual form, used by the string formatter
// whenever a placeholder carries no format spec.
func (v Value) Text() string {
	switch v.kind {
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindUint64:
		return strconv.FormatUint(v.u, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
