package slatelog

import (
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestJSONFormatterBasic(t *testing.T) {
	at := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	rec := NewRecord(SeverityInfo, at, "hello").Set("user", StringValue("ana")).Set("count", Int64Value(3))

	f := NewJSONFormatter(JSONFormatterConfig{})
	out, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got := gjson.Get(out, "message").String(); got != "hello" {
		t.Errorf("message: want %q, got %q", "hello", got)
	}
	if got := gjson.Get(out, "user").String(); got != "ana" {
		t.Errorf("user: want %q, got %q", "ana", got)
	}
	if got := gjson.Get(out, "count").Int(); got != 3 {
		t.Errorf("count: want 3, got %d", got)
	}
	if got := gjson.Get(out, "timestamp").Int(); got != at.Unix() {
		t.Errorf("timestamp: want %d, got %d", at.Unix(), got)
	}
}

func TestJSONFormatterNameMapping(t *testing.T) {
	rec := NewRecord(SeverityInfo, time.Now(), "hi")
	f := NewJSONFormatter(JSONFormatterConfig{
		NameMapping: map[string]string{"message": "@message"},
	})
	out, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if gjson.Get(out, "message").Exists() {
		t.Errorf("unmapped key %q should not exist in %s", "message", out)
	}
	if got := gjson.Get(out, "@message").String(); got != "hi" {
		t.Errorf("@message: want %q, got %q", "hi", got)
	}
}

func TestJSONFormatterFieldHierarchy(t *testing.T) {
	rec := NewRecord(SeverityInfo, time.Now(), "hi")
	f := NewJSONFormatter(JSONFormatterConfig{
		FieldHierarchy: map[string][]string{"timestamp": {"fields", "aux"}},
	})
	out, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !gjson.Get(out, "fields.aux.timestamp").Exists() {
		t.Errorf("want fields.aux.timestamp to exist in %s", out)
	}
	if gjson.Get(out, "timestamp").Exists() {
		t.Errorf("timestamp should have been nested, not also present at top level in %s", out)
	}
}

func TestJSONFormatterNewline(t *testing.T) {
	rec := NewRecord(SeverityInfo, time.Now(), "hi")
	f := NewJSONFormatter(JSONFormatterConfig{Newline: true})
	out, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		t.Errorf("want trailing newline, got %q", out)
	}
}
