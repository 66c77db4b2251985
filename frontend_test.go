package slatelog

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
)

type recordingSink struct {
	messages []string
	failWith error
}

func (s *recordingSink) Consume(message string) error {
	s.messages = append(s.messages, message)
	return s.failWith
}

func TestFrontendFanOut(t *testing.T) {
	toks := mustTokens(t, "{message}")
	f := NewFrontend(NewStringFormatter(toks, nil), &recordingSink{}, &recordingSink{})

	rec := NewRecord(SeverityInfo, time.Now(), "hi")
	if err := f.Log(rec); err != nil {
		t.Fatalf("Log: %v", err)
	}

	for i, sink := range f.sinks {
		rs := sink.(*recordingSink)
		if len(rs.messages) != 1 || rs.messages[0] != "hi" {
			t.Errorf("sink %d: got %v", i, rs.messages)
		}
	}
}

func TestFrontendDeliversToEverySinkDespiteFailure(t *testing.T) {
	failing := &recordingSink{failWith: errors.New("disk full")}
	healthy := &recordingSink{}
	f := NewFrontend(NewStringFormatter(mustTokens(t, "{message}"), nil), failing, healthy)

	err := f.Log(NewRecord(SeverityInfo, time.Now(), "hi"))
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("want the failing sink's error, got %v", err)
	}
	if len(healthy.messages) != 1 {
		t.Fatalf("want the healthy sink to still receive the record, got %v", healthy.messages)
	}
}

func TestFrontendFormatErrorShortCircuits(t *testing.T) {
	sink := &recordingSink{}
	f := NewFrontend(NewStringFormatter(mustTokens(t, "{missing}"), nil), sink)

	err := f.Log(NewRecord(SeverityInfo, time.Now(), "hi"))
	if err == nil {
		t.Fatal("want a format error")
	}
	if len(sink.messages) != 0 {
		t.Fatalf("sink should not be called when formatting fails, got %v", sink.messages)
	}
}

func TestFrontendWithFileSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewFileSink(fs, "/var/log/app.log")
	f := NewFrontend(NewJSONFormatter(JSONFormatterConfig{Newline: true}), sink)

	if err := f.Log(NewRecord(SeverityInfo, time.Now(), "hi")); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := f.Log(NewRecord(SeverityInfo, time.Now(), "there")); err != nil {
		t.Fatalf("Log: %v", err)
	}

	got, err := afero.ReadFile(fs, "/var/log/app.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected file contents")
	}
}
