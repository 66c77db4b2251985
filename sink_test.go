package slatelog

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestFileSinkAppendOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSink(fs, "/var/log/app.log")

	if err := s.Consume("first"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if err := s.Consume("second"); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	got, err := afero.ReadFile(fs, "/var/log/app.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "first\nsecond\n"
	if string(got) != want {
		t.Errorf("\nwant %q\nhave %q", want, string(got))
	}
}

func TestFileSinkLazyOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSink(fs, "/var/log/app.log")

	if ok, _ := afero.Exists(fs, "/var/log/app.log"); ok {
		t.Fatalf("file should not exist before the first Consume")
	}
	if err := s.Consume("hello"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if ok, _ := afero.Exists(fs, "/var/log/app.log"); !ok {
		t.Fatalf("file should exist after the first Consume")
	}
}

func TestFileSinkOpenFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := NewFileSink(fs, "/var/log/app.log")

	err := s.Consume("hello")
	if err == nil {
		t.Fatal("want error opening a file on a read-only filesystem")
	}
	var serr *SinkError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SinkError, got %T: %v", err, err)
	}
	if serr.Kind != OpenFailed || serr.Path != "/var/log/app.log" {
		t.Errorf("got %+v", serr)
	}
}

func TestFileSinkReopensAfterClose(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSink(fs, "/var/log/app.log")

	if err := s.Consume("first"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Consume("second"); err != nil {
		t.Fatalf("Consume after Close: %v", err)
	}

	got, err := afero.ReadFile(fs, "/var/log/app.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "first\nsecond\n"
	if string(got) != want {
		t.Errorf("\nwant %q\nhave %q", want, string(got))
	}
}
