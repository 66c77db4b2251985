package slatelog

import (
	"os"
	"sync"

	"github.com/spf13/afero"
)

// Sink is a destination for already-formatted log lines.
type Sink interface {
	// Consume appends message to the sink. Implementations add their own
	// line terminator; callers do not include one.
	Consume(message string) error
}

// FileSink appends each formatted message as one line to a file, opened
// lazily in append-create mode on the first Consume call. The path is
// fixed at construction; the underlying backend is an afero.Fs so
// production code can point at the real filesystem while tests point at
// an in-memory one.
//
// A FileSink owns its handle exclusively. Its mutex serializes Consume and
// Close calls on the same FileSink; there is no locking across processes
// or across separate FileSinks writing to the same path.
type FileSink struct {
	fs   afero.Fs
	path string

	mu   sync.Mutex
	file afero.File
	open bool
}

// NewFileSink constructs a FileSink for path on fs. A nil fs defaults to
// afero.NewOsFs(), the production backend; tests typically pass
// afero.NewMemMapFs() instead.
func NewFileSink(fs afero.Fs, path string) *FileSink {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSink{fs: fs, path: path}
}

// Consume opens the file on first use (retrying on every call until one
// succeeds), then appends message plus a trailing newline and flushes.
func (s *FileSink) Consume(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return &SinkError{Kind: OpenFailed, Path: s.path, Err: err}
		}
		s.file = f
		s.open = true
	}

	if _, err := s.file.Write([]byte(message)); err != nil {
		return err
	}
	if _, err := s.file.Write([]byte("\n")); err != nil {
		return err
	}
	if syncer, ok := s.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Close releases the underlying file handle, if open. A closed FileSink
// reopens lazily on its next Consume call.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.open = false
	return err
}
