package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ErrSceneNotFound is returned when the scene file does not exist.
var ErrSceneNotFound = errors.New("scene file not found")

// NotFoundError reports the missing scene path. It matches ErrSceneNotFound
// with errors.Is.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return ErrSceneNotFound.Error() + ": " + e.Path
}

func (e *NotFoundError) Unwrap() error {
	return ErrSceneNotFound
}

// Store reads and writes scene files on a filesystem.
//
// Writes overwrite the target in place: there is no temporary file, rename
// or backup, so a failed write can leave the file truncated.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store over fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a Store over the host filesystem.
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

// Check returns a *NotFoundError when path does not exist.
func (s *Store) Check(path string) error {
	ok, err := s.Exists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !ok {
		return &NotFoundError{Path: path}
	}
	return nil
}

// ReadLines reads the whole file as terminator-preserving lines.
func (s *Store) ReadLines(path string) ([]string, error) {
	if err := s.Check(path); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return SplitLines(data), nil
}

// WriteLines overwrites path with lines in a single write.
func (s *Store) WriteLines(path string, lines []string) error {
	if err := afero.WriteFile(s.fs, path, JoinLines(lines), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// AppendLines appends lines to the end of an existing file.
func (s *Store) AppendLines(path string, lines []string) error {
	f, err := s.fs.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.Write(JoinLines(lines)); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}
