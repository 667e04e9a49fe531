package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink creates named output artifacts.
type Sink interface {
	// WriteFile streams an artifact through fn and returns its location.
	// The artifact becomes visible only if fn succeeds.
	WriteFile(name string, fn func(w io.Writer) error) (string, error)
}

// DirSink writes artifacts into a directory. Each artifact is written to a
// temp file next to its destination and renamed into place.
type DirSink struct {
	Dir string
}

// NewDirSink returns a sink for dir, creating it if absent.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &DirSink{Dir: dir}, nil
}

func (s *DirSink) WriteFile(name string, fn func(w io.Writer) error) (string, error) {
	dest := filepath.Join(s.Dir, name)
	if err := WriteAtomic(dest, fn); err != nil {
		return "", err
	}
	return dest, nil
}

// WriteAtomic writes path through fn using a temp file and rename, so a
// failed write never replaces or leaves a partial file at path. An existing
// file keeps its permission bits.
func WriteAtomic(path string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
