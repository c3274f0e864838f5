package deviate

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Source supplies the bytes of one introspection document together with an
// identifier used in diagnostics.
type Source interface {
	// ID returns the source identifier, typically a file path.
	ID() string

	// Load returns the document bytes.
	Load() ([]byte, error)
}

// --- File Source (one file on disk, read lazily) ---

type fileSource struct {
	path string
}

// File creates a Source reading a single introspection file. The file is
// read lazily on each Load call.
func File(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) ID() string { return s.path }

func (s fileSource) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading introspection file: %w", err)
	}
	return data, nil
}

// --- Bytes Source (in-memory document) ---

type bytesSource struct {
	id   string
	data []byte
}

// Bytes creates a Source over an in-memory document. The id is used for
// diagnostics only.
func Bytes(id string, data []byte) Source {
	return bytesSource{id: id, data: data}
}

func (s bytesSource) ID() string { return s.id }

func (s bytesSource) Load() ([]byte, error) { return s.data, nil }

// --- Reader Source (one-shot stream) ---

type readerSource struct {
	id   string
	r    io.Reader
	data []byte
}

// Reader creates a Source draining an io.Reader. The reader is consumed on
// the first successful Load call; subsequent calls return the cached bytes.
func Reader(id string, r io.Reader) Source {
	return &readerSource{id: id, r: r}
}

func (s *readerSource) ID() string { return s.id }

func (s *readerSource) Load() ([]byte, error) {
	if s.data != nil {
		return s.data, nil
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("reading introspection document: %w", err)
	}
	s.data = data
	return data, nil
}

// --- FS Source (embed.FS, testing, http filesystems) ---

type fsSource struct {
	name string
	fsys fs.FS
	path string
}

// FS creates a Source reading one file from an fs.FS (e.g. embed.FS). The
// name labels the filesystem in diagnostics.
func FS(name string, fsys fs.FS, path string) Source {
	return fsSource{name: name, fsys: fsys, path: path}
}

func (s fsSource) ID() string {
	if s.name == "" {
		return s.path
	}
	return s.name + ":" + s.path
}

func (s fsSource) Load() ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, filepath.ToSlash(s.path))
	if err != nil {
		return nil, fmt.Errorf("reading introspection file: %w", err)
	}
	return data, nil
}
