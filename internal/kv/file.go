package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON file holding a key→value map.
// Every Set rewrites the whole file through a temp-file rename, so a crash
// mid-write never leaves a truncated file behind. Safe for concurrent use.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFile opens (or creates) a file-backed Store at path. An existing file is
// read eagerly so that a corrupt or unreadable file fails at startup rather
// than on the first query. A missing file starts empty.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv.NewFile: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("kv.NewFile: decode %s: %w", path, err)
	}
	return f, nil
}

// Get returns the value stored under key, if any.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set stores value under key and rewrites the backing file.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	if err := f.flushLocked(); err != nil {
		return fmt.Errorf("kv.File.Set: %w", err)
	}
	return nil
}

// flushLocked writes the whole map to disk atomically. Callers hold f.mu.
func (f *File) flushLocked() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".wayfarer-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

var _ Store = (*File)(nil)
