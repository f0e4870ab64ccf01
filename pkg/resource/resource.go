// Package resource performs the filesystem and process operations behind
// File, Folder and App handles. Each call opens, acts on and releases the
// underlying resource before returning.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve canonicalises path against base. Absolute paths are only cleaned.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if base == "" {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// EnsureFile creates an empty file at path unless something already exists
// there.
func EnsureFile(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// EnsureFolder creates the directory at path, parents included.
func EnsureFolder(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s exists and is not a directory", path)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return os.MkdirAll(path, 0o755)
}

// ReadString returns the whole content of the file at path.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteString truncates the file at path and writes text.
func WriteString(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}

// Rename moves from to to.
func Rename(from, to string) error {
	return os.Rename(from, to)
}

// RemoveFile deletes a single file.
func RemoveFile(path string) error {
	return os.Remove(path)
}

// RemoveFolder deletes a directory and everything below it.
func RemoveFolder(path string) error {
	return os.RemoveAll(path)
}

// Entry is one immediate child of a listed folder.
type Entry struct {
	Path  string
	IsDir bool
}

// List enumerates the immediate children of dir in name order. Symbolic
// links are classified by what they point at.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Path: path, IsDir: isDir})
	}
	return entries, nil
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
