// Package docfile reads controller sources and writes generated documents.
package docfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInputUnreadable = errors.New("input file unreadable")
	ErrOutputWrite     = errors.New("output write failed")
)

// Ext is appended to the input path to form the output path.
const Ext = ".md"

// OutputPath returns the document path for input.
func OutputPath(input string) string { return input + Ext }

// Read loads the whole file at path as text.
func Read(path string) (string, error) {
	st, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", xerrors.Errorf("%s: %w", path, ErrInputNotFound)
	}
	if err != nil {
		return "", xerrors.Errorf("%s: %v: %w", path, err, ErrInputUnreadable)
	}
	if st.IsDir() {
		return "", xerrors.Errorf("%s is a directory: %w", path, ErrInputUnreadable)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", xerrors.Errorf("%s: %v: %w", path, err, ErrInputUnreadable)
	}
	if !utf8.Valid(b) {
		return "", xerrors.Errorf("%s is not UTF-8 text: %w", path, ErrInputUnreadable)
	}
	return string(b), nil
}

// Write replaces path with content. The content goes to a temp file in the
// same directory which is synced and renamed over path, so path is either
// untouched or complete.
func Write(path, content string) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(content); err != nil {
		_ = f.Close()
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	if err = f.Close(); err != nil {
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	if err = os.Rename(tmp, path); err != nil {
		return xerrors.Errorf("%s: %v: %w", path, err, ErrOutputWrite)
	}
	return nil
}
