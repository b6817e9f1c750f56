package neraca

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadBook reads the backing file. A missing file is not an error: it is
// an empty store with the canonical schema.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	return book, nil
}

// SaveBook rewrites the backing file with the full book, creating the
// parent directory on first use. The book is written to a temporary file in
// the same directory and renamed over the target, so a failed write never
// leaves a half-written file visible to the next read.
func SaveBook(path string, book *Book) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for book file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary book file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename succeeded

	if err := EncodeBook(tmp, book); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode book file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary book file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace book file %q: %w", path, err)
	}
	return nil
}
