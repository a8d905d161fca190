package patch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is the read/write seam between patches and the filesystem.
// The engine substitutes an in-memory overlay during dry runs.
type FileStore interface {
	ReadFile(path string) (string, error)
	WriteFile(path string, content string) error
}

// OSStore reads and writes real files. Writes go through a temporary file in
// the target's directory followed by a rename, so a crash mid-write never
// leaves a target truncated or half-transformed.
type OSStore struct{}

func (OSStore) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &MissingFileError{Path: path}
		}
		return "", err
	}
	return string(b), nil
}

func (OSStore) WriteFile(path string, content string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(content)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr != nil {
			return fmt.Errorf("write %s: %w", path, werr)
		}
		return fmt.Errorf("write %s: %w", path, cerr)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
