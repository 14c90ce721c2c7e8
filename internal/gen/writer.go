package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// WriteFiles writes every generated file to its Path. Files whose content
// is unchanged on disk are left untouched.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		fresh, err := file.UpToDate()
		if err != nil {
			return err
		}

		if fresh {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := writeFileAtomic(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}

// UpToDate reports whether the file on disk holds exactly Content.
func (f GeneratedFile) UpToDate() (bool, error) {
	current, err := os.ReadFile(f.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("reading %s: %w", f.Path, err)
	}

	return bytes.Equal(current, f.Content), nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over targetPath, so readers never see a partial file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}

	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()

		return err
	}

	if err = tmpFile.Close(); err != nil {
		return err
	}

	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}

	return renameFile(tmpPath, targetPath)
}
