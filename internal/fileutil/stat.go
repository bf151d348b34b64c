package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrPathNotFound is returned by IsDirectory when the path does not exist.
var ErrPathNotFound = fmt.Errorf("path not found: %w", fs.ErrNotExist)

// PathExists reports whether path is accessible. Any probe failure,
// including permission errors, counts as not existing.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stat returns file metadata, or ok=false if the path cannot be stat'ed.
func Stat(path string) (fs.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, true
}

// IsDirectory reports whether path is a directory.
//
// The path must exist. A missing path returns an error wrapping
// ErrPathNotFound; other stat failures are returned wrapped as well.
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%s: %w", path, ErrPathNotFound)
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}
