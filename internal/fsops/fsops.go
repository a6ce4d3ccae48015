// Package fsops provides the filesystem primitives the cleanup pipeline is
// built on: tolerant recursive removal, directory moves with a cross-device
// fallback, and mode-preserving file writes. All mutating operations on
// package contents take paths relative to the package root and refuse to
// escape it.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Resolve joins rel onto root. The rel path itself must be local: not
// absolute, not empty, and free of ".." escapes. Validating rel directly
// keeps the guard independent of how the caller spelled the root ("." and
// other relative roots are fine).
func Resolve(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative to the package root", rel)
	}
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path %q escapes the package root", rel)
	}
	return filepath.Join(root, rel), nil
}

// RemoveTree deletes the file or directory at rel under root, recursively.
// Returns true if something was removed, false if the target was already
// absent. Absence is not an error.
func RemoveTree(root, rel string) (bool, error) {
	path, err := Resolve(root, rel)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("removed tree")
	return true, nil
}

// MoveDir moves the directory at src to dst. Rename is attempted first;
// if it fails (e.g. across filesystems) the directory is copied and the
// source removed afterward, so a failure mid-copy never loses the source.
func MoveDir(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyDir(src, dst); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("removing moved source %s: %w", src, err)
	}
	log.Debug().Str("src", src).Str("dst", dst).Msg("moved directory via copy fallback")
	return nil
}

// CopyDir recursively copies src to dst, preserving file permissions.
// Symlinks and other special files are skipped.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode())
}

// WriteFileKeepMode writes data to path, preserving the file's existing
// permissions when it already exists and defaulting to 0644 otherwise.
func WriteFileKeepMode(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
