package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when a relative path would escape its root.
var ErrOutsideRoot = errors.New("path escapes root")

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// AbsDir expands '~' and returns the absolute form of dir.
func AbsDir(dir string) (string, error) {
	p, err := ExpandHome(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	return abs, nil
}

// SecureJoin joins the slash-separated rel under root. Any ".." segment or
// backslash-separated segment in rel is rejected, as is any result not
// contained in root after cleaning.
func SecureJoin(root, rel string) (string, error) {
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." || strings.ContainsRune(seg, '\\') || strings.ContainsRune(seg, 0) {
			return "", ErrOutsideRoot
		}
	}
	joined := filepath.Join(root, filepath.FromSlash(rel))
	back, err := filepath.Rel(root, joined)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return joined, nil
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
