package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwx-cloud/justify/internal/errors"
)

// FileBackend keeps one file per key in PrimaryDirectory. Keys that are only
// found in one of the FallbackDirectories are copied to the primary directory
// the first time they are read.
type FileBackend struct {
	PrimaryDirectory    string
	FallbackDirectories []string
}

func NewFileBackend(dirs []string) (*FileBackend, error) {
	if len(dirs) < 1 {
		return nil, errors.New("at least one directory must be provided")
	}

	expanded := make([]string, len(dirs))
	for i, dir := range dirs {
		var err error
		if expanded[i], err = expandTilde(dir); err != nil {
			return nil, errors.Wrapf(err, "unable to expand %q", dir)
		}
	}

	return &FileBackend{
		PrimaryDirectory:    expanded[0],
		FallbackDirectories: expanded[1:],
	}, nil
}

func (f FileBackend) Get(key string) (string, error) {
	value, err := f.readFrom(f.PrimaryDirectory, key)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return value, err
	}

	for _, dir := range f.FallbackDirectories {
		value, err = f.readFrom(dir, key)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		if err := f.Set(key, value); err != nil {
			return "", errors.Wrapf(err, "unable to migrate %q from %q to %q", key, dir, f.PrimaryDirectory)
		}

		return value, nil
	}

	return "", nil
}

func (f FileBackend) readFrom(dir, key string) (string, error) {
	path := filepath.Join(dir, key)

	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %q", path)
	}

	return strings.TrimSpace(string(contents)), nil
}

func (f FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(f.PrimaryDirectory, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create %q", f.PrimaryDirectory)
	}

	path := filepath.Join(f.PrimaryDirectory, key)
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return errors.Wrapf(err, "unable to write to %q", path)
	}

	return nil
}

// Unset removes the key from every directory so a stale fallback copy is not
// migrated back on the next read.
func (f FileBackend) Unset(key string) error {
	for _, dir := range append([]string{f.PrimaryDirectory}, f.FallbackDirectories...) {
		path := filepath.Join(dir, key)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "unable to remove %q", path)
		}
	}

	return nil
}

var tildeSlash = fmt.Sprintf("~%c", os.PathSeparator)

func expandTilde(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, tildeSlash) {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(dir, "~"), string(os.PathSeparator))), nil
}
