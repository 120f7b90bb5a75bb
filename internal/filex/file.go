// Package filex contains small filesystem helpers used by the console.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir makes sure dirName exists and returns its absolute path.
// Relative names are resolved against the current working directory.
func EnsureDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// writeFile is swapped in tests to force a short write.
var writeFile = (*os.File).Write

// SaveFile writes data into dir under the base name of name. An existing file
// with the same name gets a numeric suffix instead of being overwritten.
// It returns the full path written.
func SaveFile(dir, name string, data []byte) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", errors.New("empty file name")
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	target := filepath.Join(dir, base)
	for i := 1; ; i++ {
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if err == nil {
			if _, err := writeFile(f, data); err != nil {
				_ = f.Close()
				_ = os.Remove(target)
				return "", fmt.Errorf("write %s: %w", target, err)
			}
			if err := f.Close(); err != nil {
				_ = os.Remove(target)
				return "", fmt.Errorf("close %s: %w", target, err)
			}
			return target, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create %s: %w", target, err)
		}
		target = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, i, ext))
	}
}
