// Package filex holds the filesystem helpers behind report downloads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDownloadDir returns the directory exported reports are saved to,
// creating it when missing. A configured path wins; otherwise a "downloads"
// directory under the current working directory is used.
func EnsureDownloadDir(configured string) (string, error) {
	dir := configured
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, "downloads")
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
