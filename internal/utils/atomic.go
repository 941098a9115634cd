package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rename is replaced in tests to simulate an interruption before the swap.
var rename = os.Rename

// TempSibling returns the temporary path used while replacing path: the same
// name with its extension swapped for ".tmp" (settings.json -> settings.tmp).
func TempSibling(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tmp"
}

// AtomicWriteFile writes data to TempSibling(path), syncs it, and renames it
// over path. Readers of path see either the previous content or data, never
// a partial write.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tempPath := TempSibling(path)

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	// Windows refuses to rename an open file.
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	// OpenFile only applies perm on creation; a stale temp keeps its mode.
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
