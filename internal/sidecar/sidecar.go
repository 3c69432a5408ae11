package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"worddumb/internal/fileutil"
)

// Suffix is the extension of the per-book companion directory on a mounted
// Kindle volume.
const Suffix = ".sdr"

// DirFor derives the sidecar directory from the on-device book path: the book
// file's extension is replaced with the sidecar suffix, alongside the book.
// /Volumes/Kindle/documents/My Book.azw3 -> /Volumes/Kindle/documents/My Book.sdr
func DirFor(deviceBookPath string) string {
	base := filepath.Base(deviceBookPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(deviceBookPath), stem+Suffix)
}

// MoveCompanion relocates a companion file into the book's sidecar directory,
// creating the directory on demand and replacing any existing file of the same
// name. An absent companion is an expected steady state and a no-op.
func MoveCompanion(companionPath, deviceBookPath string) error {
	info, err := os.Stat(companionPath)
	if err != nil || info.IsDir() {
		return nil
	}

	dir := DirFor(deviceBookPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sidecar directory %q: %w", dir, err)
	}

	dst := filepath.Join(dir, filepath.Base(companionPath))
	if err := fileutil.MoveFile(companionPath, dst); err != nil {
		return fmt.Errorf("move companion %q: %w", filepath.Base(companionPath), err)
	}
	return nil
}
