// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LedgerExtensions are the file extensions recognised as GnuCash books.
var LedgerExtensions = []string{".gnucash", ".gz", ".xml"}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFile writes data to a file, creating any parent directories if needed.
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// IsLedgerFile reports whether the name of path carries one of LedgerExtensions.
func IsLedgerFile(path string) bool {
	return slices.Contains(LedgerExtensions, strings.ToLower(filepath.Ext(path)))
}

// ListLedgerFiles returns the ledger files directly inside dirPath, sorted by name.
// Subdirectories are not visited.
func ListLedgerFiles(dirPath string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsLedgerFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	return files, nil
}

// OutputName returns the base name of a ledger file with every ledger extension
// removed and ext appended, for example "books.gnucash.gz" -> "books.html".
func OutputName(ledgerPath, ext string) string {
	name := filepath.Base(ledgerPath)
	for IsLedgerFile(name) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name + ext
}
