// Package filesystem abstracts file access so the loader can be tested
// against an in-memory filesystem.
package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// Provider abstracts the file operations pgload performs: whole-file reads
// for schema files, streaming opens for CSV data, and existence checks.
type Provider interface {
	// ReadFile reads the file at the given path.
	ReadFile(path string) ([]byte, error)

	// Open opens the file at the given path for streaming reads.
	// The caller must close the returned reader.
	Open(path string) (io.ReadCloser, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
