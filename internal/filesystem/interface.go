package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
//
// The converter reads the project file and the settings store through it and
// writes every generated artifact through it.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Remove(path string) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Exists(path string) bool
	IsDir(path string) bool
	Getwd() (string, error)

	// Glob patterns
	Glob(pattern string) ([]string, error)
}
