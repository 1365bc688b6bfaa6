package scaffold

import (
	iofs "io/fs"
	"os"
)

// FS is the filesystem capability the orchestrator writes through.
// Implementations must be safe for stubbing in tests.
type FS interface {
	Stat(path string) (iofs.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// OSFS is the production FS backed by the os package.
type OSFS struct{}

func (OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
