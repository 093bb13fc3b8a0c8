package filesystem

import (
	"io"
	"io/fs"
	"path/filepath"
)

// FS is the subset of filesystem operations droplink performs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error
	Rename(oldpath, newpath string) error
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Walk(root string, fn filepath.WalkFunc) error
	EvalSymlinks(path string) (string, error)
}
