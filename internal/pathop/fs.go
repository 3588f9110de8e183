package pathop

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether p names an existing entry. Symlinks are followed,
// so a dangling link does not exist.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// IsDir reports whether p resolves to a directory.
func IsDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}

// IsFile reports whether p resolves to a regular file.
func IsFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// IsSymlink reports whether p itself is a symbolic link.
func IsSymlink(p string) bool {
	fi, err := os.Lstat(p)
	return err == nil && fi.Mode()&fs.ModeSymlink != 0
}

// Canonicalize returns the absolute form of p with every symlink resolved.
// The path must exist. ".." is applied to the resolved prefix, not
// lexically, so "link/.." is the parent of the link's target.
func Canonicalize(p string) (string, error) {
	if p == "" {
		return "", &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	if !filepath.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		// filepath.Join would clean away ".." before symlinks are seen.
		p = wd + separator + p
	}
	return filepath.EvalSymlinks(p)
}

// ResolveLink returns the target stored in the symlink p, unresolved.
func ResolveLink(p string) (string, error) {
	return os.Readlink(p)
}
