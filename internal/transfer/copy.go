package transfer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// CopyMover copies the folder tree to dst and removes src once the copy is
// complete. A failed copy is removed so the source stays the only copy.
type CopyMover struct{}

func NewCopyMover() *CopyMover {
	return &CopyMover{}
}

func (c *CopyMover) Name() string {
	return "copy"
}

func (c *CopyMover) Move(src, dst string) error {
	if err := preflight(src, dst); err != nil {
		return err
	}

	if err := CopyTree(src, dst); err != nil {
		removeTree(dst)
		return fmt.Errorf("copy failed: %w", err)
	}

	if err := removeTree(src); err != nil {
		return fmt.Errorf("copied to %s but failed to remove source: %w", dst, err)
	}
	return nil
}

type dirAttrs struct {
	path    string
	mode    fs.FileMode
	modTime time.Time
}

// CopyTree copies src to dst recursively, preserving permission bits,
// modification times and symlinks. Directories stay owner-writable until
// their contents are copied.
func CopyTree(src, dst string) error {
	var dirs []dirAttrs

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		case d.IsDir():
			if err := os.Mkdir(target, info.Mode().Perm()|0o700); err != nil {
				return err
			}
			dirs = append(dirs, dirAttrs{path: target, mode: info.Mode().Perm(), modTime: info.ModTime()})
			return nil
		case info.Mode().IsRegular():
			return copyFile(path, target, info)
		default:
			return fmt.Errorf("unsupported file type: %s", path)
		}
	})
	if err != nil {
		return err
	}

	// Children first, so restoring a parent's time is not undone by a later write.
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Chmod(dirs[i].path, dirs[i].mode); err != nil {
			return err
		}
		os.Chtimes(dirs[i].path, dirs[i].modTime, dirs[i].modTime)
	}
	return nil
}

// removeTree removes path. Read-only directories inside it are made
// writable and the removal retried.
func removeTree(path string) error {
	if err := os.RemoveAll(path); err == nil {
		return nil
	}
	filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			if info, err := d.Info(); err == nil && info.Mode().Perm()&0o700 != 0o700 {
				os.Chmod(p, info.Mode().Perm()|0o700)
			}
		}
		return nil
	})
	return os.RemoveAll(path)
}

func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
