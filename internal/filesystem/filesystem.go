// Package filesystem provides the source-side file system queries for a relocation pass.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/taigrr/folder-archiver/internal/types"
)

var (
	// ErrSourceNotFound is returned when the directory to enumerate does not exist.
	ErrSourceNotFound = errors.New("directory not found")

	// ErrNotDirectory is returned when the path to enumerate is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrPermission is returned when the directory cannot be read.
	ErrPermission = errors.New("permission denied")
)

// Service provides file system operations for the relocator.
type Service struct {
	location *time.Location
}

// New creates a new Service. Years are computed in loc; nil means local time.
func New(loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{location: loc}
}

// ListSubdirectories returns the names of the immediate subdirectories of path
// in the order the file system reports them. Files are skipped; symlinks count
// when they resolve to a directory.
func (s *Service) ListSubdirectories(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer dir.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort by name.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, classify(path, err)
	}

	var directories []string
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(path, entry.Name()))
			if err == nil && target.IsDir() {
				directories = append(directories, entry.Name())
			}
		}
	}

	return directories, nil
}

// FolderYear returns the calendar year of the folder's modification time when
// useModified is set, otherwise of its creation time.
func (s *Service) FolderYear(path string, useModified bool) (int, error) {
	var (
		t   time.Time
		err error
	)
	if useModified {
		t, err = ModTime(path)
	} else {
		t, err = BirthTime(path)
	}
	if err != nil {
		return 0, err
	}
	return t.In(s.location).Year(), nil
}

// Scan lists the subdirectories of source together with their derived years.
// Year lookups that fail are reported on the candidate rather than returned.
func (s *Service) Scan(source string, useModified bool) ([]types.FolderCandidate, error) {
	names, err := s.ListSubdirectories(source)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.FolderCandidate, 0, len(names))
	for _, name := range names {
		path := filepath.Join(source, name)
		candidate := types.FolderCandidate{Name: name, Path: path}
		year, err := s.FolderYear(path, useModified)
		if err != nil {
			candidate.Error = err.Error()
		} else {
			candidate.Year = year
			candidate.YearKnown = true
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// Exists checks if anything exists at path, including a dangling symlink.
func (s *Service) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDirectory checks if a path is a directory.
func (s *Service) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, classify(path, err)
	}
	return info.IsDir(), nil
}

// EnsureDirectory creates path (and parents) when it does not exist.
func (s *Service) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %s - %w", path, err)
	}
	return nil
}

// ModTime returns the modification time of path, following symlinks.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, classify(path, err)
	}
	return info.ModTime(), nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	default:
		return fmt.Errorf("failed to read: %s - %w", path, err)
	}
}
