package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"
)

func setupTestSource(t *testing.T) (string, *Service) {
	t.Helper()
	tmpDir := t.TempDir()
	return tmpDir, New(time.UTC)
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
}

func TestService_ListSubdirectories(t *testing.T) {
	t.Run("lists only directories", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		mkdirs(t, tmpDir, "A", "B", "C")
		os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644)
		mkdirs(t, filepath.Join(tmpDir, "A"), "nested")

		got, err := svc.ListSubdirectories(tmpDir)
		if err != nil {
			t.Fatalf("ListSubdirectories() error = %v", err)
		}
		sort.Strings(got)
		want := []string{"A", "B", "C"}
		if len(got) != len(want) {
			t.Fatalf("ListSubdirectories() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ListSubdirectories()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("includes symlinks to directories", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		tmpDir, svc := setupTestSource(t)
		target := t.TempDir()
		if err := os.Symlink(target, filepath.Join(tmpDir, "link")); err != nil {
			t.Fatalf("Symlink() error = %v", err)
		}
		os.WriteFile(filepath.Join(tmpDir, "file"), []byte("x"), 0o644)
		if err := os.Symlink(filepath.Join(tmpDir, "file"), filepath.Join(tmpDir, "filelink")); err != nil {
			t.Fatalf("Symlink() error = %v", err)
		}

		got, err := svc.ListSubdirectories(tmpDir)
		if err != nil {
			t.Fatalf("ListSubdirectories() error = %v", err)
		}
		if len(got) != 1 || got[0] != "link" {
			t.Errorf("ListSubdirectories() = %v, want [link]", got)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		got, err := svc.ListSubdirectories(tmpDir)
		if err != nil {
			t.Fatalf("ListSubdirectories() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("ListSubdirectories() = %v, want empty", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		_, err := svc.ListSubdirectories(filepath.Join(tmpDir, "missing"))
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("error = %v, want ErrSourceNotFound", err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		file := filepath.Join(tmpDir, "file.txt")
		os.WriteFile(file, []byte("x"), 0o644)

		_, err := svc.ListSubdirectories(file)
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("error = %v, want ErrNotDirectory", err)
		}
	})
}

func TestService_FolderYear(t *testing.T) {
	t.Run("modified year", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		mkdirs(t, tmpDir, "A")
		path := filepath.Join(tmpDir, "A")
		when := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
		if err := os.Chtimes(path, when, when); err != nil {
			t.Fatalf("Chtimes() error = %v", err)
		}

		year, err := svc.FolderYear(path, true)
		if err != nil {
			t.Fatalf("FolderYear() error = %v", err)
		}
		if year != 2021 {
			t.Errorf("FolderYear() = %d, want 2021", year)
		}
	})

	t.Run("creation year of a fresh folder is this year", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		mkdirs(t, tmpDir, "A")

		before := time.Now().UTC().Year()
		year, err := svc.FolderYear(filepath.Join(tmpDir, "A"), false)
		after := time.Now().UTC().Year()
		if err != nil {
			t.Fatalf("FolderYear() error = %v", err)
		}
		if year != before && year != after {
			t.Errorf("FolderYear() = %d, want %d", year, before)
		}
	})

	t.Run("missing folder", func(t *testing.T) {
		tmpDir, svc := setupTestSource(t)
		for _, useModified := range []bool{true, false} {
			if _, err := svc.FolderYear(filepath.Join(tmpDir, "gone"), useModified); err == nil {
				t.Errorf("FolderYear(useModified=%v) error = nil, want error", useModified)
			}
		}
	})

	t.Run("year follows the configured location", func(t *testing.T) {
		tmpDir, _ := setupTestSource(t)
		mkdirs(t, tmpDir, "A")
		path := filepath.Join(tmpDir, "A")
		when := time.Date(2021, time.December, 31, 23, 30, 0, 0, time.UTC)
		os.Chtimes(path, when, when)

		east := time.FixedZone("UTC+2", 2*60*60)
		year, err := New(east).FolderYear(path, true)
		if err != nil {
			t.Fatalf("FolderYear() error = %v", err)
		}
		if year != 2022 {
			t.Errorf("FolderYear() = %d, want 2022", year)
		}
	})
}

func TestService_Scan(t *testing.T) {
	tmpDir, svc := setupTestSource(t)
	mkdirs(t, tmpDir, "A", "B")
	old := time.Date(2019, time.March, 3, 0, 0, 0, 0, time.UTC)
	os.Chtimes(filepath.Join(tmpDir, "A"), old, old)

	candidates, err := svc.Scan(tmpDir, true)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("Scan() returned %d candidates, want 2", len(candidates))
	}
	for _, c := range candidates {
		if !c.YearKnown {
			t.Errorf("candidate %s: YearKnown = false", c.Name)
		}
		if c.Path != filepath.Join(tmpDir, c.Name) {
			t.Errorf("candidate %s: Path = %q", c.Name, c.Path)
		}
		if c.Name == "A" && c.Year != 2019 {
			t.Errorf("candidate A: Year = %d, want 2019", c.Year)
		}
	}

	if _, err := svc.Scan(filepath.Join(tmpDir, "missing"), true); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Scan(missing) error = %v, want ErrSourceNotFound", err)
	}
}

func TestService_ExistsAndEnsureDirectory(t *testing.T) {
	tmpDir, svc := setupTestSource(t)
	path := filepath.Join(tmpDir, "archive", "2021")

	if svc.Exists(path) {
		t.Fatal("Exists() = true before creation")
	}
	if err := svc.EnsureDirectory(path); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	if !svc.Exists(path) {
		t.Error("Exists() = false after creation")
	}
	isDir, err := svc.IsDirectory(path)
	if err != nil || !isDir {
		t.Errorf("IsDirectory() = %v, %v; want true, nil", isDir, err)
	}
}
