package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/relocator"
	"github.com/taigrr/folder-archiver/internal/transfer"
	"github.com/taigrr/folder-archiver/internal/types"
)

func setupServices(t *testing.T, folders ...string) (source, dest string) {
	t.Helper()
	root := t.TempDir()
	source = filepath.Join(root, "projects")
	dest = filepath.Join(root, "archive")
	for _, name := range folders {
		require.NoError(t, os.MkdirAll(filepath.Join(source, name), 0o755))
	}

	fileSystem = filesystem.New(nil)
	relocatorService = relocator.New(fileSystem, transfer.Default(), nil)
	t.Cleanup(func() {
		fileSystem = nil
		relocatorService = nil
	})
	return source, dest
}

func TestHandleScan(t *testing.T) {
	source, _ := setupServices(t, "a", "b", "keep")

	result, out, err := handleScan(context.Background(), nil, ScanInput{
		Source:          source,
		Year:            time.Now().Year(),
		UseModifiedDate: true,
		Exclude:         []string{" keep "},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Len(t, out.Folders, 3)
	assert.Equal(t, 2, out.Matching)
}

func TestHandleScan_MatchesRelocate(t *testing.T) {
	source, dest := setupServices(t, "a", "tmp-1", "tmp-2", "keep")
	year := time.Now().Year()

	_, scanned, err := handleScan(context.Background(), nil, ScanInput{
		Source:          source,
		Year:            year,
		UseModifiedDate: true,
		Exclude:         []string{"keep"},
		ExcludePatterns: []string{"tmp*"},
	})
	require.NoError(t, err)

	_, relocated, err := handleRelocate(context.Background(), nil, RelocateInput{
		Source:          source,
		Destination:     dest,
		Year:            year,
		UseModifiedDate: true,
		Exclude:         []string{"keep"},
		ExcludePatterns: []string{"tmp*"},
		DryRun:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, scanned.Matching)
	assert.Equal(t, relocated.Moved, scanned.Matching)
}

func TestHandleScan_Errors(t *testing.T) {
	source, _ := setupServices(t)

	result, _, err := handleScan(context.Background(), nil, ScanInput{Source: "  "})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	assert.True(t, result.IsError)

	result, _, err = handleScan(context.Background(), nil, ScanInput{Source: filepath.Join(source, "missing")})
	require.ErrorIs(t, err, filesystem.ErrSourceNotFound)
	assert.True(t, result.IsError)
}

func TestHandleRelocate_RequiresConfirm(t *testing.T) {
	source, dest := setupServices(t, "a")

	result, _, err := handleRelocate(context.Background(), nil, RelocateInput{
		Source:          source,
		Destination:     dest,
		Year:            time.Now().Year(),
		UseModifiedDate: true,
	})
	require.ErrorIs(t, err, errNotConfirmed)
	assert.True(t, result.IsError)
	assert.DirExists(t, filepath.Join(source, "a"))
}

func TestHandleRelocate_DryRunNeedsNoConfirm(t *testing.T) {
	source, dest := setupServices(t, "a", "b")

	result, out, err := handleRelocate(context.Background(), nil, RelocateInput{
		Source:          source,
		Destination:     dest,
		Year:            time.Now().Year(),
		UseModifiedDate: true,
		DryRun:          true,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 2, out.Moved)
	assert.True(t, out.DryRun)
	assert.DirExists(t, filepath.Join(source, "a"))
}

func TestHandleRelocate(t *testing.T) {
	source, dest := setupServices(t, "a", "b", "keep")
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "b"), 0o755))

	result, out, err := handleRelocate(context.Background(), nil, RelocateInput{
		Source:          source,
		Destination:     dest,
		Year:            time.Now().Year(),
		UseModifiedDate: true,
		Exclude:         []string{"keep"},
		Confirm:         "yes",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, out.Moved)
	assert.DirExists(t, filepath.Join(dest, "a"))
	assert.DirExists(t, filepath.Join(source, "b"))
	assert.DirExists(t, filepath.Join(source, "keep"))

	outcomes := map[string]types.Outcome{}
	for _, f := range out.Folders {
		outcomes[f.Name] = f.Outcome
	}
	assert.Equal(t, types.OutcomeMoved, outcomes["a"])
	assert.Equal(t, types.OutcomeExists, outcomes["b"])
	assert.Equal(t, types.OutcomeExcluded, outcomes["keep"])
}

func TestHandleRelocate_InvalidRequest(t *testing.T) {
	setupServices(t)

	result, _, err := handleRelocate(context.Background(), nil, RelocateInput{Confirm: "yes"})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	assert.True(t, result.IsError)
}
