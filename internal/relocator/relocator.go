// Package relocator implements the archive pass: it moves the immediate
// subfolders of a source directory whose creation or modification year matches
// a target year into a destination directory.
package relocator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/logger"
	"github.com/taigrr/folder-archiver/internal/pathfilter"
	"github.com/taigrr/folder-archiver/internal/transfer"
	"github.com/taigrr/folder-archiver/internal/types"
)

var (
	// ErrDestinationMissing is returned when the destination does not exist and
	// the request asks not to create it.
	ErrDestinationMissing = errors.New("destination directory does not exist")

	// ErrDestinationNotDirectory is returned when the destination exists but is not a directory.
	ErrDestinationNotDirectory = errors.New("destination is not a directory")
)

// FolderSource is the file system view the relocator needs.
type FolderSource interface {
	ListSubdirectories(path string) ([]string, error)
	FolderYear(path string, useModified bool) (int, error)
	Exists(path string) bool
	IsDirectory(path string) (bool, error)
	EnsureDirectory(path string) error
}

// Relocator runs relocation passes. It holds no per-run state and may be
// shared, but concurrent runs against one destination are not coordinated.
type Relocator struct {
	source FolderSource
	mover  transfer.Mover
	log    *logger.Logger
}

// New creates a Relocator. Nil dependencies are replaced by the defaults:
// the local file system, the rename-then-copy mover and a discarding logger.
func New(source FolderSource, mover transfer.Mover, log *logger.Logger) *Relocator {
	if source == nil {
		source = filesystem.New(nil)
	}
	if mover == nil {
		mover = transfer.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Relocator{source: source, mover: mover, log: log}
}

// Run performs one relocation pass and returns the folders it moved.
//
// Failing to enumerate the source, an invalid request or an unusable
// destination abort the pass with an error and no result. Per-folder problems
// are logged and recorded in the result; the pass continues with the next
// folder. Folders are visited in the order the file system lists them, so
// when Limit truncates the pass, which folders move is platform dependent.
//
// ctx is checked between folders. A cancelled pass returns what it did so far
// together with ctx.Err(); folders already moved stay moved.
func (r *Relocator) Run(ctx context.Context, req types.MoveRequest) (types.MoveResult, error) {
	result, err := r.run(ctx, req)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		r.log.Error().Msgf("Error moving folders: %v", err)
	}
	return result, err
}

func (r *Relocator) run(ctx context.Context, req types.MoveRequest) (types.MoveResult, error) {
	if err := req.Validate(); err != nil {
		return types.MoveResult{}, err
	}

	names, err := r.source.ListSubdirectories(req.Source)
	if err != nil {
		return types.MoveResult{}, fmt.Errorf("cannot read source directory: %w", err)
	}

	if err := r.prepareDestination(req); err != nil {
		return types.MoveResult{}, err
	}

	filter := pathfilter.New(&types.ExclusionConfig{
		Names:    req.Exclude,
		Patterns: req.ExcludePatterns,
	})

	result := types.MoveResult{DryRun: req.DryRun, Folders: make([]types.FolderOutcome, 0, len(names))}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome := r.process(req, filter, name)
		result.Folders = append(result.Folders, outcome)
		if outcome.Outcome != types.OutcomeMoved && outcome.Outcome != types.OutcomeWouldMove {
			continue
		}

		result.Moved++
		if req.Limit > 0 && result.Moved >= req.Limit {
			result.LimitReached = true
			break
		}
	}

	if req.DryRun {
		r.log.Info().Msgf("Dry run: would move %d folders.", result.Moved)
	} else {
		r.log.Info().Msgf("Moved %d folders.", result.Moved)
	}
	return result, nil
}

func (r *Relocator) prepareDestination(req types.MoveRequest) error {
	if r.source.Exists(req.Destination) {
		isDir, err := r.source.IsDirectory(req.Destination)
		if err != nil {
			return fmt.Errorf("cannot use destination: %w", err)
		}
		if !isDir {
			return fmt.Errorf("%w: %s", ErrDestinationNotDirectory, req.Destination)
		}
		return nil
	}

	if req.FailIfDestinationMissing {
		return fmt.Errorf("%w: %s", ErrDestinationMissing, req.Destination)
	}
	if req.DryRun {
		r.log.Info().Msgf("Destination %s does not exist; it would be created.", req.Destination)
		return nil
	}
	if err := r.source.EnsureDirectory(req.Destination); err != nil {
		return err
	}
	r.log.Info().Msgf("Created destination %s", req.Destination)
	return nil
}

func (r *Relocator) process(req types.MoveRequest, filter *pathfilter.PathFilter, name string) types.FolderOutcome {
	outcome := types.FolderOutcome{Name: name}
	folderPath := filepath.Join(req.Source, name)

	if filter.IsExcluded(name) {
		r.log.Info().Msgf("Skipping %s: excluded by user.", name)
		outcome.Outcome = types.OutcomeExcluded
		return outcome
	}

	if sameDir(folderPath, req.Destination) {
		r.log.Info().Msgf("Skipping %s: it is the destination.", name)
		outcome.Outcome = types.OutcomeExcluded
		outcome.Message = "destination directory"
		return outcome
	}

	year, err := r.source.FolderYear(folderPath, req.UseModifiedDate)
	if err != nil {
		kind := "creation"
		if req.UseModifiedDate {
			kind = "modified"
		}
		r.log.Error().Msgf("Error getting %s date for %s: %v", kind, folderPath, err)
		outcome.Outcome = types.OutcomeYearUnknown
		outcome.Message = err.Error()
		return outcome
	}
	outcome.Year = year
	if req.UseModifiedDate {
		r.log.Info().Msgf("Modified year for %s: %d", folderPath, year)
	} else {
		r.log.Info().Msgf("Creation year for %s: %d", folderPath, year)
	}

	if year != req.Year {
		outcome.Outcome = types.OutcomeYearMismatch
		return outcome
	}

	destPath := filepath.Join(req.Destination, name)
	outcome.Destination = destPath
	if r.source.Exists(destPath) {
		r.log.Warn().Msgf("Skipping %s: already exists in archive.", name)
		outcome.Outcome = types.OutcomeExists
		return outcome
	}

	if req.DryRun {
		r.log.Info().Msgf("Would move %s to %s", name, destPath)
		outcome.Outcome = types.OutcomeWouldMove
		return outcome
	}

	if err := r.mover.Move(folderPath, destPath); err != nil {
		r.log.Error().Msgf("Error moving %s to %s: %v", folderPath, destPath, err)
		outcome.Outcome = types.OutcomeFailed
		outcome.Message = err.Error()
		return outcome
	}

	r.log.Info().Msgf("Moved %s to %s", name, destPath)
	outcome.Outcome = types.OutcomeMoved
	return outcome
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
