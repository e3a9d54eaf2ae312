// Package transfer moves folders into the archive. Moves on the same volume are
// a single rename; moves across volumes copy the tree and then remove the source.
package transfer

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrSourceNotFound is returned when the folder to move does not exist.
	ErrSourceNotFound = errors.New("source folder not found")

	// ErrDestinationExists is returned when something already occupies the target path.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrCrossDevice is returned by RenameMover when src and dst are on different volumes.
	ErrCrossDevice = errors.New("source and destination are on different volumes")
)

// Mover is the interface for folder move implementations.
type Mover interface {
	// Move relocates src to dst. dst must not exist; its parent must.
	Move(src, dst string) error

	// Name returns a human-readable name for this mover implementation.
	Name() string
}

// Default returns the mover used by the relocator: rename, then copy+delete
// when the rename crosses volumes.
func Default() *FallbackMover {
	return NewFallbackMover(NewRenameMover(), NewCopyMover())
}

// RenameMover moves with a single os.Rename.
type RenameMover struct{}

func NewRenameMover() *RenameMover {
	return &RenameMover{}
}

func (r *RenameMover) Name() string {
	return "rename"
}

func (r *RenameMover) Move(src, dst string) error {
	if err := preflight(src, dst); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		if isCrossDevice(err) {
			return fmt.Errorf("%w: %v", ErrCrossDevice, err)
		}
		return fmt.Errorf("rename failed: %w", err)
	}
	return nil
}

// FallbackMover tries movers in order. The next mover is only tried when the
// previous one failed with ErrCrossDevice, so a real failure is never masked.
type FallbackMover struct {
	movers []Mover
}

// NewFallbackMover creates a mover that tries movers in order.
func NewFallbackMover(movers ...Mover) *FallbackMover {
	return &FallbackMover{movers: movers}
}

func (f *FallbackMover) Name() string {
	names := make([]string, len(f.movers))
	for i, m := range f.movers {
		names[i] = m.Name()
	}
	return "fallback(" + strings.Join(names, ",") + ")"
}

func (f *FallbackMover) Move(src, dst string) error {
	var errs []string
	for _, m := range f.movers {
		err := m.Move(src, dst)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrCrossDevice) {
			return err
		}
		errs = append(errs, fmt.Sprintf("%s: %v", m.Name(), err))
	}
	if len(errs) == 0 {
		return errors.New("no movers configured")
	}
	return fmt.Errorf("all movers failed: %s", strings.Join(errs, "; "))
}

func preflight(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	return nil
}
