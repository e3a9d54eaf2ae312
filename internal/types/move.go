package types

// Outcome is the fate of a single folder during a relocation pass.
type Outcome string

const (
	OutcomeMoved        Outcome = "moved"
	OutcomeWouldMove    Outcome = "would-move"
	OutcomeExcluded     Outcome = "excluded"
	OutcomeYearMismatch Outcome = "year-mismatch"
	OutcomeYearUnknown  Outcome = "year-unknown"
	OutcomeExists       Outcome = "exists"
	OutcomeFailed       Outcome = "failed"
)

type (
	// FolderOutcome records what happened to one folder.
	FolderOutcome struct {
		Name        string  `json:"name" yaml:"name"`
		Year        int     `json:"year,omitempty" yaml:"year,omitempty"`
		Outcome     Outcome `json:"outcome" yaml:"outcome"`
		Destination string  `json:"destination,omitempty" yaml:"destination,omitempty"`
		Message     string  `json:"message,omitempty" yaml:"message,omitempty"`
	}

	// MoveResult contains the result of a relocation pass.
	MoveResult struct {
		Moved        int             `json:"moved" yaml:"moved"`
		DryRun       bool            `json:"dryRun,omitempty" yaml:"dry_run,omitempty"`
		LimitReached bool            `json:"limitReached,omitempty" yaml:"limit_reached,omitempty"`
		Folders      []FolderOutcome `json:"folders" yaml:"folders"`
	}
)

// Count returns how many folders ended with the given outcome.
func (r MoveResult) Count(o Outcome) int {
	n := 0
	for _, f := range r.Folders {
		if f.Outcome == o {
			n++
		}
	}
	return n
}
