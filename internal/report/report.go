// Package report renders the outcome of a relocation pass as YAML.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/folder-archiver/internal/types"
)

// Report is the persisted record of one pass.
type Report struct {
	RunID    string            `yaml:"run_id"`
	Started  time.Time         `yaml:"started"`
	Finished time.Time         `yaml:"finished"`
	Request  types.MoveRequest `yaml:"request"`
	Result   types.MoveResult  `yaml:"result"`
	Error    string            `yaml:"error,omitempty"`
}

// New builds a report with a fresh run ID.
func New(req types.MoveRequest, result types.MoveResult, runErr error, started, finished time.Time) Report {
	r := Report{
		RunID:    uuid.NewString(),
		Started:  started,
		Finished: finished,
		Request:  req,
		Result:   result,
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}

// Encode writes the report as YAML.
func (r Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteFile writes the report to path, replacing any previous file.
func (r Report) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write report: %s - %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
