// Package types defines all data structures shared by the relocator and its front ends.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned when a MoveRequest fails validation.
var ErrInvalidRequest = errors.New("invalid move request")

type (
	// MoveRequest describes a single relocation pass. It is not modified once built.
	MoveRequest struct {
		Source                   string   `json:"source" yaml:"source"`
		Destination              string   `json:"destination" yaml:"destination"`
		Year                     int      `json:"year" yaml:"year"`
		Limit                    int      `json:"limit,omitempty" yaml:"limit,omitempty"` // 0 = unlimited
		UseModifiedDate          bool     `json:"useModifiedDate,omitempty" yaml:"use_modified_date,omitempty"`
		Exclude                  []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
		ExcludePatterns          []string `json:"excludePatterns,omitempty" yaml:"exclude_patterns,omitempty"`
		DryRun                   bool     `json:"dryRun,omitempty" yaml:"dry_run,omitempty"`
		FailIfDestinationMissing bool     `json:"failIfDestinationMissing,omitempty" yaml:"fail_if_destination_missing,omitempty"`
	}
)

// Validate checks the fields every front end must supply.
func (r MoveRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.Source) == "" {
		problems = append(problems, "source is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		problems = append(problems, "destination is required")
	}
	if r.Year <= 0 {
		problems = append(problems, "year is required")
	}
	if r.Limit < 0 {
		problems = append(problems, "limit cannot be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, ", "))
	}
	return nil
}

// ParseNameList splits a comma separated list of folder names, trimming
// whitespace and dropping empty entries.
func ParseNameList(s string) []string {
	return TrimNames(strings.Split(s, ","))
}

// TrimNames trims whitespace from each name and drops empty entries.
func TrimNames(names []string) []string {
	var out []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
