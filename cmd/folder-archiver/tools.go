package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/folder-archiver/internal/types"
)

type (
	// ScanInput contains parameters for listing candidate folders.
	ScanInput struct {
		Source          string   `json:"source" jsonschema:"Directory whose immediate subfolders are listed"`
		Year            int      `json:"year,omitempty" jsonschema:"Count folders from this year as matches (optional)"`
		UseModifiedDate bool     `json:"useModifiedDate,omitempty" jsonschema:"Use the last modified date instead of the creation date (default: false)"`
		Exclude         []string `json:"exclude,omitempty" jsonschema:"Folder names to treat as excluded (case-sensitive)"`
		ExcludePatterns []string `json:"excludePatterns,omitempty" jsonschema:"Glob patterns of folder names to treat as excluded"`
	}

	// ScanOutput contains the folders found in the source.
	ScanOutput struct {
		Folders  []types.FolderCandidate `json:"folders"`
		Matching int                     `json:"matching"`
	}

	// RelocateInput contains parameters for a relocation pass.
	RelocateInput struct {
		Source                   string   `json:"source" jsonschema:"Directory whose immediate subfolders are archived"`
		Destination              string   `json:"destination" jsonschema:"Archive directory"`
		Year                     int      `json:"year" jsonschema:"Year of folders to move"`
		Limit                    int      `json:"limit,omitempty" jsonschema:"Maximum number of folders to move (default: 0 = no limit)"`
		UseModifiedDate          bool     `json:"useModifiedDate,omitempty" jsonschema:"Use the last modified date instead of the creation date (default: false)"`
		Exclude                  []string `json:"exclude,omitempty" jsonschema:"Folder names to leave alone (case-sensitive)"`
		ExcludePatterns          []string `json:"excludePatterns,omitempty" jsonschema:"Glob patterns of folder names to leave alone"`
		DryRun                   bool     `json:"dryRun,omitempty" jsonschema:"Report what would move without moving anything (default: false)"`
		FailIfDestinationMissing bool     `json:"failIfDestinationMissing,omitempty" jsonschema:"Fail instead of creating a missing destination (default: false)"`
		Confirm                  string   `json:"confirm,omitempty" jsonschema:"Must be set to 'yes' unless dryRun is set"`
	}

	// RelocateOutput contains the result of a relocation pass.
	RelocateOutput struct {
		Moved        int                   `json:"moved"`
		DryRun       bool                  `json:"dryRun,omitempty"`
		LimitReached bool                  `json:"limitReached,omitempty"`
		Folders      []types.FolderOutcome `json:"folders"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "List the immediate subfolders of a directory with their creation (or modified) year. Read-only.",
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "relocate",
		Description: "Move the immediate subfolders of source whose year matches into destination. Existing folders in the destination are skipped, never overwritten. Requires confirm='yes' unless dryRun is set.",
	}, handleRelocate)
}
