package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/folder-archiver/internal/pathfilter"
	"github.com/taigrr/folder-archiver/internal/types"
)

var errNotConfirmed = errors.New("relocation requires confirm='yes' (or dryRun)")

func handleScan(ctx context.Context, req *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	source := strings.TrimSpace(input.Source)
	if source == "" {
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, fmt.Errorf("%w: source folder is required", types.ErrInvalidRequest)
	}

	candidates, err := fileSystem.Scan(source, input.UseModifiedDate)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ScanOutput{}, err
	}

	filter := pathfilter.New(&types.ExclusionConfig{
		Names:    types.TrimNames(input.Exclude),
		Patterns: types.TrimNames(input.ExcludePatterns),
	})
	matching := 0
	for _, c := range candidates {
		if input.Year > 0 && c.YearKnown && c.Year == input.Year && !filter.IsExcluded(c.Name) {
			matching++
		}
	}

	return nil, ScanOutput{Folders: candidates, Matching: matching}, nil
}

func handleRelocate(ctx context.Context, req *mcp.CallToolRequest, input RelocateInput) (*mcp.CallToolResult, RelocateOutput, error) {
	if !input.DryRun && input.Confirm != "yes" {
		return &mcp.CallToolResult{IsError: true}, RelocateOutput{}, errNotConfirmed
	}

	moveReq := types.MoveRequest{
		Source:                   strings.TrimSpace(input.Source),
		Destination:              strings.TrimSpace(input.Destination),
		Year:                     input.Year,
		Limit:                    input.Limit,
		UseModifiedDate:          input.UseModifiedDate,
		Exclude:                  types.TrimNames(input.Exclude),
		ExcludePatterns:          types.TrimNames(input.ExcludePatterns),
		DryRun:                   input.DryRun,
		FailIfDestinationMissing: input.FailIfDestinationMissing,
	}

	result, err := relocatorService.Run(ctx, moveReq)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RelocateOutput{}, err
	}

	return nil, RelocateOutput{
		Moved:        result.Moved,
		DryRun:       result.DryRun,
		LimitReached: result.LimitReached,
		Folders:      result.Folders,
	}, nil
}
