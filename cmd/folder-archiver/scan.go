package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/pathfilter"
	"github.com/taigrr/folder-archiver/internal/types"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newScanCmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the subfolders of the source with their year",
		Long: `scan lists every immediate subfolder of the source directory together
with the year that move would compare. When a year is given, folders
that would be moved are marked. Nothing is changed.`,
		Example: `folder-archiver scan -s ~/projects
folder-archiver scan -s ~/projects -y 2021 --modified`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			req := cfg.Request()
			if strings.TrimSpace(req.Source) == "" {
				return fmt.Errorf("%w: source folder is required", types.ErrInvalidRequest)
			}

			candidates, err := filesystem.New(nil).Scan(req.Source, req.UseModifiedDate)
			if err != nil {
				return err
			}
			slices.SortFunc(candidates, func(a, b types.FolderCandidate) int {
				return strings.Compare(a.Name, b.Name)
			})

			filter := pathfilter.New(&types.ExclusionConfig{Names: req.Exclude, Patterns: req.ExcludePatterns})
			fmt.Fprintln(cmd.OutOrStdout(), renderCandidates(candidates, filter, req.Year))
			return nil
		},
	}

	flags.registerScan(cmd)
	return cmd
}

// candidateStatus describes how a pass for year would treat c.
func candidateStatus(c types.FolderCandidate, filter *pathfilter.PathFilter, year int) string {
	switch {
	case filter.IsExcluded(c.Name):
		return string(types.OutcomeExcluded)
	case !c.YearKnown:
		return c.Error
	case year > 0 && c.Year == year:
		return "match"
	}
	return ""
}

func renderCandidates(candidates []types.FolderCandidate, filter *pathfilter.PathFilter, year int) string {
	if len(candidates) == 0 {
		return "No folders found."
	}

	t := newTable("FOLDER", "YEAR", "STATUS")
	for _, c := range candidates {
		y := "?"
		if c.YearKnown {
			y = strconv.Itoa(c.Year)
		}
		t.Row(c.Name, y, candidateStatus(c, filter, year))
	}
	return t.Render()
}

func renderOutcomes(folders []types.FolderOutcome) string {
	if len(folders) == 0 {
		return "No folders found."
	}

	t := newTable("FOLDER", "YEAR", "OUTCOME", "DETAIL")
	for _, f := range folders {
		y := ""
		if f.Year > 0 {
			y = strconv.Itoa(f.Year)
		}
		detail := f.Message
		if detail == "" {
			detail = f.Destination
		}
		t.Row(f.Name, y, string(f.Outcome), detail)
	}
	return t.Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
