package main

import (
	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/config"
)

// requestFlags are the MoveRequest fields settable on the command line.
// Only flags the user actually passed override the config file and environment.
type requestFlags struct {
	source          string
	destination     string
	year            int
	limit           int
	modified        bool
	exclude         []string
	excludePatterns []string
	dryRun          bool
	failIfMissing   bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.source, "source", "s", "", "directory whose subfolders are archived")
	fl.StringVarP(&f.destination, "dest", "d", "", "archive directory (created if missing)")
	fl.IntVarP(&f.year, "year", "y", 0, "year of folders to move")
	fl.IntVarP(&f.limit, "limit", "l", 0, "maximum number of folders to move (0 = no limit)")
	fl.BoolVarP(&f.modified, "modified", "m", false, "use the last modified date instead of the creation date")
	fl.StringSliceVarP(&f.exclude, "exclude", "x", nil, "folder names to leave alone (comma separated, case-sensitive)")
	fl.StringSliceVar(&f.excludePatterns, "exclude-pattern", nil, "glob patterns of folder names to leave alone")
	fl.BoolVarP(&f.dryRun, "dry-run", "n", false, "report what would move without moving anything")
	fl.BoolVar(&f.failIfMissing, "no-create", false, "fail instead of creating a missing destination")
}

// registerScan registers the subset of flags that affect which folders match.
func (f *requestFlags) registerScan(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.source, "source", "s", "", "directory whose subfolders are listed")
	fl.IntVarP(&f.year, "year", "y", 0, "mark folders from this year")
	fl.BoolVarP(&f.modified, "modified", "m", false, "use the last modified date instead of the creation date")
	fl.StringSliceVarP(&f.exclude, "exclude", "x", nil, "folder names to mark as excluded (comma separated, case-sensitive)")
	fl.StringSliceVar(&f.excludePatterns, "exclude-pattern", nil, "glob patterns of folder names to mark as excluded")
}

func (f *requestFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("source") {
		cfg.Source = f.source
	}
	if fl.Changed("dest") {
		cfg.Destination = f.destination
	}
	if fl.Changed("year") {
		cfg.Year = f.year
	}
	if fl.Changed("limit") {
		cfg.Limit = f.limit
	}
	if fl.Changed("modified") {
		cfg.UseModifiedDate = f.modified
	}
	if fl.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if fl.Changed("exclude-pattern") {
		cfg.ExcludePatterns = f.excludePatterns
	}
	if fl.Changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if fl.Changed("no-create") {
		cfg.FailIfDestinationMissing = f.failIfMissing
	}
}
