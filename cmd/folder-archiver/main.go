// Package main implements the folder-archiver command line tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/config"
	"github.com/taigrr/folder-archiver/internal/logger"
)

var (
	cfgFile string
	logFile string
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder-archiver",
		Short: "Archive project folders by creation or modified year",
		Long: `folder-archiver moves the immediate subfolders of a source directory into
an archive directory when the year the folder was created (or last
modified) matches the year you ask for.

Folders already present in the archive are never overwritten, excluded
names are left alone, and an optional limit caps how many folders move
in one run. Every decision is appended to a log file.`,
		Example: `folder-archiver move --source ~/projects --dest /mnt/archive --year 2021
folder-archiver scan --source ~/projects --modified
folder-archiver tui`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: <user config dir>/folder-archiver/config.yaml)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append log lines to this file (overrides config)")

	cmd.AddCommand(newMoveCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return cfg, nil
}

func openLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return log, nil
}
