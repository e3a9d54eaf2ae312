package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/relocator"
	"github.com/taigrr/folder-archiver/internal/report"
	"github.com/taigrr/folder-archiver/internal/transfer"
	"github.com/taigrr/folder-archiver/internal/types"
)

func newMoveCmd() *cobra.Command {
	var (
		flags      requestFlags
		yes        bool
		verbose    bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move folders from the given year into the archive",
		Example: `folder-archiver move -s ~/projects -d /mnt/archive -y 2021
folder-archiver move -s ~/projects -d /mnt/archive -y 2021 --limit 5 --exclude keep,notes --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			req := cfg.Request()
			if err := req.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes && !req.DryRun {
				ok, err := confirm(cmd.InOrStdin(), out, "Proceed with moving folders?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			log, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			r := relocator.New(filesystem.New(nil), transfer.Default(), log)

			started := time.Now()
			result, runErr := r.Run(cmd.Context(), req)
			finished := time.Now()

			if reportPath != "" {
				if err := report.New(req, result, runErr, started, finished).WriteFile(reportPath); err != nil {
					return errors.Join(runErr, err)
				}
			}

			if runErr != nil {
				return fmt.Errorf("an error occurred: %w", runErr)
			}

			if verbose {
				fmt.Fprintln(out, renderOutcomes(result.Folders))
			}
			fmt.Fprintln(out, summary(result))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list what happened to every folder")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML report of the pass to this file")
	return cmd
}

func summary(result types.MoveResult) string {
	var b strings.Builder
	if result.DryRun {
		fmt.Fprintf(&b, "Would move %d folders.", result.Moved)
	} else {
		fmt.Fprintf(&b, "Moved %d folders.", result.Moved)
	}
	if result.LimitReached {
		b.WriteString(" Move limit reached.")
	}
	if n := result.Count(types.OutcomeFailed); n > 0 {
		fmt.Fprintf(&b, " %d failed, see the log for details.", n)
	}
	return b.String()
}

// confirm asks a yes/no question on out and reads the answer from in.
// Anything other than y or yes, including end of input, is a no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
