package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/relocator"
	"github.com/taigrr/folder-archiver/internal/transfer"
	"github.com/taigrr/folder-archiver/internal/tui"
)

func newTUICmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Fill in the move options in an interactive form",
		Long: `tui opens a terminal form prefilled from the config file, the
environment and any flags given. After confirmation the pass runs in the
background and the number of moved folders is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			log, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			r := relocator.New(filesystem.New(nil), transfer.Default(), log)
			result, ran, err := tui.Run(cmd.Context(), r, cfg.Request())
			if !ran {
				return err
			}
			if err != nil {
				return fmt.Errorf("an error occurred: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary(result))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
