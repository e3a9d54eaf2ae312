package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/folder-archiver/internal/filesystem"
	"github.com/taigrr/folder-archiver/internal/relocator"
	"github.com/taigrr/folder-archiver/internal/transfer"
)

var (
	fileSystem       *filesystem.Service
	relocatorService *relocator.Relocator
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as a Model Context Protocol server on stdio",
		Long: `serve exposes the scan and relocate operations as MCP tools over
stdin/stdout so any MCP-compatible harness can preview and archive folders.
Log lines go to the configured log file, never to stdout.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Initialize services
	fileSystem = filesystem.New(nil)
	relocatorService = relocator.New(fileSystem, transfer.Default(), log)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "folder-archiver",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
