package cmd

import (
	"github.com/chris-regnier/diary/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes diary tools
over stdio transport.

Available tools:
  - search_entries: Case-insensitive keyword search over entry text
  - list_entries: List entry filenames, newest first
  - read_entry: Read one entry
  - create_entry: Write a new entry
  - create_backup: Archive entries and preferences into a zip

Example usage in an MCP client config:
  {
    "mcpServers": {
      "diary": {
        "command": "/path/to/diary",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(d)

	// stdout is reserved for the protocol; the logger writes to stderr.
	logger.Info().
		Str("entries_dir", d.EntriesDirectory()).
		Str("backup_dir", d.BackupDirectory()).
		Msg("starting MCP server (stdio transport)")

	// Blocks until the transport closes or the context is cancelled.
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil && cmd.Context().Err() == nil {
		return withCode(exitFailure, err)
	}
	return nil
}
