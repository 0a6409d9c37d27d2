//go:build !nofs

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients to look up time zones and convert
timestamps through tzkit. It should not be run directly by users.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	return mcp.Serve(cmd.Context(), svc)
}
