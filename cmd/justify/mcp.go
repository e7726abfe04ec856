package main

import (
	"github.com/rwx-cloud/justify/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpCmd = &cobra.Command{
		Use:   "mcp",
		Short: "MCP (Model Context Protocol) related commands",
	}

	mcpServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start an MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.Serve(cmd.Context(), mcp.ServerConfig{Logger: service.Logger})
		},
	}
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
