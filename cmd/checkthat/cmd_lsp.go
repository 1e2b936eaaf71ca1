package main

import (
	"github.com/isti03/checkthat-generator/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, runOptions())
			return server.RunStdio()
		},
	}
}
