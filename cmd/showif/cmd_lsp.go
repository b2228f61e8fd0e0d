package main

import (
	"github.com/dhamidi/showif/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var tcp string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version)
			if tcp != "" {
				return server.RunTCP(tcp)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcp, "tcp", "", "listen on this TCP address instead of stdio")

	return cmd
}
