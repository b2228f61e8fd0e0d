package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/dhamidi/showif/ui"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newUICmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Serve the expression playground",
		Long: `Serve the expression playground over HTTP. The page parses what is typed
into it; POST /parse is also usable as a JSON API and /metrics exposes
Prometheus metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("showif.ui")

			server, err := ui.NewServer()
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			defer listener.Close()

			url := playgroundURL(listener.Addr())
			log.Noticef("serving playground at %s", url)
			fmt.Fprintf(cmd.OutOrStdout(), "Playground at %s\n", url)

			return http.Serve(listener, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}

// playgroundURL names the listener address in a form a browser can open.
func playgroundURL(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok && (tcp.IP == nil || tcp.IP.IsUnspecified()) {
		return fmt.Sprintf("http://localhost:%d/", tcp.Port)
	}
	return "http://" + addr.String() + "/"
}
