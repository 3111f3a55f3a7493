package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/publinks/internal/server"
)

// serveCommand creates the serve command for the HTTP link API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the link scanner over HTTP",
		Long: `Serve the link scanner as a JSON API for editors and other tools.

Routes:
  GET  /healthz     liveness probe
  GET  /v1/config   effective extractor toggles
  POST /v1/links    scan {"path": "...", "kind": "dart|pubspec", "text": "..."}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ext, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			printInfo("Serving link API on %s", StyleHighlight.Render(addr))
			printNextStep("Try", `curl -s -d '{"kind":"dart","text":"import '\''package:http/http.dart'\'';"}' http://`+addr+`/v1/links`)

			return server.New(ext, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:7878)")

	return cmd
}
