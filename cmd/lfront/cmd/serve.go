package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"LFront/internal/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP parse endpoints",
	Long: `Starts an HTTP server with:

  GET  /health   liveness
  POST /parse    {"source": "..."} -> syntax tree
  POST /tokens   {"source": "..."} -> token table

Each request is parsed in its own session.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		appConfig.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving on %s\n", appConfig.Server.Addr)
	return server.New(appConfig).ListenAndServe(ctx)
}
