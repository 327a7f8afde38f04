package cmd

import (
	"context"
	"os"

	"LFront/helpers"
	"LFront/internal/repl"
	"LFront/internal/server"

	"github.com/spf13/cobra"
)

var withServer bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Long: `Reads one line at a time and prints the syntax tree of each.

A failed line is reported and the session continues. Identifiers keep the
same handle for the whole session.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().BoolVar(&withServer, "with-server", false, "also serve the HTTP parse endpoint while the REPL runs")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	if withServer {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		srv := server.New(appConfig)
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				printError("server stopped", err)
			}
		}()
		if err := helpers.WaitForServer(appConfig.Server.Addr, 50); err != nil {
			return err
		}
	}

	return repl.New(os.Stdin, cmd.OutOrStdout(), appConfig).Run()
}
