package cmd

import (
	"fmt"
	"os"

	"LFront/internal/config"
	"LFront/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
)

var loggerNames = []string{"repl", "frontend", "server"}

var rootCmd = &cobra.Command{
	Use:   "lfront",
	Short: "Lexer and parser front end for the L language",
	Long: `lfront tokenizes and parses L source text into a syntax tree.

Without a subcommand it starts the interactive REPL.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRepl,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lfront.toml or $"+config.EnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// setup loads the configuration and registers the named loggers the
// internal packages look up.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	if verbose {
		for _, name := range loggerNames {
			logger.NewWithWriter(name, os.Stderr, logger.DEBUG)
		}
		return nil
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if level == logger.OFF {
		return nil
	}
	for _, name := range loggerNames {
		if _, err := logger.New(name, cfg.Log.Dir, level); err != nil {
			return err
		}
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
