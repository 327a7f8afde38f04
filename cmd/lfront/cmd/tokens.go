package cmd

import (
	"fmt"

	"LFront/internal/frontend"
	"LFront/internal/repl"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, closeSrc, err := openSource(args)
	if err != nil {
		return err
	}
	defer closeSrc()

	session := frontend.NewSession(src, frontend.Options{MaxRunes: appConfig.Lexer.MaxRunes})
	tokens, err := session.Tokens()

	// print what was lexed before a failure too
	fmt.Fprint(cmd.OutOrStdout(), repl.FormatTokens(tokens, session.Symbols()))
	return err
}
