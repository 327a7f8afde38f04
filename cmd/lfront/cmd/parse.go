package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"LFront/internal/ast"
	"LFront/internal/frontend"

	"github.com/spf13/cobra"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree",
	Long: `Parses the whole file and prints the syntax tree. The first error
aborts the parse. With no file, or "-", source is read from stdin.

Formats: text (outline), yaml, json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, yaml or json")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, closeSrc, err := openSource(args)
	if err != nil {
		return err
	}
	defer closeSrc()

	session := frontend.NewSession(src, frontend.Options{MaxRunes: appConfig.Lexer.MaxRunes})
	program, err := session.Parse()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "text":
		fmt.Fprint(out, ast.Format(program, session.Symbols()))
	case "yaml":
		data, err := ast.YAML(program, session.Symbols())
		if err != nil {
			return err
		}
		out.Write(data)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.NewView(program, session.Symbols()))
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}
	return nil
}

// openSource returns the named file, or stdin for no argument or "-".
func openSource(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}
	return f, func() { f.Close() }, nil
}
