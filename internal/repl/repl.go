package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"LFront/internal/ast"
	"LFront/internal/config"
	"LFront/internal/frontend"
	"LFront/internal/logger"
	"LFront/internal/symbols"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Repl reads one line at a time and parses it as its own input. All lines
// share a symbol table so a name keeps its handle for the whole session.
type Repl struct {
	in         io.Reader
	out        io.Writer
	prompt     string
	showTokens bool
	color      bool
	maxRunes   int
	symbols    *symbols.Table
	logger     *logger.Logger
}

func New(in io.Reader, out io.Writer, cfg *config.Config) *Repl {
	return &Repl{
		in:         in,
		out:        out,
		prompt:     cfg.Repl.Prompt,
		showTokens: cfg.Repl.ShowTokens,
		color:      cfg.Repl.Color,
		maxRunes:   cfg.Lexer.MaxRunes,
		symbols:    symbols.NewTable(),
		logger:     logger.Get("repl"),
	}
}

// Run loops until exit or end of input. A failed line is reported and the
// loop carries on with the next one.
func (r *Repl) Run() error {
	r.logger.Info("Starting REPL session")
	fmt.Fprintln(r.out, "LFront parser REPL")
	fmt.Fprintln(r.out, "Enter declarations, :help for commands, or 'exit' to quit")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, r.prompt)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == ":q" || input == ":quit" {
			r.logger.Info("User requested exit")
			break
		}
		if input == "" {
			continue
		}

		r.logger.Debug("Processing line: %s", input)
		output, err := r.Eval(input)
		if err != nil {
			r.logger.Error("Line failed: %v", err)
			fmt.Fprintln(r.out, r.styleError("Error: "+err.Error()))
			continue
		}
		fmt.Fprint(r.out, output)
	}

	fmt.Fprintln(r.out)
	if err := scanner.Err(); err != nil {
		r.logger.Error("Error reading input: %v", err)
		return fmt.Errorf("read input: %w", err)
	}

	r.logger.Info("REPL session ended")
	return nil
}

// Eval handles one line: a ':' command or source text.
func (r *Repl) Eval(input string) (string, error) {
	if strings.HasPrefix(input, ":") {
		return r.command(input)
	}

	var sb strings.Builder
	opts := frontend.Options{Symbols: r.symbols, MaxRunes: r.maxRunes}

	if r.showTokens {
		tokens, err := frontend.NewStringSession(input, opts).Tokens()
		if err != nil {
			return "", err
		}
		sb.WriteString(FormatTokens(tokens, r.symbols))
	}

	program, err := frontend.NewStringSession(input, opts).Parse()
	if err != nil {
		return "", err
	}

	if len(program.Statements) == 0 {
		sb.WriteString(r.styleSubtle("(nothing to parse)") + "\n")
		return sb.String(), nil
	}
	for _, stmt := range program.Statements {
		sb.WriteString(ast.Format(stmt, r.symbols))
	}
	return sb.String(), nil
}

func (r *Repl) command(input string) (string, error) {
	switch input {
	case ":tokens":
		r.showTokens = !r.showTokens
		if r.showTokens {
			return "token display on\n", nil
		}
		return "token display off\n", nil
	case ":symbols":
		return FormatSymbols(r.symbols), nil
	case ":help":
		return strings.Join([]string{
			"  :tokens   toggle the token table before each parse",
			"  :symbols  list interned identifiers",
			"  :q, exit  leave the REPL",
			"",
		}, "\n"), nil
	}
	return "", fmt.Errorf("unknown command %s", input)
}

func (r *Repl) styleError(s string) string {
	if !r.color {
		return s
	}
	return errorStyle.Render(s)
}

func (r *Repl) styleSubtle(s string) string {
	if !r.color {
		return s
	}
	return subtle.Render(s)
}
