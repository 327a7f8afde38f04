package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"LFront/helpers"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// parseMsg carries the outcome of one /parse round trip.
type parseMsg struct {
	output string
	err    error
}

func parseCmd(client *http.Client, addr, source string) tea.Cmd {
	return func() tea.Msg {
		out, err := parseSource(client, addr, source)
		return parseMsg{output: out, err: err}
	}
}

type keyMap struct {
	Quit  key.Binding
	Run   key.Binding
	Clear key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "parse"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear source"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Clear},
		{k.Quit},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type model struct {
	addr     string
	client   *http.Client
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	status   string
	loading  bool
	err      error
	width    int
	height   int
}

func newModel(addr string) model {
	ta := textarea.New()
	ta.Placeholder = "let speed : float = 2.5;"
	ta.Focus()
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = true

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("The syntax tree will appear here."))

	h := help.New()
	h.ShowAll = true

	return model{
		addr:     addr,
		client:   &http.Client{Timeout: 10 * time.Second},
		input:    ta,
		viewport: vp,
		help:     h,
		keys:     newKeyMap(),
		status:   "Connected to " + addr,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		inputHeight, resultsHeight := splitHeight(m.height)

		m.input.SetWidth(m.width - 6)
		m.input.SetHeight(inputHeight)
		m.viewport.Width = m.width - 6
		m.viewport.Height = resultsHeight
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Clear) {
			m.input.Reset()
			return m, nil
		}

		if key.Matches(msg, m.keys.Run) {
			source := m.input.Value()
			if strings.TrimSpace(source) == "" {
				return m, nil
			}

			m.loading = true
			m.status = "Parsing..."
			m.err = nil
			return m, parseCmd(m.client, m.addr, source)
		}
	case parseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Parse failed"
			m.viewport.SetContent(errorStyle.Render(msg.err.Error()))
		} else {
			m.err = nil
			m.status = "Parse succeeded"
			m.viewport.SetContent(msg.output)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// splitHeight divides the terminal rows left after the fixed chrome between
// the source box and the results viewport, one third to the source.
func splitHeight(height int) (input, results int) {
	const chromeLines = 10 // title, address, labels, blanks, status, help
	const minInput = 3
	const minResults = 3

	available := height - chromeLines
	if available < 2 {
		return 1, 1
	}

	if available <= minInput+minResults {
		input = available / 2
		return input, available - input
	}

	input = available / 3
	if input < minInput {
		input = minInput
	}
	results = available - input
	if results < minResults {
		results = minResults
	}
	return input, results
}

func (m model) View() string {
	title := titleStyle.Render("LFront") + " " + subtle.Render("parser client")
	addr := subtle.Render("Server: " + m.addr)

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.err != nil {
		statusLine += "  " + errorStyle.Render("see results")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		addr,
		"",
		"Source:",
		boxStyle.Render(m.input.View()),
		"",
		"Syntax tree:",
		boxStyle.Render(m.viewport.View()),
		"",
		statusLine,
		m.help.View(m.keys),
	)
}

func main() {
	addr := flag.String("addr", "localhost:8080", "lfront server address")
	flag.Parse()

	p := tea.NewProgram(newModel(helpers.BaseURL(*addr)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running TUI:", err)
		os.Exit(1)
	}
}
