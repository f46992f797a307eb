package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	"github.com/msto63/expar/foundation/expar"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	"github.com/msto63/expar/foundation/expar/lower"
)

// View represents different views in the TUI
type View int

const (
	ViewResults View = iota
	ViewOperators
)

// Parser is the part of the expression engine the shell needs
type Parser interface {
	Parse(input string) (mdwast.Node, error)
}

// Entry is one evaluated line of the session
type Entry struct {
	Input    string
	Root     mdwast.Node
	Err      error
	Duration time.Duration
}

// Render renders the accepted tree in format f, or returns "" for a failed line
func (e Entry) Render(f expar.Format) string {
	if e.Root == nil {
		return ""
	}
	return expar.Render(e.Root, f)
}

// parseResultMsg carries the outcome of an evaluated line back into Update
type parseResultMsg struct {
	input    string
	root     mdwast.Node
	err      error
	duration time.Duration
}

// Model is the interactive expression shell
type Model struct {
	// State
	view   View
	width  int
	height int
	ready  bool
	format expar.Format

	// Components
	textarea textarea.Model
	viewport viewport.Model

	parser  Parser
	entries []Entry

	// Position while browsing earlier inputs with up/down; len(entries) means none
	recall int

	content string
}

// NewModel creates a shell evaluating lines with parser and rendering
// results in format
func NewModel(parser Parser, format expar.Format) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter an expression..."
	ta.Focus()
	ta.CharLimit = 4096
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	if format == "" {
		format = expar.FormatSymbolic
	}

	return Model{
		view:     ViewResults,
		format:   format,
		textarea: ta,
		parser:   parser,
	}
}

// Entries returns the evaluated lines in input order
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Format returns the current render format
func (m Model) Format() expar.Format {
	return m.format
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.format = m.format.Next()
			m.updateContent()
			return m, nil

		case "ctrl+o":
			if m.view == ViewResults {
				m.view = ViewOperators
			} else {
				m.view = ViewResults
			}
			m.updateContent()
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.recall = 0
			m.updateContent()
			return m, nil

		case "up":
			if m.recall > 0 {
				m.recall--
				m.textarea.SetValue(m.entries[m.recall].Input)
			}
			return m, nil

		case "down":
			if m.recall < len(m.entries)-1 {
				m.recall++
				m.textarea.SetValue(m.entries[m.recall].Input)
			} else {
				m.recall = len(m.entries)
				m.textarea.Reset()
			}
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			return m, m.evaluate(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-8))
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-8)
		}
		m.textarea.SetWidth(max(10, msg.Width-4))
		m.updateContent()

	case parseResultMsg:
		entry := Entry{Input: msg.input, Root: msg.root, Err: msg.err, Duration: msg.duration}
		if msg.err != nil {
			entry.Root = nil
		}
		m.entries = append(m.entries, entry)
		m.recall = len(m.entries)
		m.view = ViewResults
		m.updateContent()
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// evaluate parses input off the update loop
func (m Model) evaluate(input string) tea.Cmd {
	parser := m.parser
	return func() tea.Msg {
		start := time.Now()
		root, err := parser.Parse(input)
		return parseResultMsg{input: input, root: root, err: err, duration: time.Since(start)}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Results", "Operators"}
	var renderedTabs []string

	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := RenderTitle("expar")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderFooter() string {
	help := "Enter: Parse • Tab: Format • Ctrl+O: Operators • Ctrl+L: Clear • Esc: Quit"
	format := fmt.Sprintf("format: %s", m.format)

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(format)-4)),
			format,
		),
	)
}

func (m *Model) updateContent() {
	if m.view == ViewOperators {
		m.content = renderOperators()
	} else {
		m.content = m.renderEntries()
	}

	if m.ready {
		m.viewport.SetContent(m.content)
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return SubtitleStyle.Render("No expressions yet.")
	}

	var content strings.Builder
	for _, entry := range m.entries {
		content.WriteString(InputEchoStyle.Render("> " + entry.Input))
		content.WriteString("\n")
		if entry.Err != nil {
			content.WriteString(RenderError(describeError(entry.Err)))
		} else {
			content.WriteString(ResultStyle.Render(entry.Render(m.format)))
			content.WriteString(" ")
			content.WriteString(SubtitleStyle.Render(entry.Duration.Round(time.Microsecond).String()))
		}
		content.WriteString("\n\n")
	}
	return content.String()
}

// describeError prefixes the error code when err carries one
func describeError(err error) string {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return fmt.Sprintf("[%s] %v", code, err)
	}
	return err.Error()
}

func renderOperators() string {
	var s strings.Builder

	s.WriteString(KindStyle.Render("Binary operators"))
	s.WriteString("\n")
	for _, rule := range lower.BinaryRules() {
		s.WriteString(fmt.Sprintf("  %-4s %s\n", rule.Symbols, rule.Operator.Name()))
	}

	s.WriteString("\n")
	s.WriteString(KindStyle.Render("Unary operators"))
	s.WriteString("\n")
	for _, rule := range lower.UnaryRules() {
		s.WriteString(fmt.Sprintf("  %-4s %s\n", rule.Symbols, rule.Operator.Name()))
	}

	s.WriteString("\n")
	s.WriteString(KindStyle.Render("Scopes"))
	s.WriteString("\n")
	for _, scope := range mdwast.ScopeTypes() {
		s.WriteString(fmt.Sprintf("  %s%s  %s\n", scope.Open(), scope.Close(), scope.Name()))
	}

	return BoxStyle.Render(strings.TrimRight(s.String(), "\n"))
}
