// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive shell
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Munch42/MunchEx/internal/session"
	"github.com/Munch42/MunchEx/pkg/core/version"
)

const storeTimeout = 5 * time.Second

// Config holds shell configuration
type Config struct {
	Session     *session.Session
	Prompt      string
	HistorySize int
	Color       bool

	// MaxInputLength caps the input line in characters. Zero uses
	// DefaultMaxInputLength and a negative value removes the cap.
	MaxInputLength int
}

// DefaultMaxInputLength matches the engine's default input limit
const DefaultMaxInputLength = 4096

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "munchEx > ",
		HistorySize: 500,
		Color:       true,

		MaxInputLength: DefaultMaxInputLength,
	}
}

// Model is the Bubbletea model for the shell
type Model struct {
	// State
	width  int
	height int
	ready  bool
	err    error

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript
	exchanges []Exchange

	// Input history
	inputHistory []string
	historyIndex int // -1 while editing a new input
	currentInput string

	// Configuration
	session     *session.Session
	prompt      string
	historySize int
	color       bool
}

// New creates a new shell model
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaults.HistorySize
	}
	if cfg.Session == nil {
		cfg.Session = session.New(session.Config{})
	}
	if cfg.MaxInputLength == 0 {
		cfg.MaxInputLength = defaults.MaxInputLength
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "1 + 2 * 3"
	ti.CharLimit = max(cfg.MaxInputLength, 0)
	ti.Width = 76
	ti.Focus()
	if cfg.Color {
		ti.PromptStyle = PromptStyle
		ti.TextStyle = InputTextStyle
	}

	return Model{
		input:        ti,
		session:      cfg.Session,
		prompt:       cfg.Prompt,
		historySize:  cfg.HistorySize,
		color:        cfg.Color,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // title + blank line
		footerHeight := 5 // border + input + status + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.prompt) - 2
		m.updateViewportContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		// Inputs typed before the load completed stay newest
		m.inputHistory = m.trimHistory(append(msg.inputs, m.inputHistory...))

	case recordedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress processes key events
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.exchanges = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.inputHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.input.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.input.Value()

	ev := m.session.Evaluate(context.Background(), input)
	m.exchanges = append(m.exchanges, Exchange{
		Input:     input,
		Output:    ev.Output,
		Success:   ev.Success,
		Timestamp: time.Now(),
	})

	if strings.TrimSpace(input) != "" {
		if n := len(m.inputHistory); n == 0 || m.inputHistory[n-1] != input {
			m.inputHistory = m.trimHistory(append(m.inputHistory, input))
		}
	}
	m.historyIndex = -1
	m.currentInput = ""
	m.err = nil

	m.input.Reset()
	m.updateViewportContent()
	m.viewport.GotoBottom()

	return m, m.record(ev)
}

func (m Model) trimHistory(h []string) []string {
	if len(h) > m.historySize {
		return h[len(h)-m.historySize:]
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting MunchEx..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(ScrollbackStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title line
func (m Model) renderHeader() string {
	return TitleStyle.Render("MunchEx") + " " +
		SubtitleStyle.Render("v"+version.REPL+" arithmetic front end")
}

// renderStatusBar renders the source name, run count and the last error
func (m Model) renderStatusBar() string {
	if m.err != nil {
		return StatusErrorStyle.Render("history: " + m.err.Error())
	}

	failed := 0
	for _, ex := range m.exchanges {
		if !ex.Success {
			failed++
		}
	}
	return StatusBarStyle.Render(fmt.Sprintf("%s | %d runs, %d failed",
		m.session.SourceName(), len(m.exchanges), failed))
}

// renderHelpBar renders the key bindings
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "run"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Esc", "quit"),
	}
	return HelpDescStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Transcript())
}

// Transcript renders all exchanges the way the shell shows them
func (m Model) Transcript() string {
	var b strings.Builder

	for i, ex := range m.exchanges {
		if i > 0 {
			b.WriteString("\n")
		}

		prompt := m.prompt
		output := ex.Output
		if m.color {
			prompt = PromptStyle.Render(prompt)
			if ex.Success {
				output = OutputStyle.Render(output)
			}
		}
		b.WriteString(prompt + ex.Input)
		b.WriteString("\n")
		b.WriteString(output)
		b.WriteString("\n")
	}

	return b.String()
}

// Exchanges returns the evaluated inputs
func (m Model) Exchanges() []Exchange {
	return m.exchanges
}

// loadHistory reads previous inputs from the store
func (m Model) loadHistory() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	inputs, err := m.session.Inputs(ctx, m.historySize)
	return historyLoadedMsg{inputs: inputs, err: err}
}

// record writes an evaluation to the store
func (m Model) record(ev *session.Evaluation) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return recordedMsg{err: s.Record(ctx, ev)}
	}
}

// Run starts the interactive shell
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
