// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     repl
// Description: Interactive bubbletea REPL on top of an uwu Session
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/utils/stringx"
	"github.com/msto63/uwu/foundation/uwu"
	"github.com/msto63/uwu/internal/tui"
)

// Lines taken by header, input box, status and help bar
const chromeHeight = 9

const helpText = "Enter: Ausfuehren • Alt+Enter: Neue Zeile • ↑/↓: Historie • PgUp/PgDn: Scrollen • Ctrl+L: Leeren • Ctrl+R: Zuruecksetzen • Ctrl+C: Beenden"

// Config configures the REPL
type Config struct {
	// Engine evaluates the inputs; echo_results should be enabled so that
	// values show up in the scrollback
	Engine *uwu.Engine

	Prompt      string
	HistorySize int
	HistoryFile string
	Logger      *mdwlog.Logger
}

// line is one rendered line of the scrollback
type line struct {
	text    string
	isError bool
}

// entry is one evaluated input with its output
type entry struct {
	input  string
	lines  []line
	system bool
}

// Model is the REPL model
type Model struct {
	width  int
	height int
	ready  bool

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Interpreter state
	session *uwu.Session
	out     *bytes.Buffer
	logger  *mdwlog.Logger

	entries []entry

	// Input history
	history      *History
	historyIndex int // -1 while editing a new input
	currentInput string

	// Last evaluation
	lastDuration time.Duration
	lastFailed   bool
}

// New creates a REPL model
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.Engine == nil {
		cfg.Engine = uwu.New(uwu.Options{Logger: cfg.Logger, EchoResults: true})
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "uwu> "
	}

	ta := textarea.New()
	ta.Placeholder = "UwU-Ausdruck eingeben..."
	ta.Prompt = cfg.Prompt
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	out := &bytes.Buffer{}
	return Model{
		textarea:     ta,
		session:      cfg.Engine.NewSession(out),
		out:          out,
		logger:       cfg.Logger.WithField("component", "uwu-repl"),
		history:      LoadHistory(cfg.HistoryFile, cfg.HistorySize),
		historyIndex: -1,
	}
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
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if !stringx.IsBlank(m.textarea.Value()) {
				m.eval(strings.TrimSpace(m.textarea.Value()))
				m.textarea.Reset()
			}
			return m, nil

		case tea.KeyUp:
			if m.history.Len() > 0 {
				if m.historyIndex == -1 {
					m.currentInput = m.textarea.Value()
					m.historyIndex = m.history.Len() - 1
				} else if m.historyIndex > 0 {
					m.historyIndex--
				}
				m.textarea.SetValue(m.history.At(m.historyIndex))
				m.textarea.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIndex != -1 {
				if m.historyIndex < m.history.Len()-1 {
					m.historyIndex++
					m.textarea.SetValue(m.history.At(m.historyIndex))
				} else {
					m.historyIndex = -1
					m.textarea.SetValue(m.currentInput)
				}
				m.textarea.CursorEnd()
			}
			return m, nil

		case tea.KeyPgUp:
			m.viewport.ViewUp()
			return m, nil

		case tea.KeyPgDown:
			m.viewport.ViewDown()
			return m, nil

		case tea.KeyCtrlL:
			m.entries = nil
			m.updateContent()
			return m, nil

		case tea.KeyCtrlR:
			m.session.Reset()
			m.lastFailed = false
			m.entries = append(m.entries, entry{
				system: true,
				lines:  []line{{text: "Sitzung zurueckgesetzt, alle Variablen entfernt"}},
			})
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := max(1, msg.Height-chromeHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.textarea.SetWidth(max(10, msg.Width-4))
		m.updateContent()
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// eval runs one input through the session and appends it to the scrollback
func (m *Model) eval(input string) {
	m.history.Add(input)
	if err := m.history.Save(); err != nil {
		m.logger.Debug("Failed to save history", mdwlog.Fields{"error": err.Error()})
	}
	m.historyIndex = -1
	m.currentInput = ""

	m.out.Reset()
	report, err := m.session.Eval(input)
	if err != nil {
		m.lastFailed = true
		m.entries = append(m.entries, entry{input: input, lines: []line{{text: err.Error(), isError: true}}})
		m.updateContent()
		return
	}

	failed := make(map[string]bool, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		failed[d.Error()] = true
	}

	e := entry{input: input}
	if out := strings.TrimSuffix(m.out.String(), "\n"); out != "" {
		for _, text := range strings.Split(out, "\n") {
			e.lines = append(e.lines, line{text: text, isError: failed[text]})
		}
	}
	m.entries = append(m.entries, e)

	m.lastDuration = report.Duration
	m.lastFailed = report.ErrorFlag
	m.updateContent()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(tui.FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderStatus())
	s.WriteString("\n")
	s.WriteString(tui.RenderHelp(helpText))

	return s.String()
}

func (m *Model) renderHeader() string {
	title := tui.RenderTitle("uwu")
	subtitle := tui.SubtitleStyle.Render("interaktive Sitzung")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", subtitle)
}

func (m *Model) renderStatus() string {
	state := tui.StatusOKStyle.Render("●")
	if m.lastFailed {
		state = tui.StatusErrorStyle.Render("●")
	}

	vars := m.session.Variables()
	varText := "keine"
	if len(vars) > 0 {
		varText = stringx.Truncate(strings.Join(vars, ", "), 40, "…")
	}

	info := fmt.Sprintf("Eingaben: %d • Variablen: %s", m.session.Inputs(), varText)
	timing := fmt.Sprintf("Dauer: %s", m.lastDuration.Round(time.Microsecond))

	return tui.StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			state, " ", info,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(info)-len(timing)-6)),
			timing,
		),
	)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.entries {
		if !e.system {
			content.WriteString(tui.InputEchoStyle.Render(m.textarea.Prompt))
			content.WriteString(e.input)
			content.WriteString("\n")
		}
		for _, l := range e.lines {
			switch {
			case e.system:
				content.WriteString(tui.SystemMessageStyle.Render(l.text))
			case l.isError:
				content.WriteString(tui.ErrorMessageStyle.Render(l.text))
			default:
				content.WriteString(tui.OutputStyle.Render(l.text))
			}
			content.WriteString("\n")
		}
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
