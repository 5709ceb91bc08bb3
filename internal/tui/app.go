// Package tui is the terminal front end: a bubbletea program driving one
// calculator engine, with an optional on-disk record of evaluations.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"deskcalc/internal/calc"
	"deskcalc/internal/history"
)

const recentShown = 5

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(28).
			Align(lipgloss.Right).
			Bold(true)

	errorStyle = displayStyle.
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9"))

	expressionStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)

	recentStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1)
)

// Model is the bubbletea model for the calculator.
type Model struct {
	engine *calc.Engine
	tape   calc.Tape
	keys   keyMap
	help   help.Model

	store     *history.Store
	sessionID string
	recent    []history.Entry
}

// New returns a fresh model. store may be nil; evaluations are then kept
// only in the on-screen list for the lifetime of the program.
func New(store *history.Store) Model {
	m := Model{
		engine:    calc.New(nil),
		keys:      defaultKeyMap(),
		help:      help.New(),
		store:     store,
		sessionID: uuid.New().String(),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Equals):
			m.evaluate()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.engine.Clear()
			m.tape.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Sqrt):
			m.unary(calc.UnarySquareRoot)
			return m, nil
		case key.Matches(msg, m.keys.Negate):
			m.unary(calc.UnaryNegate)
			return m, nil
		}

		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.press(r)
			}
		}
		return m, nil
	}

	return m, nil
}

// press handles the keypad runes not covered by the keymap: digits, the
// decimal point, operators and the remaining unary shortcuts.
func (m *Model) press(r rune) {
	switch {
	case r >= '0' && r <= '9':
		d := int(r - '0')
		before := m.engine.Text()
		m.engine.Digit(d)
		if m.engine.Text() != before {
			m.tape.Digit(d)
		}
	case r == '.':
		before := m.engine.Text()
		m.engine.Point()
		if m.engine.Text() != before {
			m.tape.Point()
		}
	case r == '%':
		m.unary(calc.UnaryPercent)
	case r == '!':
		m.unary(calc.UnaryFactorial)
	default:
		if op, ok := calc.ParseOperator(string(r)); ok {
			before := m.engine.Text()
			m.engine.Op(op)
			if m.engine.Text() != before {
				m.tape.Op(op)
			}
		}
	}
}

func (m *Model) unary(f calc.Unary) {
	before := m.engine.Text()
	m.engine.Unary(f)
	if m.engine.Text() != before {
		m.tape.Unary(f)
	}
}

func (m *Model) evaluate() {
	m.engine.Equals()
	expression := m.tape.String()
	m.tape.Reset()

	if expression == "" || m.engine.Erred() {
		return
	}

	entry := history.Entry{
		SessionID:  m.sessionID,
		Expression: expression,
		Result:     m.engine.Text(),
	}
	m.recent = append([]history.Entry{entry}, m.recent...)
	if len(m.recent) > recentShown {
		m.recent = m.recent[:recentShown]
	}

	if m.store != nil {
		// Persistence is best effort; the display is never blocked on it.
		_ = m.store.Record(context.Background(), m.sessionID, expression, m.engine.Text())
	}
}

// Display returns the current display text. Exposed for the program's
// surrounding tooling; the view itself renders through lipgloss.
func (m Model) Display() string {
	return m.engine.Text()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("deskcalc"))
	b.WriteString("\n\n")

	style := displayStyle
	if m.engine.Erred() {
		style = errorStyle
	}
	b.WriteString(style.Render(m.engine.Text()))
	b.WriteString("\n")

	if expr := m.tape.String(); expr != "" {
		b.WriteString(expressionStyle.Render(expr))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		for _, e := range m.recent {
			b.WriteString(recentStyle.Render(fmt.Sprintf("%s = %s", e.Expression, e.Result)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
