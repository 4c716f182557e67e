// Package tui is an interactive terminal calculator with an expression
// display, a result display and a clickable keypad.
package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maxmcd/calc/internal/calculator"
	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/keypad"
	"github.com/maxmcd/calc/internal/logger"
	"github.com/pkg/errors"
)

// keypadTop is the first screen row of the keypad, below the expression,
// result and notice lines. Each of those is always a single line, see tail.
const keypadTop = 3

func New(state *calculator.State, theme keypad.Theme) *Model {
	return &Model{
		state:  state,
		layout: keypad.Standard,
		theme:  theme,
	}
}

type Model struct {
	state   *calculator.State
	layout  keypad.Layout
	theme   keypad.Theme
	pressed string
	notice  string
	width   int
}

func (m *Model) Start() error {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Start()
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) press(key string) {
	m.pressed = key
	err := m.state.PressString(key)
	switch {
	case err == nil:
		m.notice = ""
	case errors.Is(err, errs.ErrDivisionByZero):
		m.notice = m.state.Notice
	default:
		logger.Debugw("keypress failed", "key", key, "err", err)
		m.notice = errors.Cause(err).Error()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			if _, ok := calculator.ParseKey(key); ok {
				m.press(key)
			}
		}
	case tea.MouseMsg:
		if msg.Type != tea.MouseLeft {
			return m, nil
		}
		if label, ok := m.layout.At(msg.X, msg.Y-keypadTop); ok {
			m.press(label)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// tail drops runes from the front of s until it fits in width cells, so a
// long expression shows its most recent input.
func tail(s string, width int) string {
	for lipgloss.Width(s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

func (m *Model) display(text string, style lipgloss.Style) string {
	width := m.layout.Width()
	return style.
		Width(width).
		Align(lipgloss.Right).
		Render(tail(text, width))
}

func (m *Model) View() string {
	expression, result := m.state.Display()
	var sb strings.Builder
	sb.WriteString(m.display(expression, lipgloss.NewStyle().Foreground(m.theme.Text)))
	sb.WriteString("\n")
	sb.WriteString(m.display(result, lipgloss.NewStyle().Foreground(m.theme.Operator).Bold(true)))
	sb.WriteString("\n")
	sb.WriteString(m.display(m.notice, lipgloss.NewStyle().Foreground(lipgloss.Color("196"))))
	sb.WriteString("\n")
	sb.WriteString(m.layout.Render(m.theme, m.pressed))
	sb.WriteString("\n")
	out := sb.String()
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}
