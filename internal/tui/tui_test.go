package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maxmcd/calc/internal/calculator"
	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/keypad"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{Type: tea.MouseLeft, X: x, Y: y + keypadTop}
}

func TestModel_keyboard(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["dark"])
	for _, msg := range []tea.Msg{
		runes("3"), runes("+"), runes("4"), runes("*"), runes("2"),
		runes("a"), // ignored
		tea.KeyMsg{Type: tea.KeyEnter},
	} {
		_, cmd := m.Update(msg)
		require.Nil(t, cmd)
	}
	expression, result := m.state.Display()
	require.Equal(t, "3+4×2", expression)
	require.Equal(t, "11", result)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	expression, result = m.state.Display()
	require.Equal(t, "", expression)
	require.Equal(t, "", result)

	m.Update(runes("9"))
	m.Update(runes("8"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "9", m.state.Expression)
}

func TestModel_mouse(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["light"])
	w, h := keypad.CellWidth, keypad.CellHeight
	for _, msg := range []tea.Msg{
		click(0, 1*h),   // 7
		click(3*w, 3*h), // +
		click(w, 0),     // inert filler
		click(w, 4*h),   // 0
		click(0, 4*h),   // inert filler
		click(1, 2*h),   // 4
		tea.MouseMsg{Type: tea.MouseRelease, X: 0, Y: keypadTop}, // not a press
		click(3*w, 4*h), // =
	} {
		m.Update(msg)
	}
	expression, result := m.state.Display()
	require.Equal(t, "7+04", expression)
	require.Equal(t, "11", result)
	require.Equal(t, "=", m.pressed)
}

func TestModel_divisionByZero(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["dark"])
	for _, k := range []string{"5", "/", "0"} {
		m.Update(runes(k))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, errs.DivisionByZeroMessage, m.notice)
	require.Contains(t, m.View(), errs.DivisionByZeroMessage)
	require.Equal(t, "", m.state.Expression)

	m.Update(runes("1"))
	require.Equal(t, "", m.notice)
}

func TestModel_quit(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["dark"])
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestModel_View(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["dark"])
	m.Update(runes("1"))
	m.Update(runes("2"))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), keypadTop+keypad.Standard.Height())
	require.Contains(t, lines[0], "12")
	require.Contains(t, lines[keypadTop], "AC")
}

func TestModel_longExpression(t *testing.T) {
	m := New(calculator.New(), keypad.Themes["dark"])
	long := "123456789+123456789+1234567"
	for _, r := range long {
		m.Update(runes(string(r)))
	}
	require.Equal(t, long, m.state.Expression)

	lines := strings.Split(m.View(), "\n")
	require.Contains(t, lines[0], "56789+1234567")
	require.Contains(t, lines[keypadTop], "AC")
	require.Contains(t, lines[keypadTop+3], "+")

	// The + cell is where it is drawn, so clicking it appends an operator
	// rather than landing on the row below.
	m.Update(click(3*keypad.CellWidth, 3*keypad.CellHeight))
	require.Equal(t, "+", m.pressed)
	require.Equal(t, long+"+", m.state.Expression)
	require.Equal(t, "", m.state.Result)
}

func TestTail(t *testing.T) {
	require.Equal(t, "abc", tail("abc", 5))
	require.Equal(t, "cde", tail("abcde", 3))
	require.Equal(t, "3×4", tail("12×3×4", 3))
	require.Equal(t, "", tail("abc", 0))
}
