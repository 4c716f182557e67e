// Package keypad lays out the on-screen calculator buttons and maps pointer
// positions back to the key they land on.
package keypad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maxmcd/calc/internal/expr"
)

const (
	CellWidth  = 6
	CellHeight = 1
)

// Button is a single keypad cell. Disabled cells are drawn but never produce
// input.
type Button struct {
	Label    string
	Disabled bool
}

type Layout struct {
	Rows [][]Button
}

func b(label string) Button { return Button{Label: label} }

var filler = Button{Disabled: true}

// Standard is the four column calculator keypad.
var Standard = Layout{Rows: [][]Button{
	{b("AC"), filler, b("〈"), b(expr.DivideSymbol)},
	{b("7"), b("8"), b("9"), b(expr.MultiplySymbol)},
	{b("4"), b("5"), b("6"), b(expr.SubtractSymbol)},
	{b("1"), b("2"), b("3"), b(expr.AddSymbol)},
	{filler, b("0"), b("."), b("=")},
}}

// Width is the rendered width in terminal cells.
func (l Layout) Width() int {
	cols := 0
	for _, row := range l.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols * CellWidth
}

func (l Layout) Height() int { return len(l.Rows) * CellHeight }

// At returns the label of the button covering the cell at x, y relative to
// the top left corner of the keypad. Positions outside the keypad and
// disabled buttons return false.
func (l Layout) At(x, y int) (string, bool) {
	if x < 0 || y < 0 {
		return "", false
	}
	row, col := y/CellHeight, x/CellWidth
	if row >= len(l.Rows) || col >= len(l.Rows[row]) {
		return "", false
	}
	btn := l.Rows[row][col]
	if btn.Disabled {
		return "", false
	}
	return btn.Label, true
}

type Theme struct {
	Text     lipgloss.Color
	Key      lipgloss.Color
	Operator lipgloss.Color
	Control  lipgloss.Color
	Disabled lipgloss.Color
	Pressed  lipgloss.Color
}

var Themes = map[string]Theme{
	"dark": {
		Text:     lipgloss.Color("#ffffff"),
		Key:      lipgloss.Color("238"),
		Operator: lipgloss.Color("208"),
		Control:  lipgloss.Color("244"),
		Disabled: lipgloss.Color("#000000"),
		Pressed:  lipgloss.Color("33"),
	},
	"light": {
		Text:     lipgloss.Color("#000000"),
		Key:      lipgloss.Color("252"),
		Operator: lipgloss.Color("214"),
		Control:  lipgloss.Color("248"),
		Disabled: lipgloss.Color("#ffffff"),
		Pressed:  lipgloss.Color("117"),
	},
}

func (t Theme) background(btn Button) lipgloss.Color {
	switch {
	case btn.Disabled:
		return t.Disabled
	case expr.IsOperatorSymbol(btn.Label) || btn.Label == "=":
		return t.Operator
	case btn.Label == "AC" || btn.Label == "〈":
		return t.Control
	}
	return t.Key
}

// Render draws the keypad. The button whose label equals pressed is
// highlighted.
func (l Layout) Render(t Theme, pressed string) string {
	rows := make([]string, 0, len(l.Rows))
	for _, row := range l.Rows {
		cells := make([]string, 0, len(row))
		for _, btn := range row {
			bg := t.background(btn)
			if !btn.Disabled && pressed != "" && btn.Label == pressed {
				bg = t.Pressed
			}
			cells = append(cells, lipgloss.NewStyle().
				Width(CellWidth).
				Align(lipgloss.Center).
				Foreground(t.Text).
				Background(bg).
				Render(btn.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
