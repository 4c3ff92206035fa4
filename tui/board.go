package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/game"
)

var (
	lightCell = lipgloss.Color("236")
	darkCell  = lipgloss.Color("234")

	xStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	oStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	blockedStyle   = lipgloss.NewStyle().Background(lipgloss.Color("52"))
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	sourceStyle    = lipgloss.NewStyle().Reverse(true)
	headerStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderCell draws one cell as a cellWidth x cellHeight block.
func renderCell(m model, b *board.Board, row, col int, candidate bool) string {
	style := lipgloss.NewStyle().
		Width(m.cellWidth).
		Height(m.cellHeight).
		Align(lipgloss.Center, lipgloss.Center)
	if (row+col)%2 == 0 {
		style = style.Background(lightCell)
	} else {
		style = style.Background(darkCell)
	}

	var text string
	switch sym := b.At(row, col); {
	case candidate:
		style = style.Inherit(candidateStyle)
		text = "*"
	case sym == board.X:
		style = style.Inherit(xStyle)
		text = "X"
	case sym == board.O:
		style = style.Inherit(oStyle)
		text = "O"
	case b.IsBlocked(row, col):
		style = blockedStyle.Inherit(style)
		text = "#"
	default:
		text = "."
	}
	if src, ok := m.game.SlideSource(); ok && src == (board.Pos{Row: row, Col: col}) {
		style = style.Inherit(sourceStyle)
	}
	return style.Render(text)
}

func renderBoard(m model) string {
	b := m.game.Board()
	cand := make(map[board.Pos]bool)
	for _, p := range m.game.Candidates() {
		cand[p] = true
	}
	rows := make([]string, b.Rows())
	for r := 0; r < b.Rows(); r++ {
		cells := make([]string, b.Cols())
		for c := 0; c < b.Cols(); c++ {
			cells[c] = renderCell(m, b, r, c, cand[board.Pos{Row: r, Col: c}])
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// header is exactly one line; clicks are offset by it.
func header(m model) string {
	var state string
	switch {
	case m.game.Playing() == game.Final:
		state = fmt.Sprintf("%v wins", m.game.Winner())
	case m.thinking:
		state = "computer is thinking"
	case m.game.Stalled():
		state = "neither side can move"
	default:
		state = m.game.Playing().String()
	}
	return headerStyle.Render(fmt.Sprintf("fourline %s | turn %d | %s",
		m.game.Rules().Variant(), m.game.Turn(), state))
}

func renderView(m model) string {
	var footer strings.Builder
	footer.WriteString(m.status)
	if m.err != nil {
		footer.WriteString(" ")
		footer.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header(m),
		renderBoard(m),
		footer.String(),
		m.help.View(m.keys),
	)
}
