package equity

import (
	"github.com/fourline/fourline/board"
)

// windowDim is the side of the scoring window anchored at the top-left
// corner. On a 5x5 board the last row and column are never scored.
const windowDim = 4

// ScoringLines are the ten lines of the scoring window: four rows, four
// columns, and the two main diagonals.
var ScoringLines = buildScoringLines()

func buildScoringLines() [][windowDim]board.Pos {
	lines := make([][windowDim]board.Pos, 0, 2*windowDim+2)
	for r := 0; r < windowDim; r++ {
		var l [windowDim]board.Pos
		for c := 0; c < windowDim; c++ {
			l[c] = board.Pos{Row: r, Col: c}
		}
		lines = append(lines, l)
	}
	for c := 0; c < windowDim; c++ {
		var l [windowDim]board.Pos
		for r := 0; r < windowDim; r++ {
			l[r] = board.Pos{Row: r, Col: c}
		}
		lines = append(lines, l)
	}
	var diag, anti [windowDim]board.Pos
	for i := 0; i < windowDim; i++ {
		diag[i] = board.Pos{Row: i, Col: i}
		anti[i] = board.Pos{Row: i, Col: windowDim - 1 - i}
	}
	return append(lines, diag, anti)
}

// OpenLines counts the scoring lines still available to sym: those without
// a single cell of the opposite symbol. Empty cells count as open.
func OpenLines(sym board.Symbol, b *board.Board) int {
	opp := board.MustOpponent(sym)
	open := 0
	for _, line := range ScoringLines {
		contaminated := false
		for _, p := range line {
			if b.At(p.Row, p.Col) == opp {
				contaminated = true
				break
			}
		}
		if !contaminated {
			open++
		}
	}
	return open
}

// OpenLinesCalculator scores a board as O's open lines minus X's open
// lines. The perspective is fixed: it does not depend on the side to move.
type OpenLinesCalculator struct{}

func NewOpenLinesCalculator() *OpenLinesCalculator {
	return &OpenLinesCalculator{}
}

func (olc *OpenLinesCalculator) Evaluate(b *board.Board) int {
	return OpenLines(board.O, b) - OpenLines(board.X, b)
}
