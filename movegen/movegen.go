// Package movegen enumerates every legal ply for one player, in a fixed
// order that the search relies on for tie-breaking.
package movegen

import (
	"github.com/samber/lo"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/move"
)

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(b *board.Board, player board.Symbol) []*move.Move
	Plays() []*move.Move
	SetPlayRecorder(pr PlayRecorderFunc)
}

// GridGenerator walks the grid in row-major order. Placements come first,
// on every Empty cell that is not blocked for the mover; then slides, for
// each of the mover's pieces in row-major order and each neighbour offset
// in board.Neighbors order, into any Empty cell, blocked or not.
type GridGenerator struct {
	plays        []*move.Move
	playRecorder PlayRecorderFunc
}

// NewGridGenerator returns a generator that records every play.
func NewGridGenerator() *GridGenerator {
	return &GridGenerator{playRecorder: AllPlaysRecorder}
}

func (gen *GridGenerator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

// GenAll generates every legal ply for player on b. The mask on b is
// taken as-is; it must already be derived for player.
func (gen *GridGenerator) GenAll(b *board.Board, player board.Symbol) []*move.Move {
	gen.plays = gen.plays[:0]
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.CanPlace(row, col) {
				gen.playRecorder(gen, move.NewPlacement(player, board.Pos{Row: row, Col: col}))
			}
		}
	}
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.At(row, col) != player {
				continue
			}
			from := board.Pos{Row: row, Col: col}
			for _, to := range b.SlideTargets(row, col) {
				gen.playRecorder(gen, move.NewSlide(player, from, to))
			}
		}
	}
	return gen.plays
}

// Plays returns the plays recorded by the last GenAll.
func (gen *GridGenerator) Plays() []*move.Move {
	return gen.plays
}

// GenAll is a convenience wrapper that returns a fresh slice of moves.
func GenAll(b *board.Board, player board.Symbol) []*move.Move {
	return NewGridGenerator().GenAll(b, player)
}

// Successors returns the boards reached by each of player's moves, in the
// same order as GenAll. Each successor is an independent copy of b and
// keeps b's blocked mask.
func Successors(b *board.Board, player board.Symbol) []*board.Board {
	return lo.Map(GenAll(b, player), func(m *move.Move, _ int) *board.Board {
		return m.Successor(b)
	})
}

// Placements filters a move list down to placements.
func Placements(plays []*move.Move) []*move.Move {
	return lo.Filter(plays, func(m *move.Move, _ int) bool {
		return m.Action() == move.MoveTypePlace
	})
}

// Slides filters a move list down to slides.
func Slides(plays []*move.Move) []*move.Move {
	return lo.Filter(plays, func(m *move.Move, _ int) bool {
		return m.Action() == move.MoveTypeSlide
	})
}
