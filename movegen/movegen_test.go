package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/fourline/fourline/board"
	"github.com/fourline/fourline/move"
)

func descriptions(plays []*move.Move) []string {
	return lo.Map(plays, func(m *move.Move, _ int) string {
		return m.ShortDescription()
	})
}

func TestGenAfterFirstPlacement(t *testing.T) {
	is := is.New(t)
	// X places at A1 on an empty board. Without a mask refresh all fifteen
	// remaining cells are open to O, and O has no piece to slide.
	b := board.NewBoard(board.CompactDim, board.CompactDim)
	b.Set(0, 0, board.X)

	plays := GenAll(b, board.O)
	is.Equal(len(Placements(plays)), 15)
	is.Equal(len(Slides(plays)), 0)
	is.Equal(plays[0].ShortDescription(), "B1")
	is.Equal(plays[14].ShortDescription(), "D4")
}

func TestGenRespectsMask(t *testing.T) {
	is := is.New(t)
	b, side := board.LoneCorner.MustParse()
	plays := GenAll(b, side)
	is.Equal(len(plays), 13)
	is.True(!lo.Contains(descriptions(plays), "B1"))
	is.True(!lo.Contains(descriptions(plays), "A2"))
}

func TestGenOrder(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.CompactDim, board.CompactDim)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			b.Set(r, c, board.O)
		}
	}
	b.Set(1, 1, board.X)
	b.Set(0, 0, board.Empty)
	b.Set(3, 3, board.Empty)

	plays := GenAll(b, board.X)
	is.Equal(descriptions(plays), []string{
		// placements first, row-major
		"A1", "D4",
		// then slides; D4 is not adjacent to the single X piece
		"B2-A1",
	})
}

func TestGenSlidesOnly(t *testing.T) {
	is := is.New(t)
	b, side := board.SlideOnly.MustParse()
	plays := GenAll(b, side)
	is.Equal(descriptions(plays), []string{"B2-C3", "D2-C3", "B3-C3", "D4-C3"})
	for _, p := range plays {
		is.Equal(p.Player(), board.X)
	}
}

func TestSuccessorsKeepMask(t *testing.T) {
	is := is.New(t)
	b, side := board.SlideOnly.MustParse()
	succ := Successors(b, side)
	is.Equal(len(succ), 4)
	for _, s := range succ {
		is.Equal(s.At(2, 2), board.X)
		is.Equal(s.Count(board.X), b.Count(board.X))
		// C3 is occupied now but its mask bit came along unchanged.
		is.True(s.IsBlocked(2, 2))
	}
	// the source board is untouched
	is.Equal(b.At(2, 2), board.Empty)
}

func TestPlacementsOnlyRecorder(t *testing.T) {
	is := is.New(t)
	b, _ := board.SlideOnly.MustParse()
	gen := NewGridGenerator()
	gen.SetPlayRecorder(PlacementsOnlyRecorder)
	is.Equal(len(gen.GenAll(b, board.X)), 0)

	b = board.NewBoard(board.CompactDim, board.CompactDim)
	b.Set(1, 1, board.X)
	gen.GenAll(b, board.X)
	is.Equal(len(gen.Plays()), 15)
}

func TestNoMoves(t *testing.T) {
	is := is.New(t)
	b, _ := board.FullNoLine.MustParse()
	is.Equal(len(GenAll(b, board.X)), 0)
	is.Equal(len(Successors(b, board.O)), 0)
}
