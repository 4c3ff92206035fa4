package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestOpponent(t *testing.T) {
	is := is.New(t)
	o, err := Opponent(X)
	is.NoErr(err)
	is.Equal(o, O)
	o, err = Opponent(O)
	is.NoErr(err)
	is.Equal(o, X)

	_, err = Opponent(Empty)
	is.True(err != nil)
	is.Equal(MustOpponent(X), O)
}

func TestMustOpponentPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic for Empty")
		}
	}()
	MustOpponent(Empty)
}

func TestLineCompletesOnFourthPiece(t *testing.T) {
	is := is.New(t)
	b := NewBoard(CompactDim, CompactDim)
	b.Set(0, 0, O)
	b.Set(0, 1, O)
	b.Set(0, 2, O)
	is.True(!b.IsLineComplete(0, 2))
	is.True(!b.IsLineComplete(0, 3))

	b.Set(0, 3, O)
	is.True(b.IsLineComplete(0, 2))
	for c := 0; c < 4; c++ {
		is.True(b.IsLineComplete(0, c))
	}
	is.True(!b.IsLineComplete(1, 0))
}

func TestLineAxes(t *testing.T) {
	is := is.New(t)
	b := NewBoard(CompactDim, CompactDim)
	for r := 0; r < 4; r++ {
		b.Set(r, 2, X)
	}
	is.True(b.IsLineComplete(3, 2))

	b = NewBoard(CompactDim, CompactDim)
	for i := 0; i < 4; i++ {
		b.Set(i, i, O)
	}
	is.True(b.IsLineComplete(1, 1))

	b = NewBoard(CompactDim, CompactDim)
	for i := 0; i < 4; i++ {
		b.Set(i, 3-i, X)
	}
	is.True(b.IsLineComplete(0, 3))
	is.True(b.IsLineComplete(2, 1))
}

func TestMixedRunIsNotALine(t *testing.T) {
	is := is.New(t)
	b, _ := SamplePosition("xxox/..../..../.... o").MustParse()
	for c := 0; c < 4; c++ {
		is.True(!b.IsLineComplete(0, c))
	}
	_, done := b.Terminal()
	is.True(!done)
}

func TestEmptyCellNeverCompletes(t *testing.T) {
	is := is.New(t)
	b := NewBoard(CompactDim, CompactDim)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			is.True(!b.IsLineComplete(r, c))
		}
	}
}

func TestRunOfFiveOnClassic(t *testing.T) {
	is := is.New(t)
	b, _ := FiveRun.MustParse()
	// The ends of a five-run still see exactly three on one side.
	is.True(b.IsLineComplete(0, 0))
	is.True(b.IsLineComplete(0, 4))
	// The middle sees four and does not count.
	is.True(!b.IsLineComplete(0, 2))
	winner, done := b.Terminal()
	is.True(done)
	is.Equal(winner, X)
}

func TestTerminalFirstFound(t *testing.T) {
	is := is.New(t)
	b, _ := BothWin.MustParse()
	winner, done := b.Terminal()
	is.True(done)
	is.Equal(winner, X)

	b, _ = FullNoLine.MustParse()
	winner, done = b.Terminal()
	is.True(!done)
	is.Equal(winner, Empty)
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	b, _ := LoneCorner.MustParse()
	c := b.Clone()
	is.True(b.Equals(c))
	is.Equal(b.Fingerprint(), c.Fingerprint())

	c.Set(3, 3, O)
	is.Equal(b.At(3, 3), Empty)
	is.True(!b.Equals(c))
	is.True(b.Fingerprint() != c.Fingerprint())

	c.CopyFrom(b)
	is.True(b.Equals(c))
}

func TestSlideTargetsOrder(t *testing.T) {
	is := is.New(t)
	b := NewBoard(CompactDim, CompactDim)
	b.Set(1, 1, X)
	b.Set(1, 2, O)
	targets := b.SlideTargets(1, 1)
	// Up is (0,-1), Down (0,1) is taken by O, then Left, Right, and the
	// four diagonals.
	is.Equal(targets, []Pos{
		{1, 0}, {0, 1}, {2, 1}, {0, 0}, {2, 0}, {0, 2}, {2, 2},
	})
	is.Equal(len(b.SlideTargets(0, 0)), 3)
}

func TestPositionNotation(t *testing.T) {
	is := is.New(t)
	b, side, err := ParsePosition("x.../.o../..../.... x")
	is.NoErr(err)
	is.Equal(side, X)
	is.Equal(b.Rows(), 4)
	is.Equal(b.Cols(), 4)
	is.Equal(b.At(0, 0), X)
	is.Equal(b.At(1, 1), O)
	is.Equal(b.Count(Empty), 14)
	is.Equal(b.Position(side), "x.../.o../..../.... x")

	for _, bad := range []string{
		"",
		"x.../.o../..../....",
		"x.../.o../..../... x",
		"x.../.q../..../.... x",
		"x.../.o../..../.... e",
	} {
		_, _, err := ParsePosition(bad)
		is.True(err != nil)
	}
}

func TestParsePos(t *testing.T) {
	is := is.New(t)
	p, err := ParsePos("B3")
	is.NoErr(err)
	is.Equal(p, Pos{Row: 2, Col: 1})
	is.Equal(p.String(), "B3")

	p, err = ParsePos("a1")
	is.NoErr(err)
	is.Equal(p, Pos{})

	for _, bad := range []string{"", "3B", "B0", "B", "?1"} {
		_, err := ParsePos(bad)
		is.True(err != nil)
	}
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	defer func() { ColorSupport = true }()

	b, _ := LoneCorner.MustParse()
	out := b.ToDisplayText(Pos{3, 3})
	is.Equal(out, "\n"+
		"   A B C D \n"+
		"   --------\n"+
		" 1|X # . . |\n"+
		" 2|# . . . |\n"+
		" 3|. . . . |\n"+
		" 4|. . . * |\n"+
		"   --------\n")
}
