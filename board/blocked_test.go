package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

type blockedTestCase struct {
	name     string
	pos      SamplePosition
	blocked  []Pos
	canPlace bool
}

func TestRefreshBlocked(t *testing.T) {
	cases := []blockedTestCase{
		{"empty", EmptyCompact, nil, true},
		{"lone corner", LoneCorner, []Pos{{0, 1}, {1, 0}}, true},
		// B1 sees one of each and stays open; D1 and C2 only see O.
		{"tie", "x.o./..../..../.... x", []Pos{{0, 3}, {1, 2}}, true},
		{"slide only", SlideOnly, []Pos{{2, 2}}, false},
		{"full", FullNoLine, nil, false},
	}
	for _, tc := range cases {
		b, _ := tc.pos.MustParse()
		var got []Pos
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				if b.IsBlocked(r, c) {
					got = append(got, Pos{r, c})
				}
			}
		}
		assert.Equal(t, tc.blocked, got, tc.name)
		assert.Equal(t, tc.canPlace, b.PlacementAvailable(), tc.name)
	}
}

func TestRefreshBlockedResetsOccupied(t *testing.T) {
	is := is.New(t)
	b := NewBoard(CompactDim, CompactDim)
	b.SetBlocked(0, 0, true)
	b.Set(0, 0, X)
	is.NoErr(b.RefreshBlocked(O))
	is.True(!b.IsBlocked(0, 0))
	// X at A1 blocks B1 and A2 for O but not for X.
	is.True(b.IsBlocked(0, 1))
	is.NoErr(b.RefreshBlocked(X))
	is.True(!b.IsBlocked(0, 1))

	is.True(b.RefreshBlocked(Empty) != nil)
}

func TestHasAnyMove(t *testing.T) {
	is := is.New(t)
	b, _ := SlideOnly.MustParse()
	is.True(!b.PlacementAvailable())
	is.True(b.HasAnyMove(X))

	b, _ = FullNoLine.MustParse()
	is.True(!b.HasAnyMove(X))
	is.True(!b.HasAnyMove(O))

	// The only empty cell is blocked for O, and no O piece touches it.
	b, _ = SamplePosition("ooxo/xxoo/ooxx/xxx. o").MustParse()
	is.True(b.IsBlocked(3, 3))
	is.True(!b.HasAnyMove(O))
	is.True(b.HasAnyMove(X))
}
