package board

// This file contains some sample positions, used solely for testing.

// SamplePosition is a position in ParsePosition notation.
type SamplePosition string

const (
	// EmptyCompact is the starting 4x4 board.
	EmptyCompact SamplePosition = "..../..../..../.... x"
	// EmptyClassic is the starting 5x5 board.
	EmptyClassic SamplePosition = "...../...../...../...../..... x"
	// TopRowX has X across the whole top row of a 4x4 board.
	TopRowX SamplePosition = "xxxx/..../..../.... o"
	// LoneCorner is a single X in the top-left corner, O to move. A1's two
	// orthogonal neighbours are blocked for O.
	LoneCorner SamplePosition = "x.../..../..../.... o"
	// ThreeInRowX lets X complete the top row by placing at D1.
	ThreeInRowX SamplePosition = "xxx./.o../..o./o... x"
	// ThreeInRowO lets O complete the second column by placing at B4.
	ThreeInRowO SamplePosition = ".o../xo../.ox./x... o"
	// BothWin has an X line in the top row and an O line in the bottom row.
	// The row-major scan meets the X line first.
	BothWin SamplePosition = "xxxx/..../..../oooo x"
	// FullNoLine is a full 4x4 board without any line. No one can move.
	FullNoLine SamplePosition = "xxoo/ooxx/xxoo/ooxx x"
	// SlideOnly leaves X a single empty cell, C3, blocked for X. Four X
	// pieces can slide into it.
	SlideOnly SamplePosition = "xoxo/oxox/ox.o/xoox x"
	// FiveRun is a 5x5 board with a full row of five X.
	FiveRun SamplePosition = "xxxxx/...../...../...../..... o"
)

// MustParse parses a sample position and panics if it is malformed.
func (s SamplePosition) MustParse() (*Board, Symbol) {
	b, side, err := ParsePosition(string(s))
	if err != nil {
		panic(err)
	}
	return b, side
}
