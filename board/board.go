// Package board holds the game grid: the authoritative symbol layout and
// the per-cell placement mask derived from it.
package board

import (
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	// RunLength is the number of same-symbol cells in a line that ends the game.
	RunLength = 4
	// ClassicDim is the side of the board for the classic two-human game.
	ClassicDim = 5
	// CompactDim is the side of the board for the compact and computer games.
	CompactDim = 4
	// MaxDim bounds the coordinate notation (columns are letters).
	MaxDim = 26
)

// Pos is a (row, col) grid index.
type Pos struct {
	Row int
	Col int
}

// String renders the position in user coordinates, e.g. B3 for row 2,
// column 1.
func (p Pos) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// Offset is a single step on the grid.
type Offset struct {
	DRow int
	DCol int
}

// The eight neighbour offsets. They are named along screen (x, y) axes but
// applied as (row, col) deltas. Their order fixes the order in which slides
// are generated, and so which of several equal moves a search settles on.
var (
	Up        = Offset{0, -1}
	Down      = Offset{0, 1}
	Left      = Offset{-1, 0}
	Right     = Offset{1, 0}
	UpLeft    = Offset{-1, -1}
	UpRight   = Offset{1, -1}
	DownLeft  = Offset{-1, 1}
	DownRight = Offset{1, 1}

	Neighbors = [8]Offset{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
	// Orthogonal is the first four Neighbors.
	Orthogonal = Neighbors[:4]
)

// axes are scanned in this order by IsLineComplete: horizontal, vertical,
// then the two diagonals. Each axis is a pair of opposite directions.
var axes = [4][2]Offset{
	{{0, -1}, {0, 1}},
	{{-1, 0}, {1, 0}},
	{{-1, -1}, {1, 1}},
	{{1, -1}, {-1, 1}},
}

// A Board is a rows x cols grid of symbols plus a parallel blocked mask.
// The mask only means something on Empty cells: it marks where the player
// about to move may not place (sliding there is always allowed).
type Board struct {
	rows    int
	cols    int
	cells   []Symbol
	blocked []bool
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 || cols > MaxDim || rows > MaxDim {
		panic(fmt.Sprintf("unsupported board size %dx%d", rows, cols))
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]Symbol, rows*cols),
		blocked: make([]bool, rows*cols),
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) idx(row, col int) int {
	return row*b.cols + col
}

// At returns the symbol at the given cell.
func (b *Board) At(row, col int) Symbol {
	return b.cells[b.idx(row, col)]
}

// Set writes a symbol. Setting a cell does not touch the blocked mask; see
// RefreshBlocked.
func (b *Board) Set(row, col int, s Symbol) {
	b.cells[b.idx(row, col)] = s
}

func (b *Board) IsEmpty(row, col int) bool {
	return b.At(row, col) == Empty
}

func (b *Board) IsBlocked(row, col int) bool {
	return b.blocked[b.idx(row, col)]
}

func (b *Board) SetBlocked(row, col int, blocked bool) {
	b.blocked[b.idx(row, col)] = blocked
}

// CanPlace is true when the cell is Empty and not blocked.
func (b *Board) CanPlace(row, col int) bool {
	i := b.idx(row, col)
	return b.cells[i] == Empty && !b.blocked[i]
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	n := &Board{
		rows:    b.rows,
		cols:    b.cols,
		cells:   make([]Symbol, len(b.cells)),
		blocked: make([]bool, len(b.blocked)),
	}
	copy(n.cells, b.cells)
	copy(n.blocked, b.blocked)
	return n
}

// CopyFrom overwrites b with the contents of o. Both must be the same size.
func (b *Board) CopyFrom(o *Board) {
	if b.rows != o.rows || b.cols != o.cols {
		panic("board size mismatch")
	}
	copy(b.cells, o.cells)
	copy(b.blocked, o.blocked)
}

// Equals compares cells and mask.
func (b *Board) Equals(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] || b.blocked[i] != o.blocked[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold s.
func (b *Board) Count(s Symbol) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}
	return n
}

// countRun counts contiguous cells holding sym from (row, col) along o,
// not including the starting cell, and never more than RunLength-1 steps.
func (b *Board) countRun(row, col int, o Offset, sym Symbol) int {
	count := 0
	for i := 1; i < RunLength; i++ {
		r, c := row+o.DRow*i, col+o.DCol*i
		if !b.InBounds(r, c) || b.At(r, c) != sym {
			break
		}
		count++
	}
	return count
}

// IsLineComplete reports whether the piece at (row, col) is part of a
// completed line. For each axis the contiguous same-symbol cells are
// counted on both sides, each side bounded to three steps; the axis wins
// when the two sides add up to exactly three. An empty cell never
// completes a line.
func (b *Board) IsLineComplete(row, col int) bool {
	sym := b.At(row, col)
	if sym == Empty {
		return false
	}
	for _, axis := range axes {
		n := b.countRun(row, col, axis[0], sym) + b.countRun(row, col, axis[1], sym)
		if n == RunLength-1 {
			return true
		}
	}
	return false
}

// Terminal scans the board in row-major order and returns the symbol of the
// first occupied cell that completes a line. When several lines exist, the
// first one found decides the winner.
func (b *Board) Terminal() (Symbol, bool) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			s := b.At(row, col)
			if s == Empty {
				continue
			}
			if b.IsLineComplete(row, col) {
				return s, true
			}
		}
	}
	return Empty, false
}

// SlideTargets returns the Empty in-bounds neighbours of (row, col) in
// Neighbors order. Blocked cells are valid slide targets.
func (b *Board) SlideTargets(row, col int) []Pos {
	var targets []Pos
	for _, o := range Neighbors {
		r, c := row+o.DRow, col+o.DCol
		if b.InBounds(r, c) && b.IsEmpty(r, c) {
			targets = append(targets, Pos{r, c})
		}
	}
	return targets
}

// Fingerprint is a 64-bit hash of the cells and the mask. It identifies a
// position in logs and displays.
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, 0, 2+len(b.cells)*2)
	buf = append(buf, byte(b.rows), byte(b.cols))
	for i, c := range b.cells {
		var m byte
		if b.blocked[i] {
			m = 1
		}
		buf = append(buf, byte(c), m)
	}
	return xxhash.Sum64(buf)
}
