package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrPositionFormat = errors.New("malformed position")
	ErrCoordFormat    = errors.New("malformed coordinate")
)

// ToDisplayText renders the board with column letters along the top and
// 1-based row numbers down the side. Blocked cells show as '#', and any
// positions passed in as candidates show as '*'.
func (b *Board) ToDisplayText(candidates ...Pos) string {
	cand := make(map[Pos]bool, len(candidates))
	for _, p := range candidates {
		cand[p] = true
	}
	var str strings.Builder
	str.WriteString("   ")
	for i := 0; i < b.cols; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", b.cols*2) + "\n")
	for i := 0; i < b.rows; i++ {
		str.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < b.cols; j++ {
			switch {
			case cand[Pos{i, j}]:
				str.WriteString("*")
			case b.IsEmpty(i, j) && b.IsBlocked(i, j):
				str.WriteString("#")
			default:
				str.WriteString(b.At(i, j).displayString())
			}
			str.WriteString(" ")
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", b.cols*2) + "\n")
	return "\n" + str.String()
}

// ParsePos parses a user coordinate such as "B3" (column B, third row).
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Pos{}, fmt.Errorf("%w: %q", ErrCoordFormat, s)
	}
	letter := s[0]
	switch {
	case letter >= 'a' && letter <= 'z':
		letter -= 'a' - 'A'
	case letter >= 'A' && letter <= 'Z':
	default:
		return Pos{}, fmt.Errorf("%w: %q", ErrCoordFormat, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Pos{}, fmt.Errorf("%w: %q", ErrCoordFormat, s)
	}
	return Pos{Row: row - 1, Col: int(letter - 'A')}, nil
}

// ParsePosition reads the compact notation `<rows> <side>`, e.g.
// "x.../.o../..../.... x". Rows run top to bottom, separated by slashes.
// The blocked mask of the returned board is derived for the side to move.
func ParsePosition(s string) (*Board, Symbol, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, Empty, fmt.Errorf("%w: want <rows> <side>, got %q", ErrPositionFormat, s)
	}
	side, err := SymbolFromString(fields[1])
	if err != nil {
		return nil, Empty, fmt.Errorf("%w: side to move: %w", ErrPositionFormat, err)
	}
	rows := strings.Split(fields[0], "/")
	cols := len(rows[0])
	if cols == 0 || cols > MaxDim || len(rows) > MaxDim {
		return nil, Empty, fmt.Errorf("%w: bad dimensions", ErrPositionFormat)
	}
	b := NewBoard(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, Empty, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrPositionFormat, r+1, len(row), cols)
		}
		for c, ch := range row {
			switch ch {
			case '.':
			case 'x', 'X':
				b.Set(r, c, X)
			case 'o', 'O':
				b.Set(r, c, O)
			default:
				return nil, Empty, fmt.Errorf("%w: unexpected %q in row %d",
					ErrPositionFormat, ch, r+1)
			}
		}
	}
	if err := b.RefreshBlocked(side); err != nil {
		return nil, Empty, err
	}
	return b, side, nil
}

// Position writes the board in the notation read by ParsePosition. The
// mask is not stored; it is always derivable from the cells and the side.
func (b *Board) Position(side Symbol) string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.cols; c++ {
			sb.WriteByte(b.At(r, c).notation())
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(side.notation())
	return sb.String()
}
