package board

// The blocked mask is the one piece of derived state kept on the board. It
// is recomputed for the player about to move whenever the turn changes, and
// is carried unchanged into search successors.

// blockedFor reports whether an Empty cell is closed to placement by mover:
// among its four orthogonal neighbours, the opponent holds strictly more
// cells than the mover does.
func (b *Board) blockedFor(row, col int, mover, opp Symbol) bool {
	mine, theirs := 0, 0
	for _, o := range Orthogonal {
		r, c := row+o.DRow, col+o.DCol
		if !b.InBounds(r, c) {
			continue
		}
		switch b.At(r, c) {
		case mover:
			mine++
		case opp:
			theirs++
		}
	}
	return theirs > mine
}

// RefreshBlocked recomputes the mask from the perspective of mover. Occupied
// cells are always reset to unblocked.
func (b *Board) RefreshBlocked(mover Symbol) error {
	opp, err := Opponent(mover)
	if err != nil {
		return err
	}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if !b.IsEmpty(row, col) {
				b.SetBlocked(row, col, false)
				continue
			}
			b.SetBlocked(row, col, b.blockedFor(row, col, mover, opp))
		}
	}
	return nil
}

// ClearBlocked unblocks every cell.
func (b *Board) ClearBlocked() {
	for i := range b.blocked {
		b.blocked[i] = false
	}
}

// PlacementAvailable is true if some cell is Empty and unblocked.
func (b *Board) PlacementAvailable() bool {
	for i, c := range b.cells {
		if c == Empty && !b.blocked[i] {
			return true
		}
	}
	return false
}

// HasAnyMove reports whether sym has a legal move under the current mask:
// either an open placement or an Empty cell next to one of its own pieces
// that a slide could reach.
func (b *Board) HasAnyMove(sym Symbol) bool {
	if b.PlacementAvailable() {
		return true
	}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if !b.IsEmpty(row, col) {
				continue
			}
			for _, o := range Neighbors {
				r, c := row+o.DRow, col+o.DCol
				if b.InBounds(r, c) && b.At(r, c) == sym {
					return true
				}
			}
		}
	}
	return false
}
