package tetris

// Board is the well of locked cells, stored row-major. A cell is 0 when empty
// and otherwise holds the colour index of the piece that locked there.
type Board struct {
	Cols, Rows int
	Cells      []uint8
}

// NewBoard allocates an empty board.
func NewBoard(cols, rows int) Board {
	return Board{Cols: cols, Rows: rows, Cells: make([]uint8, cols*rows)}
}

// At returns the cell at column x, row y.
func (b *Board) At(x, y int) uint8 {
	return b.Cells[y*b.Cols+x]
}

// Set stores v at column x, row y.
func (b *Board) Set(x, y int, v uint8) {
	b.Cells[y*b.Cols+x] = v
}

// Clear empties every cell.
func (b *Board) Clear() {
	clear(b.Cells)
}

func (b *Board) row(y int) []uint8 {
	return b.Cells[y*b.Cols : (y+1)*b.Cols]
}

func (b *Board) rowFull(y int) bool {
	for _, v := range b.row(y) {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row in one bottom-to-top compaction pass and
// returns how many were removed. Rows above the removed ones shift down and the
// top of the well is refilled with empty rows.
func ClearLines(b *Board) int {
	cleared := 0
	write := b.Rows - 1

	for read := b.Rows - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if read != write {
			copy(b.row(write), b.row(read))
		}
		write--
	}

	for ; write >= 0; write-- {
		clear(b.row(write))
	}
	return cleared
}

// Collides reports whether p, shifted by (dx, dy), overlaps a locked cell or
// leaves the well. Rows above the top of the well are never checked, which lets
// pieces spawn partially off-board. Below the floor, a shape row collides only
// when one of its occupied cells falls inside the column range.
func Collides(b *Board, p *Piece, dx, dy int) bool {
	for y, row := range p.Shape {
		by := p.Y + y + dy

		if by >= b.Rows {
			for x, v := range row {
				bx := p.X + x + dx
				if v != 0 && bx >= 0 && bx < b.Cols {
					return true
				}
			}
			continue
		}

		if by < 0 {
			continue
		}

		for x, v := range row {
			if v == 0 {
				continue
			}
			bx := p.X + x + dx
			if bx < 0 || bx >= b.Cols || b.At(bx, by) != 0 {
				return true
			}
		}
	}
	return false
}

// Lock copies the occupied cells of p into the board. Cells outside the well
// are dropped.
func Lock(b *Board, p *Piece) {
	for y, row := range p.Shape {
		by := p.Y + y
		for x, v := range row {
			bx := p.X + x
			if v != 0 && bx >= 0 && bx < b.Cols && by >= 0 && by < b.Rows {
				b.Set(bx, by, p.Color)
			}
		}
	}
}
