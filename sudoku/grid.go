// Package sudoku implements the 6x6 puzzle engine: grid generation,
// given selection, per-cell play state and truth-based validation.
// Presentation (rendering, key handling) lives with the caller.
package sudoku

const (
	// Size is the edge length of the grid; values run 1..Size.
	Size = 6

	// Blocks are 2 rows by 3 columns, six per grid.
	blockRows = 2
	blockCols = 3
)

// Grid holds cell values, 0 meaning empty. A fully solved Grid contains
// each of 1..Size exactly once per row, column and block.
type Grid [Size][Size]int

// BlockIndex returns which of the six blocks the position belongs to,
// numbered row-major 0..5.
func BlockIndex(row, col int) int {
	return (row/blockRows)*(Size/blockCols) + col/blockCols
}

func blockOrigin(row, col int) (int, int) {
	return (row / blockRows) * blockRows, (col / blockCols) * blockCols
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// ValidMove reports whether placing value at (row, col) leaves the grid's
// row, column and block uniqueness rules intact. The cell's own current
// content is ignored, so re-checking an already placed value is allowed.
func (g *Grid) ValidMove(row, col, value int) bool {
	for c := 0; c < Size; c++ {
		if c != col && g[row][c] == value {
			return false
		}
	}
	for r := 0; r < Size; r++ {
		if r != row && g[r][col] == value {
			return false
		}
	}
	br, bc := blockOrigin(row, col)
	for r := br; r < br+blockRows; r++ {
		for c := bc; c < bc+blockCols; c++ {
			if (r != row || c != col) && g[r][c] == value {
				return false
			}
		}
	}
	return true
}

// LegalValues returns the values that ValidMove allows at (row, col),
// in ascending order.
func (g *Grid) LegalValues(row, col int) []int {
	vals := make([]int, 0, Size)
	for v := 1; v <= Size; v++ {
		if g.ValidMove(row, col, v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// Solved reports whether the grid is completely filled and every
// placement is valid.
func (g *Grid) Solved() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 || !g.ValidMove(r, c, g[r][c]) {
				return false
			}
		}
	}
	return true
}
