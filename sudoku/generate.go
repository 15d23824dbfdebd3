package sudoku

import "math/rand"

// Generate produces a fully solved grid by randomized backtracking.
// Candidate order is reshuffled at every position, so different rng
// states yield different solutions. The rng is passed in rather than
// taken from the global source so callers and tests can fix a seed.
func Generate(rng *rand.Rand) Grid {
	var g Grid
	if !fill(&g, rng) {
		// Unreachable: an empty 6x6 grid is always completable.
		panic("sudoku: backtracking fill failed on an empty grid")
	}
	return g
}

// fill completes the grid from the first empty position in row-major
// order. On failure the attempted cell is cleared before returning, so
// sibling branches never see a stale value.
func fill(g *Grid, rng *rand.Rand) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				continue
			}
			legal := g.LegalValues(r, c)
			for _, i := range rng.Perm(len(legal)) {
				g[r][c] = legal[i]
				if fill(g, rng) {
					return true
				}
				g[r][c] = 0
			}
			return false
		}
	}
	return true
}

// carve builds the initial play grid from a solution: givenCount
// positions chosen uniformly without replacement become frozen givens,
// the rest start blank with no marks. No attempt is made to keep the
// carved puzzle solvable by deduction alone; play is always checked
// against the stored solution.
func carve(solution Grid, givenCount int, rng *rand.Rand) [Size][Size]Cell {
	var cells [Size][Size]Cell
	for _, idx := range rng.Perm(Size * Size)[:givenCount] {
		r, c := idx/Size, idx%Size
		cells[r][c] = Cell{Value: solution[r][c], Given: true}
	}
	return cells
}
