package sudoku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSatisfiesAllRegions(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 12345} {
		g := Generate(rand.New(rand.NewSource(seed)))

		for r := 0; r < Size; r++ {
			seen := map[int]bool{}
			for c := 0; c < Size; c++ {
				seen[g[r][c]] = true
			}
			assertDigits(t, seen, "row %d (seed %d)", r, seed)
		}
		for c := 0; c < Size; c++ {
			seen := map[int]bool{}
			for r := 0; r < Size; r++ {
				seen[g[r][c]] = true
			}
			assertDigits(t, seen, "col %d (seed %d)", c, seed)
		}
		blocks := make([]map[int]bool, Size)
		for i := range blocks {
			blocks[i] = map[int]bool{}
		}
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				blocks[BlockIndex(r, c)][g[r][c]] = true
			}
		}
		for i, seen := range blocks {
			assertDigits(t, seen, "block %d (seed %d)", i, seed)
		}
	}
}

func assertDigits(t *testing.T, seen map[int]bool, format string, args ...any) {
	t.Helper()
	require.Lenf(t, seen, Size, format, args...)
	for v := 1; v <= Size; v++ {
		assert.Truef(t, seen[v], format, args...)
	}
}

func TestGenerateVariesWithSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(1)))
	b := Generate(rand.New(rand.NewSource(2)))
	assert.NotEqual(t, a, b, "different seeds should not produce the same grid")
}

func TestGenerateDeterministicForFixedSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(99)))
	b := Generate(rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestValidMove(t *testing.T) {
	var g Grid
	g[0][0] = 1
	g[1][3] = 4

	for _, tt := range []struct {
		name  string
		row   int
		col   int
		value int
		want  bool
	}{
		{"row conflict", 0, 5, 1, false},
		{"col conflict", 5, 0, 1, false},
		{"block conflict", 1, 2, 1, false},
		{"same cell re-check", 0, 0, 1, true},
		{"no conflict", 5, 5, 1, true},
		{"block conflict across row pair", 0, 4, 4, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ValidMove(tt.row, tt.col, tt.value))
		})
	}
}

func TestLegalValuesPrunesPeers(t *testing.T) {
	var g Grid
	g[0][0] = 1
	g[0][1] = 2
	g[1][2] = 3 // same block as (0,2)
	g[5][2] = 4 // same column as (0,2)

	assert.Equal(t, []int{5, 6}, g.LegalValues(0, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, (&Grid{}).LegalValues(3, 3))
}

func TestBlockIndex(t *testing.T) {
	assert.Equal(t, 0, BlockIndex(0, 0))
	assert.Equal(t, 0, BlockIndex(1, 2))
	assert.Equal(t, 1, BlockIndex(0, 3))
	assert.Equal(t, 2, BlockIndex(2, 1))
	assert.Equal(t, 5, BlockIndex(5, 5))
}

func TestSolved(t *testing.T) {
	g := Generate(rand.New(rand.NewSource(3)))
	assert.True(t, g.Solved())

	g[2][2], g[2][3] = g[2][3], g[2][2]
	assert.False(t, g.Solved(), "swapped cells must break a region")

	var empty Grid
	assert.False(t, empty.Solved())
}
