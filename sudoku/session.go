package sudoku

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultGivens is the number of pre-filled cells used when no
// difficulty is chosen.
const DefaultGivens = 16

var (
	// ErrOutOfRange is returned for coordinates outside 0..Size-1.
	ErrOutOfRange = errors.New("sudoku: coordinate out of range")
	// ErrBadDigit is returned for digits outside 1..Size.
	ErrBadDigit = errors.New("sudoku: digit out of range")
	// ErrGivenCell is returned when play tries to alter a given cell.
	ErrGivenCell = errors.New("sudoku: cell is a given")
)

// Session is one puzzle from generation to completion. It owns the
// hidden solution, the visible cells, the cursor and the input mode.
// All methods are synchronous; callers serialize access.
type Session struct {
	cells    [Size][Size]Cell
	solution Grid
	curRow   int
	curCol   int
	mode     Mode
	givens   int
	mistakes int
}

// NewSession generates a fresh solution, carves givenCount cells as
// givens and returns the session ready for play. givenCount must be in
// 0..36. The rng drives both generation and carving.
func NewSession(givenCount int, rng *rand.Rand) (*Session, error) {
	if givenCount < 0 || givenCount > Size*Size {
		return nil, fmt.Errorf("sudoku: given count %d not in 0..%d: %w", givenCount, Size*Size, ErrOutOfRange)
	}
	solution := Generate(rng)
	return &Session{
		cells:    carve(solution, givenCount, rng),
		solution: solution,
		givens:   givenCount,
	}, nil
}

// Select moves the cursor. Out-of-range coordinates are rejected and
// the cursor stays put; callers clamp when stepping off the edge.
func (s *Session) Select(row, col int) error {
	if !inBounds(row, col) {
		return ErrOutOfRange
	}
	s.curRow, s.curCol = row, col
	return nil
}

// Cursor returns the selected position.
func (s *Session) Cursor() (row, col int) { return s.curRow, s.curCol }

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode sets the session-wide input mode.
func (s *Session) SetMode(m Mode) { s.mode = m }

// ToggleMode flips between normal and pencil entry.
func (s *Session) ToggleMode() {
	if s.mode == ModeNormal {
		s.mode = ModePencil
	} else {
		s.mode = ModeNormal
	}
}

// EnterDigit applies v to the selected cell under the current mode.
// Normal mode commits the value and discards marks; a wrong commit
// counts as a mistake. Pencil mode toggles the mark for v. Givens are
// never touched.
func (s *Session) EnterDigit(v int) error {
	if v < 1 || v > Size {
		return ErrBadDigit
	}
	cell := &s.cells[s.curRow][s.curCol]
	if cell.Given {
		return ErrGivenCell
	}
	if s.mode == ModePencil {
		cell.Marks[v-1] = !cell.Marks[v-1]
		return nil
	}
	if v != s.solution[s.curRow][s.curCol] {
		s.mistakes++
	}
	cell.Value = v
	cell.Marks = [Size]bool{}
	return nil
}

// ClearSelected blanks the selected cell, dropping its value and marks.
func (s *Session) ClearSelected() error {
	cell := &s.cells[s.curRow][s.curCol]
	if cell.Given {
		return ErrGivenCell
	}
	cell.Value = 0
	cell.Marks = [Size]bool{}
	return nil
}

// Cell returns a copy of the cell at (row, col) for rendering.
func (s *Session) Cell(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return Cell{}, ErrOutOfRange
	}
	return s.cells[row][col], nil
}

// Check classifies the cell at (row, col) against the solution by
// direct lookup: no constraint re-derivation happens during play.
func (s *Session) Check(row, col int) (CheckResult, error) {
	if !inBounds(row, col) {
		return Incomplete, ErrOutOfRange
	}
	switch v := s.cells[row][col].Value; {
	case v == 0:
		return Incomplete, nil
	case v == s.solution[row][col]:
		return Correct, nil
	default:
		return Incorrect, nil
	}
}

// CheckComplete reports whether every cell holds the solution value.
func (s *Session) CheckComplete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.cells[r][c].Value != s.solution[r][c] {
				return false
			}
		}
	}
	return true
}

// Remaining counts cells still without a value.
func (s *Session) Remaining() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.cells[r][c].Value == 0 {
				n++
			}
		}
	}
	return n
}

// Givens returns the carve-time given count.
func (s *Session) Givens() int { return s.givens }

// Mistakes returns how many normal-mode entries did not match the
// solution so far.
func (s *Session) Mistakes() int { return s.mistakes }
