package sudoku

// Cell is the play state of one grid position. A given cell is frozen
// at carve time: its Value always matches the solution and never
// changes. A non-given cell is either blank, filled with a player
// value, or carrying pencil marks.
type Cell struct {
	Value int        // 0 when empty, otherwise 1..Size
	Given bool
	Marks [Size]bool // pencil marks, Marks[v-1] for digit v
}

// Filled reports whether the cell holds a value, given or player-entered.
func (c Cell) Filled() bool { return c.Value != 0 }

// Marked reports whether any pencil mark is set.
func (c Cell) Marked() bool {
	for _, m := range c.Marks {
		if m {
			return true
		}
	}
	return false
}

// HasMark reports whether digit v is pencilled in.
func (c Cell) HasMark(v int) bool {
	return v >= 1 && v <= Size && c.Marks[v-1]
}

// Mode selects how digit entry is applied: committing a value or
// toggling a pencil mark. It is session-wide state, not per cell.
type Mode int

const (
	ModeNormal Mode = iota
	ModePencil
)

func (m Mode) String() string {
	if m == ModePencil {
		return "PENCIL"
	}
	return "NORMAL"
}

// CheckResult classifies a cell against the solution.
type CheckResult int

const (
	// Incomplete means the cell holds no value, only marks or nothing.
	Incomplete CheckResult = iota
	// Correct means the value matches the solution at that position.
	Correct
	// Incorrect means a value is present but does not match.
	Incorrect
)

func (r CheckResult) String() string {
	switch r {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "incomplete"
	}
}
