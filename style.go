package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellClass picks which style a board cell is drawn with. Correct and
// incorrect only apply to player-filled cells; givens are never
// classified against the solution on screen.
type cellClass int

const (
	cellBlank cellClass = iota
	cellGiven
	cellCorrect
	cellIncorrect
	cellMarked
)

var (
	baseCellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center)

	cellStyles = map[cellClass]lipgloss.Style{
		// Blank, editable cells: light gray background, white text
		cellBlank: baseCellStyle.
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")),
		// Givens: darker background, cyan text, never editable
		cellGiven: baseCellStyle.
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("14")).
			Bold(true),
		// Player value matching the solution
		cellCorrect: baseCellStyle.
			Background(lipgloss.Color("28")).
			Foreground(lipgloss.Color("15")),
		// Player value contradicting the solution
		cellIncorrect: baseCellStyle.
			Background(lipgloss.Color("196")).
			Foreground(lipgloss.Color("15")),
		// Pencil marks: dimmed, italic
		cellMarked: baseCellStyle.
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("250")).
			Italic(true),
	}

	// The cursor keeps the class colour readable by going yellow, with
	// green/red shifted variants so validation stays visible under it.
	cursorStyles = map[cellClass]lipgloss.Style{
		cellBlank:     baseCellStyle.Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")).Bold(true),
		cellGiven:     baseCellStyle.Background(lipgloss.Color("178")).Foreground(lipgloss.Color("0")).Bold(true),
		cellCorrect:   baseCellStyle.Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")).Bold(true),
		cellIncorrect: baseCellStyle.Background(lipgloss.Color("203")).Foreground(lipgloss.Color("0")).Bold(true),
		cellMarked:    baseCellStyle.Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")).Italic(true),
	}

	blockBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				Margin(0, 1)

	formatCell = func(class cellClass, isCursor bool, content string, col int) string {
		s := cellStyles[class]
		if isCursor {
			s = cursorStyles[class]
		}

		// Vertical border between the two 3-column block halves
		if col+1 == 3 {
			return s.Render(content) + blockBorderStyle.Render("")
		}
		return s.Render(content)
	}

	formatRow = func(row int, r string) string {
		// Horizontal borders between the 2-row block bands
		if row+1 == 2 || row+1 == 4 {
			rSize, _ := lipgloss.Size(r)
			border := strings.Repeat("─", (rSize-1)/2)
			return r + "\n" + border + "┼" + border
		}
		return r
	}

	// Style for the cells left and info text at the bottom
	cellsLeftStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Margin(1, 0, 0, 0)
)
