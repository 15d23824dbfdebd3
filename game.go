package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	env "github.com/muesli/termenv"

	"github.com/jxmullins/sixdoku/sudoku"
)

type GameState int

const (
	Playing GameState = iota
	Won
	InMenu
)

type GameModel struct {
	session          *sudoku.Session
	KeyMap           KeyMap
	player           string
	startTime        time.Time
	width, height    int
	difficulty       Difficulty
	originalBgColor  env.Color
	output           *env.Output
	state            GameState
	menuOptions      []string
	selectedOption   int
	elapsedTimeOnWin time.Duration
	topScores        []LeaderboardEntry
}

type setBackgroundColorMsg struct {
	color env.Color
}

func setBackgroundColor(c env.Color) tea.Cmd {
	return func() tea.Msg {
		return setBackgroundColorMsg{color: c}
	}
}

func NewGameModel(width, height int, player string, difficulty Difficulty) *GameModel {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := sudoku.NewSession(difficulty.Givens(), rng)
	if err != nil {
		// Difficulty given counts are all in range, so this should not
		// happen; fall back to the default rather than crash the session.
		log.Error("could not start puzzle session", "error", err)
		session, _ = sudoku.NewSession(sudoku.DefaultGivens, rng)
	}

	return &GameModel{
		session:         session,
		KeyMap:          Keys,
		player:          player,
		startTime:       time.Now(),
		width:           width,
		height:          height,
		difficulty:      difficulty,
		originalBgColor: env.BackgroundColor(),
		output:          env.DefaultOutput(),
		state:           Playing,
		menuOptions:     []string{"Resume Game", "New Game", "Quit"},
		selectedOption:  0,
	}
}

func (m GameModel) Init() tea.Cmd {
	return setBackgroundColor(env.RGBColor("#1e1e1e")) // Dark background color
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setBackgroundColorMsg:
		m.output.SetBackgroundColor(msg.color)
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.state == InMenu:
			return m.updateMenu(msg)

		case key.Matches(msg, m.KeyMap.Menu):
			m.state = InMenu

		case key.Matches(msg, m.KeyMap.Down):
			m.moveCursor(1, 0)

		case key.Matches(msg, m.KeyMap.Up):
			m.moveCursor(-1, 0)

		case key.Matches(msg, m.KeyMap.Left):
			m.moveCursor(0, -1)

		case key.Matches(msg, m.KeyMap.Right):
			m.moveCursor(0, 1)

		case key.Matches(msg, m.KeyMap.Pencil):
			if m.state == Playing {
				m.session.ToggleMode()
			}

		case key.Matches(msg, m.KeyMap.Clear):
			// Rejected on givens; nothing to do either way.
			_ = m.session.ClearSelected()

		case key.Matches(msg, m.KeyMap.Number):
			if m.state == Playing {
				m.enterDigit(int(msg.String()[0] - '0'))
			}

		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Sequence(
				setBackgroundColor(m.originalBgColor),
				tea.Quit,
			)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m GameModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		m.selectedOption = (m.selectedOption - 1 + len(m.menuOptions)) % len(m.menuOptions)
	case key.Matches(msg, m.KeyMap.Down):
		m.selectedOption = (m.selectedOption + 1) % len(m.menuOptions)
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		switch m.selectedOption {
		case 0: // Resume Game
			m.state = Playing
			return m, nil
		case 1: // New Game
			return NewMenuModel(m.width, m.height, m.player), nil
		case 2: // Quit
			return m, tea.Sequence(
				setBackgroundColor(m.originalBgColor),
				tea.Quit,
			)
		}
	}
	return m, nil
}

func (m *GameModel) moveCursor(dr, dc int) {
	row, col := m.session.Cursor()
	row = clamp(row+dr, 0, sudoku.Size-1)
	col = clamp(col+dc, 0, sudoku.Size-1)
	if err := m.session.Select(row, col); err != nil {
		log.Error("select cell", "row", row, "col", col, "error", err)
	}
}

func (m *GameModel) enterDigit(v int) {
	if err := m.session.EnterDigit(v); err != nil {
		// Given cell: the engine rejects it and keeps state unchanged.
		return
	}
	if m.session.Mode() == sudoku.ModeNormal && m.session.CheckComplete() {
		m.state = Won
		m.elapsedTimeOnWin = time.Since(m.startTime)
		m.recordWin()
	}
}

func (m *GameModel) recordWin() {
	lb, err := LoadLeaderboardFromFile(leaderboardFile)
	if err != nil {
		log.Warn("could not load leaderboard", "error", err)
		lb = NewLeaderboard()
	}
	lb.AddEntry(m.player, m.elapsedTimeOnWin, m.difficulty, m.session.Mistakes())
	if err := lb.SaveToFile(leaderboardFile); err != nil {
		log.Warn("could not save leaderboard", "error", err)
	}
	m.topScores = lb.GetTopScores(m.difficulty, 5)
}

func (m GameModel) View() string {
	switch m.state {
	case InMenu:
		return m.renderMenu()
	case Won:
		return m.renderWinScreen()
	default:
		return m.renderGame()
	}
}

func (m GameModel) renderMenu() string {
	var s strings.Builder
	s.WriteString("Menu\n\n")
	for i, option := range m.menuOptions {
		if i == m.selectedOption {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(option + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

func (m GameModel) renderWinScreen() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		BorderForeground(lipgloss.Color("#FFD700"))

	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00FF00")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF4500")).
		Bold(true).
		Align(lipgloss.Center)

	winMessage := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		titleStyle.Render("You Win!!!"),
		textStyle.Render(fmt.Sprintf("Time: %02d:%02d", int(m.elapsedTimeOnWin.Minutes()), int(m.elapsedTimeOnWin.Seconds())%60)),
		textStyle.Render(fmt.Sprintf("Mistakes: %d", m.session.Mistakes())),
		"Press 'q' to quit or 'm' for menu")

	if len(m.topScores) > 0 {
		var scores strings.Builder
		scores.WriteString(fmt.Sprintf("\n\nBest times (%s):\n", m.difficulty))
		for i, entry := range m.topScores {
			scores.WriteString(fmt.Sprintf("%d. %-12s %02d:%02d  (%d mistakes)\n",
				i+1, entry.Name,
				int(entry.Time.Minutes()), int(entry.Time.Seconds())%60,
				entry.Mistakes))
		}
		winMessage += scores.String()
	}

	boxedWinMessage := boxStyle.Render(winMessage)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxedWinMessage)
}

func (m GameModel) renderGame() string {
	boardView := m.renderBoard()
	infoView := m.renderInfo()

	mainView := lipgloss.JoinVertical(lipgloss.Center, boardView, infoView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m GameModel) renderBoard() string {
	var boardView string
	curRow, curCol := m.session.Cursor()

	for i := 0; i < sudoku.Size; i++ {
		row := ""
		for j := 0; j < sudoku.Size; j++ {
			cell, _ := m.session.Cell(i, j)
			result, _ := m.session.Check(i, j)
			isCursor := curRow == i && curCol == j
			row += formatCell(classifyCell(cell, result), isCursor, cellContent(cell), j)
		}
		boardView += formatRow(i, row) + "\n"
	}
	return boardView
}

// cellContent is what gets printed inside the three-column cell: the
// value, the pencil marks (clipped to fit), or a space.
func cellContent(cell sudoku.Cell) string {
	if cell.Filled() {
		return fmt.Sprintf("%d", cell.Value)
	}
	if cell.Marked() {
		var marks strings.Builder
		for v := 1; v <= sudoku.Size; v++ {
			if cell.HasMark(v) {
				marks.WriteByte(byte('0' + v))
			}
		}
		s := marks.String()
		if len(s) > 3 {
			s = s[:3]
		}
		return s
	}
	return " "
}

func classifyCell(cell sudoku.Cell, result sudoku.CheckResult) cellClass {
	switch {
	case cell.Given:
		return cellGiven
	case cell.Filled() && result == sudoku.Correct:
		return cellCorrect
	case cell.Filled():
		return cellIncorrect
	case cell.Marked():
		return cellMarked
	default:
		return cellBlank
	}
}

func (m GameModel) renderInfo() string {
	var elapsedTime time.Duration
	if m.state == Won {
		elapsedTime = m.elapsedTimeOnWin
	} else {
		elapsedTime = time.Since(m.startTime).Round(time.Second)
	}

	info := fmt.Sprintf("Cells left: %d   Mistakes: %d\n", m.session.Remaining(), m.session.Mistakes())
	info += fmt.Sprintf("Elapsed time: %02d:%02d\n", int(elapsedTime.Minutes()), int(elapsedTime.Seconds())%60)
	info += fmt.Sprintf("Mode: %s\n", m.session.Mode())
	info += "\narrows/hjkl move • 1-6 fill • p pencil • ⌫ clear • m menu • q quit\n"
	info += fmt.Sprintf("\nSixdoku - %s (%d givens)", m.difficulty, m.difficulty.Givens())
	return cellsLeftStyle.Render(info)
}
