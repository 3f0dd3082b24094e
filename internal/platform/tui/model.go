package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// headerHeight is the number of lines above and below the board.
const headerHeight = 6

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game     *t2048.Game
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model around game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the tick loop and, if requested, the automatic player.
func (m Model) Init() tea.Cmd {
	if m.config.AutoStart && m.game.State() == t2048.StateStartScreen {
		m.game.StartGame(false)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if action == core.ActionHelp {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	out := core.Dispatch(m.game, action)
	if out.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if out.Handled {
		m.logger.Debug("action", "action", action, "state", m.game.State(), "moved", out.Moved)
	}
	return m, nil
}

// handleTick lets the automatic player move once per tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.State() == t2048.StatePlaying && m.game.Player() == t2048.PlayerAutomatic {
		m.game.Step()
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return lipgloss.JoinVertical(lipgloss.Center,
			"Window too small",
			"Please resize terminal",
		)
	}

	var content string
	switch m.game.State() {
	case t2048.StateStartScreen:
		content = m.viewStart()
	case t2048.StateGameOver:
		content = m.viewGameOver()
	default:
		content = m.viewPlaying()
	}

	helpView := hintStyle.Render(m.help.View(stateHelp{
		keys:   m.keys,
		state:  m.game.State(),
		player: m.game.Player(),
	}))
	content = lipgloss.JoinVertical(lipgloss.Center, content, "", helpView)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// tooSmall reports whether the board cannot fit the known terminal size.
func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	size := m.game.Size()
	boardH := size*(tileHeight+1) + 1
	return m.width < boardWidth(size) || m.height < boardH+headerHeight
}

func (m Model) viewStart() string {
	title := titleStyle.Render("2 0 4 8")
	best := renderScoreBox("BEST", m.game.BestScore())

	menu := lipgloss.JoinVertical(lipgloss.Left,
		buttonStyle.Render("enter")+"  play yourself",
		buttonStyle.Render("space")+"  watch the automatic player",
	)

	return lipgloss.JoinVertical(lipgloss.Center, title, "", best, "", menu)
}

func (m Model) viewPlaying() string {
	snap := m.game.Snapshot()

	status := fmt.Sprintf("%s player  moves %d  max %d", snap.Player, snap.Moves, snap.MaxTile)
	if snap.Player == t2048.PlayerHuman && m.game.CanUndo() {
		status += "  undo ready"
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		renderHeader(snap.Score, snap.BestScore),
		"",
		RenderBoard(snap.Grid, snap.Size),
		hintStyle.Render(status),
	)
}

func (m Model) viewGameOver() string {
	snap := m.game.Snapshot()

	msg := fmt.Sprintf("Game Over!\n\nScore %d  Max tile %d", snap.Score, snap.MaxTile)
	if snap.Score > 0 && snap.Score >= snap.BestScore {
		msg += "\nNew best score!"
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		renderHeader(snap.Score, snap.BestScore),
		"",
		RenderBoard(snap.Grid, snap.Size),
		overlayStyle.Render(msg),
	)
}

// Run starts the Bubble Tea program for game.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
