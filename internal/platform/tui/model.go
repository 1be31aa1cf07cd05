package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier, used for file names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// DefaultRepeatWindow is how long a key counts as held after its last key
// message. Terminals report no key releases, only presses and autorepeats,
// so a key whose messages keep arriving within the window is still down.
const DefaultRepeatWindow = 100 * time.Millisecond

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	shotDir   string
	gameState core.GameState
	quitting  bool

	// Key messages become level samples, edges come from the tracker
	edges    *core.EdgeTracker
	lastSeen map[core.Action]time.Time
	window   time.Duration
	now      func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for platform events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// WithRepeatWindow sets how long a key counts as held after its last message.
func WithRepeatWindow(d time.Duration) Option {
	return func(m *Model) {
		m.window = d
	}
}

// WithClock replaces the wall clock used to age key messages.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// NewModel resets game and wraps it in a Bubble Tea model.
// One terminal row is reserved for the help footer.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) (Model, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    log.New(io.Discard),
		gameState: game.State(),
		edges:     core.NewEdgeTracker(),
		lastSeen:  make(map[core.Action]time.Time),
		window:    DefaultRepeatWindow,
		now:       time.Now,
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.shotDir = filepath.Join(home, ".flappy", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keys.MapKey(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	at := m.now()
	for a := range frame.Actions {
		m.lastSeen[a] = at
	}
	return m, nil
}

// handleResize resizes the screen buffer. The world is resolution
// independent, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// heldKeys reports which actions are currently held, forgetting keys
// whose last message is older than the repeat window.
func (m Model) heldKeys() map[core.Action]bool {
	at := m.now()
	down := make(map[core.Action]bool, len(m.lastSeen))
	for a, seen := range m.lastSeen {
		if at.Sub(seen) < m.window {
			down[a] = true
		} else {
			delete(m.lastSeen, a)
		}
	}
	return down
}

// handleTick runs one simulation tick. Only keys that went down since the
// previous tick reach the game; autorepeat while a key is held does not.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.edges.Sample(m.heldKeys()))
	if result.Transitioned {
		m.logger.Debug("state changed", "playing", result.State.Playing, "tick", result.State.Ticks)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model, err := NewModel(game, cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
