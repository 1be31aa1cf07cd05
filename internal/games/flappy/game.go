// Package flappy adapts the simulation to the platform's game contract:
// reset with a runtime config, step with an input frame, render into a
// character screen.
package flappy

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Game implements the Flappy Bird game on top of sim.Simulation.
type Game struct {
	cfg    config.FlappyConfig
	logger *log.Logger
	sim    *sim.Simulation
	state  core.GameState
}

// New creates a game. The configuration is validated here so that a bad
// file stops the program before the terminal is taken over.
func New(cfg config.FlappyConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	return &Game{cfg: cfg, logger: logger}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset creates a fresh simulation in the menu.
// A non-zero rc.TickRate overrides the configured tick rate.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg := g.cfg
	if rc.TickRate > 0 {
		cfg.TickRate = rc.TickRate
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := sim.New(cfg, sim.WithSeed(seed), sim.WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.sim = s
	g.state = core.GameState{}
	if g.logger != nil {
		g.logger.Debug("game reset", "seed", seed, "tick_rate", cfg.TickRate)
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepWith(in)
}

// StepWith advances the game by one tick using any input oracle,
// such as an Autopilot.
func (g *Game) StepWith(in sim.InputOracle) core.StepResult {
	res := g.sim.Tick(in)
	g.state = core.GameState{
		Playing: res.State == sim.StatePlaying,
		Ticks:   g.sim.Ticks(),
	}
	return core.StepResult{State: g.state, Transitioned: res.Transitioned}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Sim exposes the underlying simulation, read-only by convention.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}
