package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// system is one step of a per-state schedule.
type system func(s *Simulation)

// Simulation is the driver: it owns the world, the event bus, the state
// machine and the random source, and runs one fixed tick at a time.
type Simulation struct {
	cfg     config.FlappyConfig
	geom    Geometry
	world   World
	events  Events
	machine Machine
	rng     RandSource
	logger  *log.Logger
	dt      float64
	ticks   int

	schedules map[GameState][]system
	result    TickResult
}

// TickResult summarises one tick.
type TickResult struct {
	State        GameState // state after the tick
	Transitioned bool      // the tick changed the state
	GameOver     bool      // a collision ended the round this tick
	Flapped      bool      // a flap was applied this tick
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithSeed seeds the pipe placement random source. Two simulations with the
// same seed and inputs evolve identically.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandSource injects a random source, overriding WithSeed.
func WithRandSource(r RandSource) Option {
	return func(s *Simulation) {
		s.rng = r
	}
}

// WithLogger sets the logger used for state transitions and recycling.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// New validates the configuration and spawns the world in the Menu state.
func New(cfg config.FlappyConfig, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		cfg:    cfg,
		geom:   NewGeometry(cfg),
		logger: log.New(io.Discard),
		dt:     1 / float64(cfg.TickRate),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.schedules = map[GameState][]system{
		StateMenu: {
			resetBird,
			resetPipes,
			startRound,
		},
		StatePlaying: {
			integratePositions,
			integrateVelocities,
			loopStrips,
			loopPipes,
			applyFlap,
			detectCollisions,
			endRound,
		},
	}

	s.world = spawnWorld(cfg, s.rng)
	s.logger.Debug("world spawned", "pipes", len(s.world.Pipes), "dt", s.dt)
	return s, nil
}

// Tick runs one fixed simulation step.
// Order: clear events, map input, run the current state's schedule, animate.
func (s *Simulation) Tick(in InputOracle) TickResult {
	s.events.Clear()
	s.result = TickResult{}

	MapInput(in, &s.events)

	for _, sys := range s.schedules[s.machine.State()] {
		sys(s)
	}

	s.world.Bird.Anim.Advance(s.dt)
	s.ticks++

	s.result.State = s.machine.State()
	return s.result
}

// World returns the entities. Callers must treat it as read-only.
func (s *Simulation) World() *World {
	return &s.world
}

// Geometry returns the collision geometry.
func (s *Simulation) Geometry() Geometry {
	return s.geom
}

// Config returns the configuration the simulation was created with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// State returns the current game state.
func (s *Simulation) State() GameState {
	return s.machine.State()
}

// Transitions returns the number of state changes so far.
func (s *Simulation) Transitions() int {
	return s.machine.Transitions()
}

// Events exposes this tick's event queues.
func (s *Simulation) Events() *Events {
	return &s.events
}

// Ticks returns the number of ticks run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// DT returns the fixed timestep in seconds.
func (s *Simulation) DT() float64 {
	return s.dt
}

// Menu schedule.

func resetBird(s *Simulation) {
	if s.events.Start.Empty() {
		return
	}
	s.world.Bird.Pos, s.world.Bird.Vel = birdSpawn(s.cfg)
}

func resetPipes(s *Simulation) {
	if s.events.Start.Empty() {
		return
	}
	for i := range s.world.Pipes {
		s.world.Pipes[i].Pos.X = pipeX(s.cfg, i)
		s.world.Pipes[i].Pos.Y = drawBand(s.cfg.Pipes.SpawnBand, s.rng)
	}
}

func startRound(s *Simulation) {
	if s.events.Start.Empty() {
		return
	}
	if s.machine.Transition(StatePlaying) {
		s.result.Transitioned = true
		s.logger.Info("round started", "tick", s.ticks)
	}
}

// Playing schedule.

func integratePositions(s *Simulation) {
	IntegratePositions(&s.world, s.dt)
}

func integrateVelocities(s *Simulation) {
	IntegrateVelocities(&s.world, s.dt)
}

func loopStrips(s *Simulation) {
	LoopStrips(&s.world)
}

func loopPipes(s *Simulation) {
	if n := LoopPipes(&s.world, s.cfg.Pipes.RecycleBand, s.rng); n > 0 {
		s.logger.Debug("pipes recycled", "count", n, "tick", s.ticks)
	}
}

func applyFlap(s *Simulation) {
	if s.events.Flap.Empty() {
		return
	}
	s.world.Bird.Vel.Y = s.cfg.Physics.Flap
	s.result.Flapped = true
}

func detectCollisions(s *Simulation) {
	DetectCollisions(&s.world, s.geom, &s.events)
}

func endRound(s *Simulation) {
	if s.events.GameOver.Empty() {
		return
	}
	if s.machine.Transition(StateMenu) {
		first := s.events.GameOver.Items()[0]
		s.result.Transitioned = true
		s.result.GameOver = true
		s.logger.Info("game over",
			"cause", first.Cause,
			"hits", s.events.GameOver.Len(),
			"tick", s.ticks,
			"bird_y", s.world.Bird.Pos.Y,
		)
	}
}
