package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Autopilot is an input oracle that plays the game: it starts rounds from
// the menu and flaps to keep the bird slightly below the centre of the next gap.
type Autopilot struct {
	sim *sim.Simulation
}

// NewAutopilot creates an autopilot steering s.
func NewAutopilot(s *sim.Simulation) *Autopilot {
	return &Autopilot{sim: s}
}

// JustPressed implements sim.InputOracle.
func (a *Autopilot) JustPressed(act core.Action) bool {
	switch act {
	case core.ActionStart:
		return a.sim.State() == sim.StateMenu
	case core.ActionFlap:
		return a.sim.State() == sim.StatePlaying && a.shouldFlap()
	default:
		return false
	}
}

// Target returns the height the autopilot is steering toward.
func (a *Autopilot) Target() float64 {
	w := a.sim.World()
	g := a.sim.Geometry()
	bird := w.Bird.Pos
	reach := (g.Pipe.X + g.Bird.X) / 2

	// Nearest pipe the bird has not cleared yet, and the one after it
	cur, next := -1, -1
	for i, p := range w.Pipes {
		if p.Pos.X+reach <= bird.X {
			continue
		}
		switch {
		case cur == -1 || p.Pos.X < w.Pipes[cur].Pos.X:
			next = cur
			cur = i
		case next == -1 || p.Pos.X < w.Pipes[next].Pos.X:
			next = i
		}
	}
	if cur == -1 {
		return bird.Y
	}

	margin := g.Gap / 10
	target := w.Pipes[cur].Pos.Y - margin
	inside := math.Abs(w.Pipes[cur].Pos.X-bird.X) < reach
	if inside && next != -1 {
		// Lean toward the next gap without leaving this one
		lo := w.Pipes[cur].Pos.Y - 2*margin
		hi := w.Pipes[cur].Pos.Y
		target = math.Max(lo, math.Min(hi, w.Pipes[next].Pos.Y-margin))
	}
	return target
}

func (a *Autopilot) shouldFlap() bool {
	bird := a.sim.World().Bird
	flap := a.sim.Config().Physics.Flap
	return bird.Pos.Y < a.Target() && bird.Vel.Y < 0.9*flap
}

// Demo is a Game whose input always comes from an Autopilot.
// Keyboard frames are ignored; the host still handles quitting.
type Demo struct {
	*Game
}

// NewDemo wraps g so that it plays itself.
func NewDemo(g *Game) *Demo {
	return &Demo{Game: g}
}

// Step advances the game by one tick under autopilot control.
func (d *Demo) Step(core.InputFrame) core.StepResult {
	return d.StepWith(NewAutopilot(d.Sim()))
}
