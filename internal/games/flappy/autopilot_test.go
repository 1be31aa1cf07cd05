package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

func TestAutopilotStartsFromMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	ap := NewAutopilot(g.Sim())

	if !ap.JustPressed(core.ActionStart) {
		t.Fatal("autopilot should press start in the menu")
	}
	if ap.JustPressed(core.ActionFlap) {
		t.Error("autopilot should not flap in the menu")
	}
	if ap.JustPressed(core.ActionQuit) {
		t.Error("autopilot should never quit")
	}

	res := g.StepWith(ap)
	if !res.State.Playing {
		t.Fatal("autopilot did not start the round")
	}
	if ap.JustPressed(core.ActionStart) {
		t.Error("autopilot should not press start while playing")
	}
}

func TestAutopilotFlapsBelowTarget(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), 1)
	g.StepWith(NewAutopilot(g.Sim()))
	ap := NewAutopilot(g.Sim())
	bird := &g.Sim().World().Bird

	bird.Pos.Y = ap.Target() - 20
	bird.Vel.Y = -50
	if !ap.JustPressed(core.ActionFlap) {
		t.Error("expected flap when falling below target")
	}

	bird.Vel.Y = 256
	if ap.JustPressed(core.ActionFlap) {
		t.Error("should not flap right after a flap")
	}

	bird.Pos.Y = ap.Target() + 20
	bird.Vel.Y = -50
	if ap.JustPressed(core.ActionFlap) {
		t.Error("should not flap above target")
	}
}

func TestAutopilotSurvives(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.SpawnBand.Spread = 20
	cfg.Pipes.RecycleBand.Spread = 20

	for seed := int64(1); seed <= 5; seed++ {
		g := newTestGame(t, cfg, seed)
		ap := NewAutopilot(g.Sim())

		// Thirty seconds of play passes a dozen pipes
		for range 1 + 30*cfg.TickRate {
			g.StepWith(ap)
		}
		if g.Sim().State() != sim.StatePlaying || g.Sim().Transitions() != 1 {
			t.Errorf("seed %d: autopilot crashed (state %v, transitions %d)",
				seed, g.Sim().State(), g.Sim().Transitions())
		}
	}
}

func TestDemoIgnoresKeyboard(t *testing.T) {
	d := NewDemo(newTestGame(t, config.DefaultFlappyConfig(), 1))

	res := d.Step(core.NewInputFrame())
	if !res.State.Playing {
		t.Fatal("demo should start the round on its own")
	}
	if d.ID() != "flappy" {
		t.Errorf("ID() = %q, want flappy", d.ID())
	}
}
