// Package sim implements the frame-stepped flappy simulation: kinematic
// integration, background and pipe recycling, collision detection and the
// Menu/Playing state machine. It has no knowledge of terminals or rendering.
package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RecycleRule wraps an entity once its x drops below Threshold.
// Fixed at spawn time.
type RecycleRule struct {
	Threshold float64
	Offset    float64
}

// Bird is the player-controlled entity. Exactly one exists per world.
type Bird struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Accel core.Vec2
	Anim  Animation
}

// Pipe is a pipe pair: an upper and a lower obstacle around a gap centred on Pos.Y.
type Pipe struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Rule RecycleRule
}

// StripKind identifies a scrolling layer.
type StripKind int

const (
	StripBackground StripKind = iota
	StripGround
)

func (k StripKind) String() string {
	if k == StripGround {
		return "ground"
	}
	return "background"
}

// Strip is a horizontally tiled layer that wraps to a fixed x.
type Strip struct {
	Kind StripKind
	Pos  core.Vec2
	Vel  core.Vec2
	Rule RecycleRule
}

// World holds every entity. The set is created once and only ever repositioned.
type World struct {
	Bird   Bird
	Pipes  []Pipe
	Strips [2]Strip // indexed by StripKind
}

// Geometry is the collision and layout math derived from the sprite extents.
type Geometry struct {
	Bird   core.Vec2 // width, height
	Pipe   core.Vec2 // width, height
	Gap    float64
	FloorY float64 // bird centre at or below this line touches the ground
	Width  float64 // playfield width
	Height float64 // playfield height
	Ground float64 // ground strip height
}

// NewGeometry derives the geometry from a configuration.
func NewGeometry(cfg config.FlappyConfig) Geometry {
	s := cfg.Sprites
	return Geometry{
		Bird:   core.V(s.Bird.W, s.Bird.H),
		Pipe:   core.V(s.Pipe.W, s.Pipe.H),
		Gap:    cfg.Pipes.Gap,
		FloorY: -(s.Background.H/2 - s.Ground.H - s.Bird.H/2),
		Width:  s.Background.W,
		Height: s.Background.H,
		Ground: s.Ground.H,
	}
}

// BirdBox returns the bird's bounding box at pos.
func (g Geometry) BirdBox(pos core.Vec2) core.Box {
	return core.NewBox(pos, g.Bird.X, g.Bird.Y)
}

// birdSpawn is where the bird starts every round.
func birdSpawn(cfg config.FlappyConfig) (pos, vel core.Vec2) {
	return core.V(0, cfg.Sprites.Ground.H/2), core.V(0, cfg.Physics.Flap)
}

// pipeX returns the reset x of the i-th pipe: right edge of the background,
// then one pipe every Distance.
func pipeX(cfg config.FlappyConfig, i int) float64 {
	return cfg.Sprites.Background.W + float64(i)*cfg.Pipes.Distance
}

// spawnWorld creates every entity in its initial position.
func spawnWorld(cfg config.FlappyConfig, rng RandSource) World {
	s := cfg.Sprites
	speed := cfg.Scroll.PipeSpeed

	var w World
	w.Strips[StripBackground] = Strip{
		Kind: StripBackground,
		Vel:  core.V(speed*cfg.Scroll.BackgroundFactor, 0),
		Rule: RecycleRule{Threshold: -s.Background.W / 2, Offset: s.Background.W / 2},
	}
	w.Strips[StripGround] = Strip{
		Kind: StripGround,
		Pos:  core.V(0, -(s.Background.H-s.Ground.H)/2),
		Vel:  core.V(speed, 0),
		Rule: RecycleRule{Threshold: (s.Background.W - s.Ground.W) / 2, Offset: 0},
	}

	pipeRule := RecycleRule{
		Threshold: -(s.Background.W + s.Pipe.W) / 2,
		Offset:    float64(cfg.Pipes.Count) * cfg.Pipes.Distance,
	}
	w.Pipes = make([]Pipe, cfg.Pipes.Count)
	for i := range w.Pipes {
		w.Pipes[i] = Pipe{
			Pos:  core.V(pipeX(cfg, i), drawBand(cfg.Pipes.SpawnBand, rng)),
			Vel:  core.V(speed, 0),
			Rule: pipeRule,
		}
	}

	pos, vel := birdSpawn(cfg)
	w.Bird = Bird{
		Pos:   pos,
		Vel:   vel,
		Accel: core.V(0, cfg.Physics.Gravity),
		Anim:  NewAnimation(0, cfg.Animation.Frames, cfg.Animation.Period),
	}
	return w
}
