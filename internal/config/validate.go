package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.TickRate <= 0 {
		fail("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Scroll.PipeSpeed >= 0 {
		fail("scroll.pipe_speed must be negative (leftward), got %v", c.Scroll.PipeSpeed)
	}
	if c.Physics.Gravity >= 0 {
		fail("physics.gravity must be negative (downward), got %v", c.Physics.Gravity)
	}
	if c.Physics.Flap <= 0 {
		fail("physics.flap must be positive (upward), got %v", c.Physics.Flap)
	}
	if c.Scroll.BackgroundFactor < 0 {
		fail("scroll.background_factor must not be negative, got %v", c.Scroll.BackgroundFactor)
	}

	sprites := []struct {
		name string
		size Size
	}{
		{"background", c.Sprites.Background},
		{"pipe", c.Sprites.Pipe},
		{"ground", c.Sprites.Ground},
		{"bird", c.Sprites.Bird},
	}
	for _, s := range sprites {
		if s.size.W <= 0 || s.size.H <= 0 {
			fail("sprites.%s must have positive extents, got %vx%v", s.name, s.size.W, s.size.H)
		}
	}

	p := c.Pipes
	if p.Count < 1 {
		fail("pipes.count must be at least 1, got %d", p.Count)
	}
	if p.Distance <= c.Sprites.Pipe.W {
		fail("pipes.distance (%v) must exceed the pipe width (%v)", p.Distance, c.Sprites.Pipe.W)
	}
	// A recycled pipe jumps by the whole pool span and must land off-screen right
	if span, need := float64(p.Count)*p.Distance, c.Sprites.Background.W+c.Sprites.Pipe.W; p.Count >= 1 && span < need {
		fail("pipes.count*distance (%v) must cover the background plus one pipe width (%v)", span, need)
	}
	if p.Gap <= c.Sprites.Bird.H {
		fail("pipes.gap (%v) must exceed the bird height (%v)", p.Gap, c.Sprites.Bird.H)
	}

	playTop := c.Sprites.Background.H / 2
	playBottom := -c.Sprites.Background.H/2 + c.Sprites.Ground.H
	if c.Sprites.Ground.H >= c.Sprites.Background.H {
		fail("sprites.ground height (%v) leaves no playfield", c.Sprites.Ground.H)
	} else if p.Gap >= playTop-playBottom {
		fail("pipes.gap (%v) must be smaller than the playfield height (%v)", p.Gap, playTop-playBottom)
	}

	bands := []struct {
		name string
		band Band
	}{
		{"spawn_band", p.SpawnBand},
		{"recycle_band", p.RecycleBand},
	}
	for _, nb := range bands {
		name, b := nb.name, nb.band
		if b.Spread < 0 {
			fail("pipes.%s.spread must not be negative, got %d", name, b.Spread)
			continue
		}
		if b.Max()+p.Gap/2 > playTop || b.Min()-p.Gap/2 < playBottom {
			fail("pipes.%s [%v, %v] lets the gap leave the playfield [%v, %v]",
				name, b.Min(), b.Max(), playBottom, playTop)
		}
	}

	if c.Animation.Frames < 1 {
		fail("animation.frames must be at least 1, got %d", c.Animation.Frames)
	}
	if c.Animation.Period <= 0 {
		fail("animation.period must be positive, got %v", c.Animation.Period)
	}

	return errors.Join(errs...)
}
