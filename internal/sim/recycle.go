package sim

import "github.com/vovakirdan/tui-flappy/internal/config"

// RandSource is the random source used for pipe placement.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// drawBand draws Center + Spread - rand[0, 2*Spread).
func drawBand(b config.Band, rng RandSource) float64 {
	if b.Spread <= 0 {
		return b.Center
	}
	return b.Center + float64(b.Spread) - float64(rng.Intn(2*b.Spread))
}

// LoopStrips wraps the background and ground layers: once x drops below the
// rule's threshold it is set to the rule's offset. Returns how many wrapped.
func LoopStrips(w *World) int {
	wrapped := 0
	for i := range w.Strips {
		s := &w.Strips[i]
		if s.Pos.X < s.Rule.Threshold {
			s.Pos.X = s.Rule.Offset
			wrapped++
		}
	}
	return wrapped
}

// LoopPipes moves every pipe that scrolled past its threshold to the back of
// the queue (x += offset, keeping the spacing) and gives it a new gap height
// drawn from band. Returns how many pipes were recycled.
func LoopPipes(w *World, band config.Band, rng RandSource) int {
	recycled := 0
	for i := range w.Pipes {
		p := &w.Pipes[i]
		if p.Pos.X < p.Rule.Threshold {
			p.Pos.Y = drawBand(band, rng)
			p.Pos.X += p.Rule.Offset
			recycled++
		}
	}
	return recycled
}
