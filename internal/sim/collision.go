package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// HitsGround reports whether the bird centre is at or below the floor line.
func HitsGround(bird core.Vec2, g Geometry) bool {
	return bird.Y <= g.FloorY
}

// HitsPipe reports whether the bird overlaps the pipe horizontally while its
// centre lies outside the safe part of the gap.
func HitsPipe(bird, pipe core.Vec2, g Geometry) bool {
	birdBox := g.BirdBox(bird)
	pipeBox := core.NewBox(pipe, g.Pipe.X, g.Pipe.Y)
	if !birdBox.OverlapsX(pipeBox) {
		return false
	}
	return !insideGap(bird.Y, pipe.Y, g)
}

// insideGap: strictly within the gap inset by half the bird height on each side.
func insideGap(birdY, pipeY float64, g Geometry) bool {
	low := pipeY - g.Gap/2 + g.Bird.Y/2
	high := pipeY + g.Gap/2 - g.Bird.Y/2
	return low < birdY && birdY < high
}

// DetectCollisions tests the bird against the ground and every pipe, pushing
// one GameOverDetected per hit. Returns the number of hits.
func DetectCollisions(w *World, g Geometry, ev *Events) int {
	hits := 0
	if HitsGround(w.Bird.Pos, g) {
		ev.GameOver.Push(GameOverDetected{Cause: CauseGround})
		hits++
	}
	for i, p := range w.Pipes {
		if HitsPipe(w.Bird.Pos, p.Pos, g) {
			ev.GameOver.Push(GameOverDetected{Cause: CausePipe, Pipe: i})
			hits++
		}
	}
	return hits
}
