package sim

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestHitsPipe(t *testing.T) {
	g := NewGeometry(config.DefaultFlappyConfig())
	pipe := core.V(0, 50)

	// Gap is 100 and the bird 34x24, so the safe band for the bird centre is (12, 88)
	// and horizontal overlap needs |dx| < (52 + 34) / 2 = 43.
	tests := []struct {
		name string
		bird core.Vec2
		want bool
	}{
		{"centred on the gap midline", core.V(0, 50), false},
		{"inside the gap near the top", core.V(0, 87.9), false},
		{"inside the gap near the bottom", core.V(0, 12.1), false},
		{"touching the upper pipe", core.V(0, 88), true},
		{"touching the lower pipe", core.V(0, 12), true},
		{"above the gap", core.V(0, 140), true},
		{"below the gap", core.V(0, -30), true},
		{"edge overlap, outside gap", core.V(42.9, 200), true},
		{"just clear horizontally", core.V(43, 200), false},
		{"far left", core.V(-200, 200), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsPipe(tc.bird, pipe, g); got != tc.want {
				t.Errorf("HitsPipe(%+v) = %v, expected %v", tc.bird, got, tc.want)
			}
		})
	}
}

func TestHitsGround(t *testing.T) {
	g := NewGeometry(config.DefaultFlappyConfig())

	if g.FloorY != -132 {
		t.Fatalf("floor = %v, expected -(256 - 112 - 12)", g.FloorY)
	}
	if !HitsGround(core.V(0, -132), g) {
		t.Error("bird exactly on the floor line should collide")
	}
	if !HitsGround(core.V(0, -300), g) {
		t.Error("bird below the floor should collide")
	}
	if HitsGround(core.V(0, -131.9), g) {
		t.Error("bird above the floor should not collide")
	}
}

func TestDetectCollisionsChecksEveryPipe(t *testing.T) {
	g := NewGeometry(config.DefaultFlappyConfig())
	w := World{
		Bird: Bird{Pos: core.V(0, 0)},
		Pipes: []Pipe{
			{Pos: core.V(500, 0)},  // far away
			{Pos: core.V(10, 200)}, // aligned, gap far above
			{Pos: core.V(-10, 0)},  // aligned, bird in the gap
			{Pos: core.V(0, -200)}, // aligned, gap far below
		},
	}

	var ev Events
	if hits := DetectCollisions(&w, g, &ev); hits != 2 {
		t.Fatalf("hits = %d, expected 2", hits)
	}
	items := ev.GameOver.Items()
	if items[0] != (GameOverDetected{Cause: CausePipe, Pipe: 1}) || items[1] != (GameOverDetected{Cause: CausePipe, Pipe: 3}) {
		t.Errorf("events = %+v", items)
	}
}

func TestGroundStrikeIgnoresPipes(t *testing.T) {
	g := NewGeometry(config.DefaultFlappyConfig())
	w := World{
		Bird:  Bird{Pos: core.V(0, -140)},
		Pipes: []Pipe{{Pos: core.V(0, -140)}}, // bird sits in this gap
	}

	var ev Events
	DetectCollisions(&w, g, &ev)

	if ev.GameOver.Len() != 1 || ev.GameOver.Items()[0].Cause != CauseGround {
		t.Errorf("expected exactly one ground hit, got %+v", ev.GameOver.Items())
	}
}
