package sim

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// seqRand replays a fixed sequence of draws, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestSim(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	s, err := New(config.DefaultFlappyConfig(), append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
