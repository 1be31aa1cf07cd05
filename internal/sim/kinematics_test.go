package sim

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestIntegrateConstantAcceleration(t *testing.T) {
	p0 := core.V(3, 56)
	v0 := core.V(-100, 256)
	a := core.V(0, -1024)
	dt := 1.0 / 64

	for _, n := range []int{1, 10, 64, 200} {
		var w World
		w.Bird = Bird{Pos: p0, Vel: v0, Accel: a}
		for i := 0; i < n; i++ {
			Integrate(&w, dt)
		}

		// Position first, then velocity: p_n = p0 + v0*n*dt + a*dt^2*n(n-1)/2
		nf := float64(n)
		wantY := p0.Y + v0.Y*nf*dt + a.Y*dt*dt*nf*(nf-1)/2
		wantX := p0.X + v0.X*nf*dt
		if !approx(w.Bird.Pos.Y, wantY, 1e-9) || !approx(w.Bird.Pos.X, wantX, 1e-9) {
			t.Errorf("n=%d: position = %+v, expected (%v, %v)", n, w.Bird.Pos, wantX, wantY)
		}

		// The step converges on p0 + v0*T + a*T^2/2; the error is bounded by |a|*T*dt/2
		T := nf * dt
		continuous := p0.Y + v0.Y*T + 0.5*a.Y*T*T
		if !approx(w.Bird.Pos.Y, continuous, 1024*T*dt/2+1e-9) {
			t.Errorf("n=%d: y = %v strays too far from %v", n, w.Bird.Pos.Y, continuous)
		}

		if wantV := v0.Y + a.Y*T; !approx(w.Bird.Vel.Y, wantV, 1e-9) {
			t.Errorf("n=%d: velocity = %v, expected %v", n, w.Bird.Vel.Y, wantV)
		}
	}
}

func TestIntegrateUsesVelocityBeforeAcceleration(t *testing.T) {
	var w World
	w.Bird = Bird{Vel: core.V(0, 10), Accel: core.V(0, -64)}

	Integrate(&w, 0.5)

	if w.Bird.Pos.Y != 5 {
		t.Errorf("position should use the pre-step velocity, got %v", w.Bird.Pos.Y)
	}
	if w.Bird.Vel.Y != -22 {
		t.Errorf("velocity = %v, expected -22", w.Bird.Vel.Y)
	}
}

func TestIntegrateMovesPipesAndStrips(t *testing.T) {
	w := World{
		Pipes: []Pipe{{Pos: core.V(100, 0), Vel: core.V(-100, 0)}},
	}
	w.Strips[StripBackground].Vel = core.V(-20, 0)
	w.Strips[StripGround].Vel = core.V(-100, 0)

	Integrate(&w, 0.25)

	if w.Pipes[0].Pos.X != 75 {
		t.Errorf("pipe x = %v, expected 75", w.Pipes[0].Pos.X)
	}
	if w.Strips[StripBackground].Pos.X != -5 || w.Strips[StripGround].Pos.X != -25 {
		t.Errorf("strips = %+v", w.Strips)
	}
	if w.Pipes[0].Vel.X != -100 {
		t.Error("entities without acceleration must keep their velocity")
	}
}
