package sim

// IntegratePositions advances every moving entity by vel*dt.
func IntegratePositions(w *World, dt float64) {
	w.Bird.Pos = w.Bird.Pos.Add(w.Bird.Vel.Scale(dt))
	for i := range w.Pipes {
		p := &w.Pipes[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	}
	for i := range w.Strips {
		s := &w.Strips[i]
		s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	}
}

// IntegrateVelocities advances every accelerated entity by accel*dt.
// Only the bird is subject to gravity.
func IntegrateVelocities(w *World, dt float64) {
	w.Bird.Vel = w.Bird.Vel.Add(w.Bird.Accel.Scale(dt))
}

// Integrate performs one explicit Euler step: positions with the current
// velocities first, then velocities.
func Integrate(w *World, dt float64) {
	IntegratePositions(w, dt)
	IntegrateVelocities(w, dt)
}
