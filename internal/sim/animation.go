package sim

// Animation cycles a sprite frame index on a fixed period.
// Purely cosmetic: nothing in the simulation reads it.
type Animation struct {
	First   int
	Count   int
	Index   int
	Period  float64 // seconds per frame
	elapsed float64
}

// NewAnimation creates an animation showing frames [first, first+count).
func NewAnimation(first, count int, period float64) Animation {
	return Animation{First: first, Count: count, Index: first, Period: period}
}

// Advance moves the animation forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	if a.Count <= 0 || a.Period <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.Period {
		a.elapsed -= a.Period
		a.Index = (a.Index+1-a.First)%a.Count + a.First
	}
}
