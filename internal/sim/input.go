package sim

import "github.com/vovakirdan/tui-flappy/internal/core"

// InputOracle answers whether an action's key went down during this tick.
// Edge detection is the oracle's job; the mapper keeps no state.
type InputOracle interface {
	JustPressed(a core.Action) bool
}

// MapInput translates the sampled input into at most one FlapRequested and
// one GameStartRequested event.
func MapInput(in InputOracle, ev *Events) {
	if in == nil {
		return
	}
	if in.JustPressed(core.ActionFlap) {
		ev.Flap.Push(FlapRequested{})
	}
	if in.JustPressed(core.ActionStart) {
		ev.Start.Push(GameStartRequested{})
	}
}
