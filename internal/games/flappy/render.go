package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '▓'
	GroundAlt     = '░'
	CloudChar     = '·'
)

// wingFrames is indexed by the bird's animation frame.
var wingFrames = [...]rune{'^', '-', 'v'}

// clouds are background decorations in world units, relative to the
// background strip. The pattern tiles every background width.
var clouds = []core.Vec2{
	{X: -120, Y: 200}, {X: -60, Y: 150}, {X: 10, Y: 220},
	{X: 70, Y: 120}, {X: 130, Y: 180},
}

// viewport maps world coordinates (origin at the centre, +Y up) to
// screen cells (origin at the top left, +row down).
type viewport struct {
	w, h   int
	sx, sy float64
	halfW  float64
	halfH  float64
}

func newViewport(dst *core.Screen, g sim.Geometry) viewport {
	return viewport{
		w:     dst.Width(),
		h:     dst.Height(),
		sx:    float64(dst.Width()) / g.Width,
		sy:    float64(dst.Height()) / g.Height,
		halfW: g.Width / 2,
		halfH: g.Height / 2,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.halfW) * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((v.halfH - y) * v.sy))
}

// worldX returns the world x at the centre of column c.
func (v viewport) worldX(c int) float64 {
	return (float64(c)+0.5)/v.sx - v.halfW
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	dst.Clear()

	w := g.sim.World()
	geom := g.sim.Geometry()
	v := newViewport(dst, geom)

	drawBackground(dst, v, w.Strips[sim.StripBackground])
	for _, p := range w.Pipes {
		drawPipe(dst, v, geom, p)
	}
	drawGround(dst, v, geom, w.Strips[sim.StripGround])
	drawBird(dst, v, geom, w.Bird)

	if g.sim.State() == sim.StateMenu {
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press SPACE to start")
	}
}

func drawBackground(dst *core.Screen, v viewport, bg sim.Strip) {
	for _, c := range clouds {
		for _, shift := range []float64{-2 * v.halfW, 0, 2 * v.halfW} {
			x := v.col(c.X + bg.Pos.X + shift)
			if x >= 0 && x < v.w {
				dst.SetColored(x, v.row(c.Y), CloudChar, core.ColorGray)
			}
		}
	}
}

// drawPipe renders a pipe pair: the upper section from the top of the
// screen down to the gap, the lower section from the gap to the ground.
func drawPipe(dst *core.Screen, v viewport, geom sim.Geometry, p sim.Pipe) {
	left := v.col(p.Pos.X - geom.Pipe.X/2)
	right := max(v.col(p.Pos.X+geom.Pipe.X/2), left+1)
	if right <= 0 || left >= v.w {
		return
	}

	gapTop := v.row(p.Pos.Y + geom.Gap/2)
	gapBottom := v.row(p.Pos.Y - geom.Gap/2)
	groundTop := v.row(-v.halfH + geom.Ground)

	for x := left; x < right; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := gapBottom + 1; y < groundTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapBottom+1 < groundTop {
			dst.SetColored(x, gapBottom+1, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawGround renders the ground strip. The fill pattern follows the strip's
// x so the ground visibly scrolls and wraps.
func drawGround(dst *core.Screen, v viewport, geom sim.Geometry, ground sim.Strip) {
	top := core.Clamp(v.row(-v.halfH+geom.Ground), 0, v.h-1)
	const stripe = 12.0
	for x := 0; x < v.w; x++ {
		dst.SetColored(x, top, GroundChar, core.ColorBrightYellow)
		fill := GroundFill
		if int(math.Floor((v.worldX(x)-ground.Pos.X)/stripe))%2 != 0 {
			fill = GroundAlt
		}
		for y := top + 1; y < v.h; y++ {
			dst.SetColored(x, y, fill, core.ColorOrange)
		}
	}
}

func drawBird(dst *core.Screen, v viewport, geom sim.Geometry, b sim.Bird) {
	box := geom.BirdBox(b.Pos)
	left, top := v.col(box.Left()), v.row(box.Top())
	right := max(v.col(box.Right()), left+1)
	bottom := max(v.row(box.Bottom()), top+1)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetColored(x, y, BirdChar, core.ColorYellow)
		}
	}
	wing := wingFrames[b.Anim.Index%len(wingFrames)]
	dst.SetColored(left, (top+bottom-1)/2, wing, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
