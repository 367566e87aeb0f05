package frogger

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for rendering
const (
	GrassChar   = '░'
	WaterChar   = '≈'
	WaveChar    = '~'
	LaneChar    = '╌'
	FlowerChar  = '✿'
	VehicleChar = '█'
	LogChar     = '▓'
	FrogChar    = '@'
	ShadowChar  = '·'
)

// Minimum screen size the field can be drawn at.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// jumpArc is the visual hop height in logical units. It never feeds back
// into the simulation.
const jumpArc = 20.0

var laneColors = []core.Color{core.ColorRed, core.ColorBlue, core.ColorYellow, core.ColorMagenta}

// viewport maps logical field coordinates to screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(f Field, dst *core.Screen) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:   float64(dst.Width()) / f.Width,
		sy:   float64(rows) / f.Height,
		cols: dst.Width(),
		rows: rows,
	}
}

func (v viewport) row(y float64) int { return 1 + int(math.Floor(y*v.sy)) }

// span returns the half-open cell range covering [a, a+size), at least one cell wide.
func span(a, size, scale float64) (int, int) {
	start := int(math.Floor(a * scale))
	end := int(math.Ceil((a + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	v := newViewport(g.field, dst)

	g.drawBands(dst, v)
	for _, o := range g.obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawBands paints the static scenery row by row based on the logical y at
// the center of each screen row.
func (g *Game) drawBands(dst *core.Screen, v viewport) {
	f := g.field
	roadLanes := g.cfg.Lanes.Road

	for r := 0; r < v.rows; r++ {
		y := (float64(r) + 0.5) / v.sy
		row := r + 1

		switch {
		case y < f.GoalY:
			dst.DrawHLine(0, row, v.cols, GrassChar, core.ColorBrightGreen)
			for c := 4; c < v.cols; c += 10 {
				dst.SetCell(c, row, FlowerChar, core.ColorPink)
			}
		case y >= f.WaterStart && y < f.WaterEnd:
			for c := 0; c < v.cols; c++ {
				ch := WaterChar
				if (c+r)%5 == 0 {
					ch = WaveChar
				}
				dst.SetCell(c, row, ch, core.ColorBlue)
			}
		case y >= f.RoadStart && y < f.RoadEnd:
			dst.DrawHLine(0, row, v.cols, ' ', core.ColorGray)
			if roadLanes.LaneHeight > 0 {
				// Dashed divider on the first row of every lane after the first
				laneTop := f.RoadStart + math.Floor((y-f.RoadStart)/roadLanes.LaneHeight)*roadLanes.LaneHeight
				if laneTop > f.RoadStart && v.row(laneTop) == row {
					for c := 0; c < v.cols; c += 4 {
						dst.SetCell(c, row, LaneChar, core.ColorGray)
						dst.SetCell(c+1, row, LaneChar, core.ColorGray)
					}
				}
			}
		default:
			dst.DrawHLine(0, row, v.cols, GrassChar, core.ColorGreen)
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	c0, c1 := span(o.X, o.W, v.sx)
	r0, r1 := span(o.Y, o.H, v.sy)
	r0++
	r1++

	switch o.Kind {
	case KindVehicle:
		color := laneColors[o.Lane%len(laneColors)]
		dst.DrawRect(c0, r0, c1-c0, r1-r0, VehicleChar, color)
		// Headlights on the leading edge
		front := c1 - 1
		light := '▶'
		if o.Speed < 0 {
			front = c0
			light = '◀'
		}
		for r := r0; r < r1; r++ {
			dst.SetCell(front, r, light, core.ColorBrightYellow)
		}
	case KindLog:
		dst.DrawRect(c0, r0, c1-c0, r1-r0, LogChar, core.ColorBrown)
		for r := r0; r < r1; r++ {
			dst.SetCell(c0, r, '(', core.ColorBrown)
			dst.SetCell(c1-1, r, ')', core.ColorBrown)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.player
	drawY := p.Y

	if p.Jumping {
		// Shadow on the landing spot
		c0, c1 := span(p.ToX, p.W, v.sx)
		r0, _ := span(p.ToY, p.H, v.sy)
		dst.DrawHLine(c0, r0+1, c1-c0, ShadowChar, core.ColorGray)

		drawY -= math.Sin(p.Progress()*math.Pi) * jumpArc
	}

	c0, c1 := span(p.X, p.W, v.sx)
	r0, r1 := span(drawY, p.H, v.sy)
	dst.DrawRect(c0, r0+1, c1-c0, r1-r0, FrogChar, core.ColorBrightGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hearts := strings.Repeat("♥", g.lives)
	hud := fmt.Sprintf(" Score: %d   Lives: %s   Level: %d ", g.score, hearts, g.level)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColor(1, 0, "FROGGER", core.ColorBrightGreen)
	dst.DrawText(10, 0, hud)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorBrightWhite)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
