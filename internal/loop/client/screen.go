package client

import (
	"fmt"
	"strings"

	"github.com/tomz197/unicorns/internal/draw"
	"github.com/tomz197/unicorns/internal/loop"
	"github.com/tomz197/unicorns/internal/object"
)

var hueColors = map[object.Hue]draw.Color{
	object.HueWhite: draw.White,
	object.HueRed:   draw.Red,
	object.HueGreen: draw.Green,
	object.HuePink:  draw.Pink,
	object.HueGold:  draw.Gold,
	object.HueBlue:  draw.Blue,
}

// drawScene paints every entity of the snapshot onto the canvas.
func drawScene(c *draw.Canvas, snap loop.Snapshot) {
	// Ground line under the movement band
	c.DrawLine(draw.Point{X: 0, Y: snap.Height - 16}, draw.Point{X: snap.Width, Y: snap.Height - 16}, draw.Grey)

	for _, pt := range snap.Particles {
		if pt.Life < 0.25 {
			continue
		}
		c.SetFloat(pt.X, pt.Y, hueColors[pt.Hue])
	}

	for _, e := range snap.Enemies {
		drawZombie(c, e)
	}

	for _, r := range snap.Rays {
		c.FillCircle(r.X, r.Y, r.Radius, draw.Blue)
	}
	for _, b := range snap.Bolts {
		c.FillCircle(b.X, b.Y, b.Radius+1, draw.Red)
	}

	if r := snap.Rescuer; r != nil {
		drawRescuer(c, r.X, r.Y)
	}
	drawUnicorn(c, snap.Player)
}

// drawUnicorn draws the player as a body, head, legs and a horn pointing forward.
func drawUnicorn(c *draw.Canvas, p loop.PlayerView) {
	s := p.Size
	body := draw.White
	switch {
	case p.Mega:
		body = draw.Pink
	case p.Ray:
		body = draw.Purple
	}
	if p.Invuln && !p.Dashing {
		body = draw.Grey
	}

	f := p.Facing
	c.FillRect(p.X-s*0.4, p.Y-s*0.15, s*0.8, s*0.35, body)               // body
	c.FillRect(p.X-s*0.35, p.Y+s*0.2, s*0.1, s*0.3, body)                // back leg
	c.FillRect(p.X+s*0.25, p.Y+s*0.2, s*0.1, s*0.3, body)                // front leg
	c.FillRect(p.X+f*s*0.3-s*0.12, p.Y-s*0.45, s*0.24, s*0.3, body)      // head
	c.FillRect(p.X-f*s*0.45-s*0.05, p.Y-s*0.2, s*0.1, s*0.25, draw.Pink) // tail

	hornBase := p.X + f*s*0.38
	c.FillPolygon([]draw.Point{
		{X: hornBase, Y: p.Y - s*0.45},
		{X: hornBase, Y: p.Y - s*0.35},
		{X: hornBase + f*s*0.3, Y: p.Y - s*0.55},
	}, draw.Gold)
}

// drawZombie draws an enemy; specials are red and finals orange with an HP bar.
func drawZombie(c *draw.Canvas, e loop.EnemyView) {
	col := draw.Olive
	switch {
	case e.Final:
		col = draw.Orange
	case e.Kind == object.Special.String():
		col = draw.Red
	}

	c.FillRect(e.X-e.W*0.2, e.Y-e.H*0.5, e.W*0.4, e.H*0.3, draw.Green) // head
	c.FillRect(e.X-e.W*0.3, e.Y-e.H*0.2, e.W*0.6, e.H*0.45, col)       // torso
	c.FillRect(e.X+e.Facing*e.W*0.3-e.W*0.2, e.Y-e.H*0.15, e.W*0.4, e.H*0.1, draw.Green)
	c.FillRect(e.X-e.W*0.25, e.Y+e.H*0.25, e.W*0.15, e.H*0.25, col)
	c.FillRect(e.X+e.W*0.1, e.Y+e.H*0.25, e.W*0.15, e.H*0.25, col)

	if e.Final {
		c.FillRect(e.X-e.W*0.5, e.Y-e.H*0.7, e.W*float64(e.HP)/5, 4, draw.Red)
	}
}

func drawRescuer(c *draw.Canvas, x, y float64) {
	c.FillCircle(x, y-18, 7, draw.Gold)
	c.FillPolygon([]draw.Point{{X: x, Y: y - 12}, {X: x - 12, Y: y + 14}, {X: x + 12, Y: y + 14}}, draw.Pink)
}

// drawHUD draws the status row and phase overlays.
// Fields use fixed widths so the row does not jitter as values change.
func (c *Client) drawHUD(snap loop.Snapshot) {
	cw := c.chunkWriter
	width := c.canvas.TerminalWidth()
	height := c.canvas.TerminalHeight()
	h := snap.HUD

	hp := 0.0
	if h.HPMax > 0 {
		hp = float64(h.HP) / float64(h.HPMax)
	}
	status := fmt.Sprintf("HP %s %3d  %s  Score %-7d",
		draw.Bar(hp, 10), h.HP, strings.Repeat("♥", h.Lives)+strings.Repeat(" ", max(3-h.Lives, 0)), h.Score)
	cw.WriteColorAt(1, 1, draw.White, status)

	var powers string
	switch {
	case h.RayFraction > 0 && h.MegaFraction > 0:
		powers = fmt.Sprintf("RAY %s MEGA %s", draw.Bar(h.RayFraction, 6), draw.Bar(h.MegaFraction, 6))
	case h.RayFraction > 0:
		powers = "RAY " + draw.Bar(h.RayFraction, 6)
	case h.MegaFraction > 0:
		powers = "MEGA " + draw.Bar(h.MegaFraction, 6)
	default:
		powers = "MEGA " + draw.Bar(h.MegaProgress, 6) + "  "
	}
	cw.WriteColorAt(len([]rune(status))+3, 1, draw.Gold, fmt.Sprintf("%-30s", powers))

	timer := "     "
	if snap.Phase == loop.PhasePlay.String() {
		secs := int(h.StageRemaining + 0.999)
		timer = fmt.Sprintf("%2d:%02d", secs/60, secs%60)
	}
	cw.WriteColorAt(max(width-len(timer), 1), 1, draw.White, timer)

	centerRow := 1 + height/2
	if h.Banner != "" {
		cw.WriteCentered(width, centerRow, draw.Gold, h.Banner)
	}
	if h.Dialogue != "" {
		cw.WriteCentered(width, 1+height-2, draw.Pink, "“"+h.Dialogue+"”")
	}
	if h.Paused {
		cw.WriteCentered(width, centerRow+2, draw.White, "PAUSED - press p to resume")
	}
}
