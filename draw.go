package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/convoy/common"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/sim"
)

// The top-down view frames this ground-plane region (X, Z).
const (
	viewMinX = -60.0
	viewMaxX = 60.0
	viewMinZ = -100.0
	viewMaxZ = 50.0
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	colorGround   = color.NRGBA{R: 0x1c, G: 0x22, B: 0x1c, A: 0xff}
	colorPath     = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	colorLightOn  = color.NRGBA{R: 0xff, G: 0xf0, B: 0x90, A: 0xff}
	colorLightOff = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorBeam     = color.NRGBA{R: 0x00, G: 0xea, B: 0xff, A: 0x90}
	colorCamera   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	actorColors = map[string]color.NRGBA{
		"knight": {R: 0x40, G: 0x90, B: 0xff, A: 0xff},
		"truck":  {R: 0xe0, G: 0x80, B: 0x20, A: 0xff},
		"car":    {R: 0x60, G: 0xd0, B: 0x60, A: 0xff},
		"car1":   {R: 0x30, G: 0xa0, B: 0x90, A: 0xff},
		"drone":  {R: 0xd0, G: 0x60, B: 0xd0, A: 0xff},
	}
	materialColors = map[string]color.NRGBA{
		"stone":   {R: 0x90, G: 0x90, B: 0x88, A: 0xff},
		"office":  {R: 0xc8, G: 0xb0, B: 0x70, A: 0xff},
		"pebbles": {R: 0x70, G: 0x60, B: 0x50, A: 0xff},
	}
)

// projector maps ground-plane coordinates onto the screen.
type projector struct {
	scale, ox, oy float64
}

func newProjector(w, h float64) projector {
	scale := math.Min(w/(viewMaxX-viewMinX), h/(viewMaxZ-viewMinZ))
	return projector{
		scale: scale,
		ox:    (w - (viewMaxX-viewMinX)*scale) / 2,
		oy:    (h - (viewMaxZ-viewMinZ)*scale) / 2,
	}
}

func (p projector) point(v mgl64.Vec3) (float32, float32) {
	x := p.ox + (v.X()-viewMinX)*p.scale
	y := p.oy + (viewMaxZ-v.Z())*p.scale
	return float32(x), float32(y)
}

func (p projector) length(d float64) float32 {
	return float32(d * p.scale)
}

func (g *Game) drawScene(screen *ebiten.Image, v sim.View) {
	screen.Fill(colorGround)
	p := newProjector(g.width, g.height)

	for i := 1; i < len(v.Path); i++ {
		x0, y0 := p.point(v.Path[i-1])
		x1, y1 := p.point(v.Path[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorPath, true)
	}

	for _, pr := range v.Props {
		x, y := p.point(pr.Position)
		s := p.length(5)
		c, ok := materialColors[pr.Material]
		if !ok {
			c = colorLightOff
		}
		switch pr.Shape {
		case "sphere", "dodecahedron":
			vector.DrawFilledCircle(screen, x, y, s, c, true)
		default:
			vector.DrawFilledRect(screen, x-s, y-s, 2*s, 2*s, c, true)
		}
	}

	for _, a := range v.Actors {
		g.drawActor(screen, p, a)
	}

	for _, l := range v.Lights {
		x, y := p.point(l.Position)
		c := colorLightOff
		if l.On {
			c = colorLightOn
		}
		if l.On && l.Kind == component.LightSearch {
			ax, ay := p.point(l.Aim)
			vector.StrokeLine(screen, x, y, ax, ay, 1, colorBeam, true)
		}
		vector.DrawFilledCircle(screen, x, y, 3, c, true)
	}

	cx, cy := p.point(v.Camera.Position)
	tip := v.Camera.Position.Add(common.Forward(v.Camera.Yaw).Mul(6))
	tx, ty := p.point(tip)
	vector.StrokeCircle(screen, cx, cy, 4, 1, colorCamera, true)
	vector.StrokeLine(screen, cx, cy, tx, ty, 1, colorCamera, true)
}

func (g *Game) drawActor(screen *ebiten.Image, p projector, a sim.ActorView) {
	x, y := p.point(a.Position)
	c, ok := actorColors[a.Model]
	if !ok {
		c = colorCamera
	}
	r := p.length(a.Radius)
	vector.StrokeCircle(screen, x, y, r, 1.5, c, true)
	hx, hy := p.point(a.Position.Add(common.Forward(a.Yaw).Mul(a.Radius)))
	vector.StrokeLine(screen, x, y, hx, hy, 2, c, true)
	if a.Position.Y() > 0.5 {
		label := fmt.Sprintf("%s y=%.1f", a.Name, a.Position.Y())
		ebitenutil.DebugPrintAt(screen, label, int(x)+int(r)+2, int(y)-6)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, st sim.State) {
	lines := []string{
		fmt.Sprintf("t=%.2fs  dt=%.3f  fps=%.0f", st.Time, st.Delta, ebiten.ActualFPS()),
		fmt.Sprintf("camera [%d] %s", st.CameraIndex, st.CameraSlot),
		fmt.Sprintf("player %s  grabbed=%v", st.PlayerState, st.Grabbed),
		fmt.Sprintf("followers on trail: %v %v", st.FollowerArrived(1), st.FollowerArrived(2)),
		"W/S move  arrows turn/lift  C camera  G grab  0-5 lights  Q material  Esc pause",
	}
	lines = append(lines, g.feed...)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colorCamera)
	op.LineSpacing = 16
	text.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}
