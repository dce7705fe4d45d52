// Package convoy implements the leader path and the follower trail protocol.
package convoy

import (
	"errors"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

const arcLengthDivisions = 200

var ErrShortPath = errors.New("convoy: path needs at least two waypoints")

// Path is a uniform Catmull-Rom curve through ground-plane waypoints (x, z),
// sampled by normalised arc length.
type Path struct {
	points  []mgl64.Vec2
	lengths []float64
}

func NewPath(points []mgl64.Vec2) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrShortPath
	}
	p := &Path{points: append([]mgl64.Vec2(nil), points...)}
	p.lengths = make([]float64, arcLengthDivisions+1)
	prev := p.point(0)
	for i := 1; i <= arcLengthDivisions; i++ {
		cur := p.point(float64(i) / arcLengthDivisions)
		p.lengths[i] = p.lengths[i-1] + cur.Sub(prev).Len()
		prev = cur
	}
	return p, nil
}

// Waypoints returns a copy of the control points.
func (p *Path) Waypoints() []mgl64.Vec2 {
	return append([]mgl64.Vec2(nil), p.points...)
}

// Length is the approximate arc length of the curve.
func (p *Path) Length() float64 {
	return p.lengths[len(p.lengths)-1]
}

func catmullRom(t, p0, p1, p2, p3 float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// point samples the curve by its raw parameter t in [0, 1].
func (p *Path) point(t float64) mgl64.Vec2 {
	n := len(p.points)
	f := float64(n-1) * t
	i := int(math.Floor(f))
	w := f - float64(i)
	if i >= n-1 {
		i = n - 1
		w = 0
	}
	if i < 0 {
		i, w = 0, 0
	}

	i0 := i - 1
	if i == 0 {
		i0 = 0
	}
	i2 := i + 1
	if i2 > n-1 {
		i2 = n - 1
	}
	i3 := i + 2
	if i3 > n-1 {
		i3 = n - 1
	}
	p0, p1, p2, p3 := p.points[i0], p.points[i], p.points[i2], p.points[i3]
	return mgl64.Vec2{
		catmullRom(w, p0.X(), p1.X(), p2.X(), p3.X()),
		catmullRom(w, p0.Y(), p1.Y(), p2.Y(), p3.Y()),
	}
}

// paramAt converts normalised arc length u into the raw curve parameter.
func (p *Path) paramAt(u float64) float64 {
	total := p.Length()
	if total == 0 {
		return u
	}
	target := u * total
	i := sort.SearchFloat64s(p.lengths, target)
	if i == 0 {
		return 0
	}
	if i >= len(p.lengths) {
		return 1
	}
	before := p.lengths[i-1]
	seg := p.lengths[i] - before
	frac := 0.0
	if seg > 0 {
		frac = (target - before) / seg
	}
	return (float64(i-1) + frac) / arcLengthDivisions
}

// PointAt samples the curve at normalised arc length u, clamped to [0, 1].
func (p *Path) PointAt(u float64) mgl64.Vec2 {
	u = math.Max(0, math.Min(1, u))
	return p.point(p.paramAt(u))
}

// LeaderPose returns the leader's ground position at sim time and the yaw
// that faces along the direction of travel.
func (p *Path) LeaderPose(simTime, speedFactor, lookahead float64) (mgl64.Vec3, float64) {
	t := math.Mod(simTime*speedFactor, 1)
	if t < 0 {
		t++
	}
	at := p.PointAt(t)
	ahead := p.PointAt(math.Mod(t+lookahead, 1))
	pos := mgl64.Vec3{at.X(), 0, at.Y()}
	d := ahead.Sub(at)
	if d.X() == 0 && d.Y() == 0 {
		return pos, 0
	}
	return pos, math.Atan2(d.X(), d.Y())
}
