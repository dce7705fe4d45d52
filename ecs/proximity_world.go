package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/convoy/ecs/component"
)

// ProximityWorld keeps a chipmunk space of circles on the ground plane, one
// kinematic body per tracked entity. Scene Y maps to nothing; X and Z map to
// the space's X and Y axes.
type ProximityWorld struct {
	space  *cp.Space
	bodies map[Entity]*cp.Body
	shapes map[Entity]*cp.Shape
	radius map[Entity]float64
}

// NewProximityWorld creates an empty proximity world.
func NewProximityWorld() *ProximityWorld {
	return &ProximityWorld{
		space:  cp.NewSpace(),
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity]*cp.Shape),
		radius: make(map[Entity]float64),
	}
}

// Track registers e as a circle of radius r at pos. Tracking an entity twice
// replaces its shape.
func (pw *ProximityWorld) Track(e Entity, pos mgl64.Vec3, r float64) {
	if pw == nil || !e.Valid() {
		return
	}
	pw.Untrack(e)

	body := cp.NewKinematicBody()
	pw.space.AddBody(body)
	shape := cp.NewCircle(body, r, cp.Vector{})
	shape.SetSensor(true)
	pw.space.AddShape(shape)

	pw.bodies[e] = body
	pw.shapes[e] = shape
	pw.radius[e] = r
	pw.Sync(e, pos)
}

// Untrack removes e from the space.
func (pw *ProximityWorld) Untrack(e Entity) {
	if pw == nil {
		return
	}
	if shape, ok := pw.shapes[e]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, e)
	}
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
	delete(pw.radius, e)
}

// Tracked reports whether e has a shape.
func (pw *ProximityWorld) Tracked(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[e]
	return ok
}

// Sync moves e's body to the ground projection of pos.
func (pw *ProximityWorld) Sync(e Entity, pos mgl64.Vec3) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	body.SetPosition(groundVector(pos))
	// Point queries read the shape's cached center, which SetPosition leaves stale.
	pw.shapes[e].CacheBB()
}

// Position returns e's tracked ground position as a scene vector with Y = 0.
func (pw *ProximityWorld) Position(e Entity) (mgl64.Vec3, bool) {
	if pw == nil {
		return mgl64.Vec3{}, false
	}
	body, ok := pw.bodies[e]
	if !ok {
		return mgl64.Vec3{}, false
	}
	p := body.Position()
	return mgl64.Vec3{p.X, 0, p.Y}, true
}

// Radius returns e's tracked radius.
func (pw *ProximityWorld) Radius(e Entity) (float64, bool) {
	if pw == nil {
		return 0, false
	}
	r, ok := pw.radius[e]
	return r, ok
}

// Touching reports whether a circle of radius r at point overlaps the
// target's circle. Vertical offset is ignored and contact at exactly the
// sum of radii does not count.
func (pw *ProximityWorld) Touching(target Entity, point mgl64.Vec3, r float64) bool {
	if pw == nil {
		return false
	}
	shape, ok := pw.shapes[target]
	if !ok {
		return false
	}
	info := shape.PointQuery(groundVector(point))
	return info.Distance < r
}

func groundVector(p mgl64.Vec3) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Z()}
}

var ProximityWorldResource = component.NewComponentKind[ProximityWorld]()
