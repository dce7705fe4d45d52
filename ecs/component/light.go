package component

import "github.com/go-gl/mathgl/mgl64"

type LightKind string

const (
	LightStatic LightKind = "static"
	LightSearch LightKind = "search"
	LightMoving LightKind = "moving"
)

// Light is a switchable light. Search lights aim at Track each tick.
type Light struct {
	Button    string
	Kind      LightKind
	On        bool
	Intensity float64
	Track     uint64
	Aim       mgl64.Vec3
}

var LightComponent = NewComponent[Light]()
