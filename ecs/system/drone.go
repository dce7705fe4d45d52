package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/input"
)

var upAxis = mgl64.Vec3{0, 1, 0}

// DroneSystem flies the drone while its camera slot is active.
type DroneSystem struct{}

func NewDroneSystem() *DroneSystem {
	return &DroneSystem{}
}

func (d *DroneSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok || !cameraRig(w).InFreeFlight() {
		return
	}
	dt := f.clock.Delta
	ecs.ForEach2(w, component.DroneComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, drone *component.Drone, t *component.Transform) {
		_, yaw := f.graph.Local(t.Node)
		f.graph.SetLocalYaw(t.Node, yaw+drone.TurnSpeed*f.input.Axis(input.TurnRight, input.TurnLeft)*dt)
		f.graph.Translate(t.Node, forwardAxis, f.clock.MoveSpeed*f.input.Axis(input.Back, input.Forward)*dt)
		f.graph.Translate(t.Node, upAxis, drone.LiftSpeed*f.input.Axis(input.LiftDown, input.LiftUp)*dt)
	})
}
