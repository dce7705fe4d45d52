package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/common"
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/prefabs"
)

// defaultAspect matches a 2:1 viewport until the first resize.
const defaultAspect = 2.0

// NewCameraRig builds one graph node per camera slot and the rig entity that
// holds them. Slots keep spec order.
func NewCameraRig(w *ecs.World, spec *prefabs.SceneSpec, actors map[string]ecs.Entity) (ecs.Entity, error) {
	rig := &component.CameraRig{FreeFlight: -1}
	for i, cs := range spec.Cameras {
		parent, err := resolveNode(w, actors, cs.Attach)
		if err != nil {
			return 0, fmt.Errorf("camera %q: %w", cs.Name, err)
		}
		yaw := mgl64.DegToRad(cs.Yaw)
		if cs.LookAt != nil {
			yaw = common.Bearing(cs.Position, *cs.LookAt)
		}
		_, node, err := newNodeEntity(w, "camera:"+cs.Name, parent, cs.Position, yaw)
		if err != nil {
			return 0, fmt.Errorf("camera %q: %w", cs.Name, err)
		}
		rig.Slots = append(rig.Slots, component.CameraSlot{Name: cs.Name, Node: node, Aspect: defaultAspect})
		if cs.FreeFlight {
			rig.FreeFlight = i
		}
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraRigComponent.Kind(), rig); err != nil {
		return 0, fmt.Errorf("camera rig: add rig: %w", err)
	}
	return e, nil
}
