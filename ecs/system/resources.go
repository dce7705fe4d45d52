package system

import (
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/scene"
)

// frame gathers the singletons every controller needs. ok is false until the
// session has installed them.
type frame struct {
	clock *component.Clock
	input *input.State
	graph *scene.Graph
}

func frameOf(w *ecs.World) (frame, bool) {
	clock, ok := ecs.Resource(w, component.ClockResource)
	if !ok {
		return frame{}, false
	}
	in, ok := ecs.Resource(w, component.InputResource)
	if !ok {
		return frame{}, false
	}
	graph, ok := ecs.Resource(w, component.GraphResource)
	if !ok {
		return frame{}, false
	}
	return frame{clock: clock, input: in, graph: graph}, true
}

func cameraRig(w *ecs.World) *component.CameraRig {
	e, ok := ecs.First(w, component.CameraRigComponent.Kind())
	if !ok {
		return nil
	}
	rig, _ := ecs.Get(w, e, component.CameraRigComponent.Kind())
	return rig
}

func nodeOf(w *ecs.World, e ecs.Entity) (scene.Handle, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return t.Node, true
}
