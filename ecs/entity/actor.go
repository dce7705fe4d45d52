package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/scene"
)

var (
	graphResource = component.GraphResource
	transformKind = component.TransformComponent.Kind()
)

// newNodeEntity creates an entity bound to a new graph node.
func newNodeEntity(w *ecs.World, name string, parent scene.Handle, pos mgl64.Vec3, yaw float64) (ecs.Entity, scene.Handle, error) {
	graph, ok := ecs.Resource(w, graphResource)
	if !ok {
		return 0, 0, fmt.Errorf("%s: scene graph not installed", name)
	}
	node, err := graph.NewNode(name, parent, pos, yaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: new node: %w", name, err)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, transformKind, &component.Transform{Node: node}); err != nil {
		return 0, 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	return e, node, nil
}

// newActor creates a root-level actor with its proximity circle.
func newActor(w *ecs.World, spec *prefabs.SceneSpec, a prefabs.ActorSpec) (ecs.Entity, error) {
	e, node, err := newNodeEntity(w, a.Name, scene.Root, a.Position, mgl64.DegToRad(a.Yaw))
	if err != nil {
		return 0, err
	}
	radius := spec.Radius(a.Model)
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Name:   a.Name,
		Model:  a.Model,
		Radius: radius,
	}); err != nil {
		return 0, fmt.Errorf("%s: add actor: %w", a.Name, err)
	}

	if pw, ok := ecs.Resource(w, ecs.ProximityWorldResource); ok {
		graph, _ := ecs.Resource(w, graphResource)
		pw.Track(e, graph.WorldPosition(node), radius)
	}
	return e, nil
}
