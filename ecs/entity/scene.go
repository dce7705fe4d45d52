package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/scene"
)

var ErrUnknownActor = errors.New("entity: unknown actor")

// Scene indexes the entities built for one scene spec.
type Scene struct {
	Player    ecs.Entity
	Drone     ecs.Entity
	Leader    ecs.Entity
	Followers []ecs.Entity
	Rig       ecs.Entity
	Lights    []ecs.Entity
	Materials ecs.Entity
	Props     []ecs.Entity
	// Buttons lists input names bound by lights and materials.
	Buttons []string

	actors map[string]ecs.Entity
}

// Actor looks up an actor entity by its spec name.
func (s *Scene) Actor(name string) (ecs.Entity, bool) {
	e, ok := s.actors[name]
	return e, ok
}

// BuildScene installs a fresh scene graph and proximity world in w and builds
// every entity the scene spec describes.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		return nil, errors.New("entity: nil scene spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	graph := scene.NewGraph()
	ecs.SetResource(w, graphResource, graph)
	ecs.SetResource(w, ecs.ProximityWorldResource, ecs.NewProximityWorld())

	s := &Scene{actors: make(map[string]ecs.Entity)}
	var err error

	if s.Leader, s.Followers, err = NewConvoy(w, spec); err != nil {
		return nil, err
	}
	s.actors[spec.Convoy.Leader.Name] = s.Leader
	for i, f := range spec.Convoy.Followers {
		s.actors[f.Name] = s.Followers[i]
	}

	if s.Player, err = NewPlayer(w, spec, s.Leader); err != nil {
		return nil, err
	}
	s.actors[spec.Player.Name] = s.Player

	if s.Drone, err = NewDrone(w, spec); err != nil {
		return nil, err
	}
	s.actors[spec.Drone.Name] = s.Drone

	if s.Rig, err = NewCameraRig(w, spec, s.actors); err != nil {
		return nil, err
	}

	for _, ls := range spec.Lights {
		light, err := NewLight(w, ls, s.actors)
		if err != nil {
			return nil, err
		}
		s.Lights = append(s.Lights, light)
		s.Buttons = append(s.Buttons, ls.Button)
	}

	if len(spec.Materials.Props) > 0 {
		if s.Materials, s.Props, err = NewProps(w, spec.Materials); err != nil {
			return nil, err
		}
		s.Buttons = append(s.Buttons, spec.Materials.Button)
	}

	return s, nil
}

func resolveNode(w *ecs.World, actors map[string]ecs.Entity, name string) (scene.Handle, error) {
	if name == "" {
		return scene.Root, nil
	}
	e, ok := actors[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActor, name)
	}
	t, ok := ecs.Get(w, e, transformKind)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no transform", ErrUnknownActor, name)
	}
	return t.Node, nil
}
