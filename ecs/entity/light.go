package entity

import (
	"fmt"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/prefabs"
)

// NewLight builds a light. Moving lights hang off their attached actor; the
// rest sit at the root.
func NewLight(w *ecs.World, spec prefabs.LightSpec, actors map[string]ecs.Entity) (ecs.Entity, error) {
	parent, err := resolveNode(w, actors, spec.Attach)
	if err != nil {
		return 0, fmt.Errorf("light %s: %w", spec.Button, err)
	}
	e, _, err := newNodeEntity(w, "light:"+spec.Button, parent, spec.Position, 0)
	if err != nil {
		return 0, fmt.Errorf("light %s: %w", spec.Button, err)
	}

	light := &component.Light{
		Button:    spec.Button,
		Kind:      component.LightKind(spec.Kind),
		On:        !spec.Off,
		Intensity: spec.Intensity,
	}
	if spec.Track != "" {
		tracked, ok := actors[spec.Track]
		if !ok {
			return 0, fmt.Errorf("light %s: %w: %q", spec.Button, ErrUnknownActor, spec.Track)
		}
		light.Track = tracked.Ref()
		if graph, ok := ecs.Resource(w, graphResource); ok {
			if t, ok := ecs.Get(w, tracked, transformKind); ok {
				light.Aim = graph.WorldPosition(t.Node)
			}
		}
	}
	if err := ecs.Add(w, e, component.LightComponent.Kind(), light); err != nil {
		return 0, fmt.Errorf("light %s: add light: %w", spec.Button, err)
	}
	return e, nil
}
