package entity

import (
	"fmt"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/scene"
)

// NewProps builds the shared material palette and the props that use it.
func NewProps(w *ecs.World, spec prefabs.MaterialsSpec) (ecs.Entity, []ecs.Entity, error) {
	palette := ecs.CreateEntity(w)
	if err := ecs.Add(w, palette, component.MaterialCycleComponent.Kind(), &component.MaterialCycle{
		Button:  spec.Button,
		Palette: append([]string(nil), spec.Palette...),
	}); err != nil {
		return 0, nil, fmt.Errorf("materials: add palette: %w", err)
	}

	props := make([]ecs.Entity, 0, len(spec.Props))
	for i, ps := range spec.Props {
		e, _, err := newNodeEntity(w, fmt.Sprintf("prop:%d:%s", i, ps.Shape), scene.Root, ps.Position, 0)
		if err != nil {
			return 0, nil, fmt.Errorf("materials: %w", err)
		}
		if err := ecs.Add(w, e, component.PropComponent.Kind(), &component.Prop{
			Shape:     ps.Shape,
			Materials: palette.Ref(),
		}); err != nil {
			return 0, nil, fmt.Errorf("materials: add prop: %w", err)
		}
		props = append(props, e)
	}
	return palette, props, nil
}
