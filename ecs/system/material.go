package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
)

// MaterialSystem advances shared material palettes on their buttons.
type MaterialSystem struct {
	log zerolog.Logger
}

func NewMaterialSystem(log zerolog.Logger) *MaterialSystem {
	return &MaterialSystem{log: log}
}

func (ms *MaterialSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.MaterialCycleComponent.Kind(), func(e ecs.Entity, m *component.MaterialCycle) {
		if len(m.Palette) == 0 || !f.input.JustPressed(m.Button) {
			return
		}
		m.Index = (m.Index + 1) % len(m.Palette)
		ms.log.Debug().Str("material", m.Palette[m.Index]).Msg("material cycled")
		w.Events().Push(ecs.Event{Kind: ecs.EventMaterialCycle, Entity: e, Data: m.Index})
	})
}
