package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
)

// LightSystem toggles lights on their buttons and re-aims search lights.
type LightSystem struct {
	log zerolog.Logger
}

func NewLightSystem(log zerolog.Logger) *LightSystem {
	return &LightSystem{log: log}
}

func (ls *LightSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.LightComponent.Kind(), func(e ecs.Entity, l *component.Light) {
		if f.input.JustPressed(l.Button) {
			l.On = !l.On
			ls.log.Debug().Str("button", l.Button).Bool("on", l.On).Msg("light toggled")
			w.Events().Push(ecs.Event{Kind: ecs.EventLightToggled, Entity: e, Data: l.On})
		}
		if l.Kind != component.LightSearch {
			return
		}
		if node, ok := nodeOf(w, ecs.FromRef(l.Track)); ok {
			l.Aim = f.graph.WorldPosition(node)
		}
	})
}
