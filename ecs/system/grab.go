package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/common"
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/scene"
)

// GrabSystem attaches the player to its grab target when they overlap on the
// ground plane, and detaches on the next press regardless of distance.
type GrabSystem struct {
	log zerolog.Logger
}

func NewGrabSystem(log zerolog.Logger) *GrabSystem {
	return &GrabSystem{log: log}
}

func (g *GrabSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok || !f.input.JustPressed(input.Grab) {
		return
	}
	pw, _ := ecs.Resource(w, ecs.ProximityWorldResource)

	ecs.ForEach3(w, component.GrabComponent.Kind(), component.TransformComponent.Kind(), component.ActorComponent.Kind(), func(e ecs.Entity, grab *component.Grab, t *component.Transform, actor *component.Actor) {
		target := ecs.FromRef(grab.Target)
		targetNode, ok := nodeOf(w, target)
		if !ok {
			return
		}

		if grab.Held {
			if err := f.graph.Reparent(t.Node, scene.Root); err != nil {
				panic("grab system: release: " + err.Error())
			}
			grab.Held = false
			g.log.Info().Str("actor", actor.Name).Msg("released")
			w.Events().Push(ecs.Event{Kind: ecs.EventRelease, Entity: e, Data: target})
			return
		}

		if !pw.Tracked(target) {
			return
		}
		pw.Sync(target, f.graph.WorldPosition(targetNode))
		pos := f.graph.WorldPosition(t.Node)
		if !pw.Touching(target, pos, actor.Radius) {
			center, _ := pw.Position(target)
			reach, _ := pw.Radius(target)
			g.log.Debug().
				Str("actor", actor.Name).
				Float64("distance", common.GroundDistance(pos, center)).
				Float64("reach", reach+actor.Radius).
				Msg("grab missed")
			return
		}
		if err := f.graph.Reparent(t.Node, targetNode); err != nil {
			panic("grab system: attach: " + err.Error())
		}
		grab.Held = true
		g.log.Info().Str("actor", actor.Name).Msg("grabbed")
		w.Events().Push(ecs.Event{Kind: ecs.EventGrab, Entity: e, Data: target})
	})
}
