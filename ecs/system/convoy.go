package system

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/convoy"
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
)

// ConvoySystem moves the leader along its path, then each follower in index
// order, so every follower records positions from the current tick.
type ConvoySystem struct {
	log zerolog.Logger
}

func NewConvoySystem(log zerolog.Logger) *ConvoySystem {
	return &ConvoySystem{log: log}
}

type followerRef struct {
	e ecs.Entity
	f *component.Follower
}

func (cs *ConvoySystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}
	pw, _ := ecs.Resource(w, ecs.ProximityWorldResource)

	ecs.ForEach2(w, component.LeaderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, l *component.Leader, t *component.Transform) {
		if l.Path == nil {
			return
		}
		pos, yaw := l.Path.LeaderPose(f.clock.Time, l.SpeedFactor, l.Lookahead)
		f.graph.SetLocal(t.Node, pos, yaw)
		pw.Sync(e, f.graph.WorldPosition(t.Node))
	})

	var followers []followerRef
	ecs.ForEach(w, component.FollowerComponent.Kind(), func(e ecs.Entity, fl *component.Follower) {
		followers = append(followers, followerRef{e: e, f: fl})
	})
	sort.SliceStable(followers, func(i, j int) bool { return followers[i].f.Index < followers[j].f.Index })

	for _, ref := range followers {
		node, ok := nodeOf(w, ref.e)
		if !ok || ref.f.Trail == nil {
			continue
		}
		targetNode, ok := nodeOf(w, ecs.FromRef(ref.f.Target))
		if !ok {
			continue
		}

		ref.f.Trail.Record(f.graph.WorldPosition(targetNode))
		pose := convoy.Pose{Position: f.graph.WorldPosition(node), Yaw: f.graph.WorldYaw(node)}
		next, switched, err := ref.f.Trail.Step(pose, convoy.Params{
			MoveSpeed:    f.clock.MoveSpeed,
			MaxTurnSpeed: ref.f.MaxTurnSpeed,
			Delta:        f.clock.Delta,
		})
		if err != nil {
			panic("convoy system: step follower: " + err.Error())
		}
		f.graph.SetWorldPosition(node, next.Position)
		f.graph.SetLocalYaw(node, next.Yaw)

		if switched {
			cs.log.Info().
				Int("follower", ref.f.Index).
				Int("history", ref.f.Trail.Len()).
				Uint64("tick", f.clock.Tick).
				Msg("follower reached trail")
			w.Events().Push(ecs.Event{Kind: ecs.EventFollowerReady, Entity: ref.e, Data: ref.f.Index})
		}
	}
}
