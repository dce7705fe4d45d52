package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/input"
)

var forwardAxis = mgl64.Vec3{0, 0, 1}

// PlayerControllerSystem turns and walks the player while the drone does
// not have control, then runs the player's FSM.
type PlayerControllerSystem struct {
	log zerolog.Logger
}

func NewPlayerControllerSystem(log zerolog.Logger) *PlayerControllerSystem {
	return &PlayerControllerSystem{log: log}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok {
		return
	}
	active := !cameraRig(w).InFreeFlight()

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, t *component.Transform) {
		anim, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())
		if anim != nil {
			anim.Paused = !active
		}
		if !active {
			return
		}

		grabbed := false
		if g, ok := ecs.Get(w, e, component.GrabComponent.Kind()); ok {
			grabbed = g.Held
		}

		dt := f.clock.Delta
		_, yaw := f.graph.Local(t.Node)
		f.graph.SetLocalYaw(t.Node, yaw+player.TurnSpeed*f.input.Axis(input.TurnRight, input.TurnLeft)*dt)
		if !grabbed && f.input.Down(input.Forward) {
			f.graph.Translate(t.Node, forwardAxis, f.clock.MoveSpeed*dt)
		}

		machine, ok := ecs.Get(w, e, component.PlayerFSMComponent.Kind())
		if !ok || machine.Machine == nil {
			return
		}
		flags := map[string]bool{
			component.FlagForward: f.input.Down(input.Forward),
			component.FlagGrabbed: grabbed,
		}
		p.step(w, e, machine, flags)
	})
}

func (p *PlayerControllerSystem) step(w *ecs.World, e ecs.Entity, machine *component.PlayerFSM, flags map[string]bool) {
	current := machine.Machine.Current()
	for _, tr := range machine.Transitions {
		if tr.From != current || tr.When == nil {
			continue
		}
		fire, err := tr.When.Eval(flags)
		if err != nil {
			panic("player controller: eval transition: " + err.Error())
		}
		if !fire {
			continue
		}
		if err := machine.Machine.Transition(tr.To); err != nil {
			panic("player controller: transition: " + err.Error())
		}
		p.log.Debug().Str("from", current).Str("to", tr.To).Msg("player state changed")
		w.Events().Push(ecs.Event{Kind: ecs.EventStateChanged, Entity: e, Data: tr.To})
		break
	}
	machine.Machine.Update()
}
