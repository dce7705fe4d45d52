package entity

import (
	"fmt"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/fsm"
	"github.com/milk9111/convoy/prefabs"
)

// NewPlayer builds the player actor. Its grab target is the convoy leader.
func NewPlayer(w *ecs.World, spec *prefabs.SceneSpec, leader ecs.Entity) (ecs.Entity, error) {
	ps := spec.Player
	player, err := newActor(w, spec, ps.ActorSpec)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{TurnSpeed: ps.TurnSpeed}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.GrabComponent.Kind(), &component.Grab{Target: leader.Ref()}); err != nil {
		return 0, fmt.Errorf("player: add grab: %w", err)
	}

	anim := component.NewAnimator(spec.Models[ps.Model].Clips)
	if err := ecs.Add(w, player, component.AnimatorComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("player: add animator: %w", err)
	}

	machine, err := NewPlayerFSM(ps.FSM, anim)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerFSMComponent.Kind(), machine); err != nil {
		return 0, fmt.Errorf("player: add fsm: %w", err)
	}
	return player, nil
}

// NewPlayerFSM builds the player's state machine from its spec. Each state's
// enter switches the animator to that state's clip.
func NewPlayerFSM(spec prefabs.FSMSpec, anim *component.Animator) (*component.PlayerFSM, error) {
	states := make(map[string]fsm.State[*component.Animator], len(spec.States))
	for name, st := range spec.States {
		if _, ok := anim.Clips[st.Animation]; !ok {
			return nil, fmt.Errorf("fsm state %q: unknown animation %q", name, st.Animation)
		}
		clip := st.Animation
		states[name] = fsm.State[*component.Animator]{
			Enter: func(a *component.Animator) { a.SetAnimation(clip) },
		}
	}

	transitions := make([]component.PlayerTransition, 0, len(spec.Transitions))
	for _, tr := range spec.Transitions {
		cond, err := fsm.CompileCondition(tr.When, component.PlayerFlags...)
		if err != nil {
			return nil, fmt.Errorf("fsm transition %s->%s: %w", tr.From, tr.To, err)
		}
		transitions = append(transitions, component.PlayerTransition{From: tr.From, To: tr.To, When: cond})
	}

	machine, err := fsm.New(anim, states, spec.Initial)
	if err != nil {
		return nil, fmt.Errorf("fsm: %w", err)
	}
	return &component.PlayerFSM{Machine: machine, Transitions: transitions}, nil
}

// NewDrone builds the free-flight drone.
func NewDrone(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, error) {
	ds := spec.Drone
	drone, err := newActor(w, spec, ds.ActorSpec)
	if err != nil {
		return 0, fmt.Errorf("drone: %w", err)
	}
	if err := ecs.Add(w, drone, component.DroneTagComponent.Kind(), &component.DroneTag{}); err != nil {
		return 0, fmt.Errorf("drone: add drone tag: %w", err)
	}
	if err := ecs.Add(w, drone, component.DroneComponent.Kind(), &component.Drone{
		TurnSpeed: ds.TurnSpeed,
		LiftSpeed: ds.LiftSpeed,
	}); err != nil {
		return 0, fmt.Errorf("drone: add drone: %w", err)
	}
	return drone, nil
}
