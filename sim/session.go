// Package sim drives one convoy scene: it owns the world, the frame clock and
// the input state, and runs every system once per Step in a fixed order.
package sim

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/ecs/entity"
	"github.com/milk9111/convoy/ecs/system"
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/scene"
)

// MaxDelta caps one frame's delta, in seconds.
const MaxDelta = 1.0 / 20

var ErrNilSpec = errors.New("sim: nil scene spec")

// Session is the single writer of the frame clock.
type Session struct {
	world     *ecs.World
	input     *input.State
	graph     *scene.Graph
	clock     *component.Clock
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	maxDelta  float64
	then      float64
	log       zerolog.Logger
}

// New builds a session for spec.
func New(spec *prefabs.SceneSpec, log zerolog.Logger) (*Session, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	w := ecs.NewWorld()
	sc, err := entity.BuildScene(w, spec)
	if err != nil {
		return nil, err
	}
	graph, _ := ecs.Resource(w, component.GraphResource)

	in := input.NewState(input.Controls...)
	for _, name := range sc.Buttons {
		in.Register(name)
	}
	clock := &component.Clock{MoveSpeed: spec.MoveSpeed}
	ecs.SetResource(w, component.InputResource, in)
	ecs.SetResource(w, component.ClockResource, clock)

	maxDelta := spec.MaxDelta
	if maxDelta <= 0 {
		maxDelta = MaxDelta
	}

	scheduler := ecs.NewScheduler(
		ecs.Stage{Name: "camera", System: system.NewCameraSystem(log)},
		ecs.Stage{Name: "convoy", System: system.NewConvoySystem(log)},
		ecs.Stage{Name: "player", System: system.NewPlayerControllerSystem(log)},
		ecs.Stage{Name: "drone", System: system.NewDroneSystem()},
		ecs.Stage{Name: "grab", System: system.NewGrabSystem(log)},
		ecs.Stage{Name: "lights", System: system.NewLightSystem(log)},
		ecs.Stage{Name: "materials", System: system.NewMaterialSystem(log)},
		ecs.Stage{Name: "animation", System: system.NewAnimationSystem()},
	)

	s := &Session{
		world:     w,
		input:     in,
		graph:     graph,
		clock:     clock,
		scheduler: scheduler,
		scene:     sc,
		maxDelta:  maxDelta,
		log:       log,
	}
	log.Info().
		Int("entities", len(ecs.Entities(w))).
		Int("buttons", len(in.Names())).
		Strs("stages", scheduler.Names()).
		Msg("scene built")
	return s, nil
}

// Step advances the scene to now, in seconds, and returns the events the
// systems raised this frame. Time going backwards yields a zero delta and
// leaves the clock where it was.
func (s *Session) Step(now float64) []ecs.Event {
	if now >= s.then {
		s.clock.Delta = math.Min(now-s.then, s.maxDelta)
		s.clock.Time = now
		s.then = now
	} else {
		s.clock.Delta = 0
	}

	s.scheduler.Update(s.world)
	s.clock.Tick++

	events := s.world.Events().Drain()
	for _, evt := range events {
		s.log.Debug().
			Str("event", string(evt.Kind)).
			Stringer("entity", evt.Entity).
			Interface("data", evt.Data).
			Msg("scene event")
	}
	s.input.EndFrame()
	return events
}

// Resize updates every camera's aspect ratio.
func (s *Session) Resize(width, height float64) {
	if rig, ok := ecs.Get(s.world, s.scene.Rig, component.CameraRigComponent.Kind()); ok {
		rig.Resize(width, height)
	}
}

func (s *Session) Input() *input.State {
	return s.input
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Graph() *scene.Graph {
	return s.graph
}

func (s *Session) Scene() *entity.Scene {
	return s.scene
}

// State is a read-only snapshot of the global simulation flags.
type State struct {
	Time        float64
	Delta       float64
	MoveSpeed   float64
	Tick        uint64
	Grabbed     bool
	Arrived     []bool
	CameraIndex int
	CameraSlot  string
	PlayerState string
}

// FollowerArrived reports whether follower i (1-based) has reached its trail.
func (st State) FollowerArrived(i int) bool {
	return i >= 1 && i <= len(st.Arrived) && st.Arrived[i-1]
}

func (s *Session) State() State {
	st := State{
		Time:      s.clock.Time,
		Delta:     s.clock.Delta,
		MoveSpeed: s.clock.MoveSpeed,
		Tick:      s.clock.Tick,
	}
	if g, ok := ecs.Get(s.world, s.scene.Player, component.GrabComponent.Kind()); ok {
		st.Grabbed = g.Held
	}
	if m, ok := ecs.Get(s.world, s.scene.Player, component.PlayerFSMComponent.Kind()); ok && m.Machine != nil {
		st.PlayerState = m.Machine.Current()
	}
	for _, e := range s.scene.Followers {
		f, ok := ecs.Get(s.world, e, component.FollowerComponent.Kind())
		st.Arrived = append(st.Arrived, ok && f.Trail != nil && f.Trail.Arrived())
	}
	if rig, ok := ecs.Get(s.world, s.scene.Rig, component.CameraRigComponent.Kind()); ok {
		st.CameraIndex = rig.Active
		if slot, ok := rig.ActiveSlot(); ok {
			st.CameraSlot = slot.Name
		}
	}
	return st
}
