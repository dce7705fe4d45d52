package prefabs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// SceneFile is the default scene spec name.
const SceneFile = "scene.yaml"

var ErrInvalidScene = errors.New("prefabs: invalid scene")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ModelSpec struct {
	Size  float64            `yaml:"size"`
	Clips map[string]float64 `yaml:"clips"`
}

type ActorSpec struct {
	Name     string     `yaml:"name"`
	Model    string     `yaml:"model"`
	Position mgl64.Vec3 `yaml:"position"`
	Yaw      float64    `yaml:"yaw"`
}

type FSMStateSpec struct {
	Animation string `yaml:"animation"`
}

type FSMTransitionSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	When string `yaml:"when"`
}

type FSMSpec struct {
	Initial     string                  `yaml:"initial"`
	States      map[string]FSMStateSpec `yaml:"states"`
	Transitions []FSMTransitionSpec     `yaml:"transitions"`
}

type PlayerSpec struct {
	ActorSpec `yaml:",inline"`
	TurnSpeed float64 `yaml:"turn_speed"`
	FSM       FSMSpec `yaml:"fsm"`
}

type DroneSpec struct {
	ActorSpec `yaml:",inline"`
	TurnSpeed float64 `yaml:"turn_speed"`
	LiftSpeed float64 `yaml:"lift_speed"`
}

type ConvoySpec struct {
	SpeedFactor  float64      `yaml:"speed_factor"`
	Lookahead    float64      `yaml:"lookahead"`
	MaxTurnSpeed float64      `yaml:"max_turn_speed"`
	HistoryCap   int          `yaml:"history_cap"`
	Leader       ActorSpec    `yaml:"leader"`
	Followers    []ActorSpec  `yaml:"followers"`
	Path         []mgl64.Vec2 `yaml:"path"`
}

type CameraSpec struct {
	Name       string      `yaml:"name"`
	Attach     string      `yaml:"attach"`
	Position   mgl64.Vec3  `yaml:"position"`
	Yaw        float64     `yaml:"yaw"`
	LookAt     *mgl64.Vec3 `yaml:"look_at"`
	FreeFlight bool        `yaml:"free_flight"`
}

type LightSpec struct {
	Button    string     `yaml:"button"`
	Kind      string     `yaml:"kind"`
	Attach    string     `yaml:"attach"`
	Position  mgl64.Vec3 `yaml:"position"`
	Intensity float64    `yaml:"intensity"`
	Track     string     `yaml:"track"`
	Off       bool       `yaml:"off"`
}

type PropSpec struct {
	Shape    string     `yaml:"shape"`
	Position mgl64.Vec3 `yaml:"position"`
}

type MaterialsSpec struct {
	Button  string     `yaml:"button"`
	Palette []string   `yaml:"palette"`
	Props   []PropSpec `yaml:"props"`
}

// SceneSpec describes every actor, camera, light and prop in a scene.
type SceneSpec struct {
	MoveSpeed float64              `yaml:"move_speed"`
	MaxDelta  float64              `yaml:"max_delta"`
	Models    map[string]ModelSpec `yaml:"models"`
	Player    PlayerSpec           `yaml:"player"`
	Drone     DroneSpec            `yaml:"drone"`
	Convoy    ConvoySpec           `yaml:"convoy"`
	Cameras   []CameraSpec         `yaml:"cameras"`
	Lights    []LightSpec          `yaml:"lights"`
	Materials MaterialsSpec        `yaml:"materials"`
}

// LoadSceneSpec loads and validates a scene spec by name.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// ParseSceneSpec decodes and validates a scene spec from raw YAML.
func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Radius returns half the size of the named model.
func (s *SceneSpec) Radius(model string) float64 {
	return s.Models[model].Size / 2
}

// ActorNames lists every name a camera, light or track may refer to.
func (s *SceneSpec) ActorNames() []string {
	names := []string{s.Player.Name, s.Drone.Name, s.Convoy.Leader.Name}
	for _, f := range s.Convoy.Followers {
		names = append(names, f.Name)
	}
	return names
}

// Validate reports every problem in the scene, joined.
func (s *SceneSpec) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...))
	}

	if s.MoveSpeed <= 0 {
		bad("move_speed must be positive")
	}
	if s.MaxDelta <= 0 {
		bad("max_delta must be positive")
	}

	actors := make(map[string]bool)
	checkActor := func(role string, a ActorSpec) {
		if a.Name == "" {
			bad("%s has no name", role)
		} else if actors[a.Name] {
			bad("duplicate actor name %q", a.Name)
		}
		actors[a.Name] = true
		if _, ok := s.Models[a.Model]; !ok {
			bad("%s %q uses unknown model %q", role, a.Name, a.Model)
		}
	}
	checkActor("player", s.Player.ActorSpec)
	checkActor("drone", s.Drone.ActorSpec)
	checkActor("leader", s.Convoy.Leader)
	for _, f := range s.Convoy.Followers {
		checkActor("follower", f)
	}

	fsmSpec := s.Player.FSM
	if _, ok := fsmSpec.States[fsmSpec.Initial]; !ok {
		bad("player fsm initial state %q not defined", fsmSpec.Initial)
	}
	clips := s.Models[s.Player.Model].Clips
	for name, st := range fsmSpec.States {
		if _, ok := clips[st.Animation]; !ok {
			bad("player fsm state %q uses unknown animation %q", name, st.Animation)
		}
	}
	for _, tr := range fsmSpec.Transitions {
		if _, ok := fsmSpec.States[tr.From]; !ok {
			bad("player fsm transition from unknown state %q", tr.From)
		}
		if _, ok := fsmSpec.States[tr.To]; !ok {
			bad("player fsm transition to unknown state %q", tr.To)
		}
		if tr.When == "" {
			bad("player fsm transition %s->%s has no condition", tr.From, tr.To)
		}
	}

	if len(s.Convoy.Path) < 2 {
		bad("convoy path needs at least two waypoints")
	}
	if s.Convoy.HistoryCap < 0 {
		bad("convoy history_cap must not be negative")
	}

	if len(s.Cameras) == 0 {
		bad("at least one camera is required")
	}
	cams := make(map[string]bool)
	free := 0
	for _, c := range s.Cameras {
		if cams[c.Name] {
			bad("duplicate camera %q", c.Name)
		}
		cams[c.Name] = true
		if c.Attach != "" && !actors[c.Attach] {
			bad("camera %q attached to unknown actor %q", c.Name, c.Attach)
		}
		if c.FreeFlight {
			free++
			if c.Attach != s.Drone.Name {
				bad("free flight camera %q must attach to the drone", c.Name)
			}
		}
	}
	if free > 1 {
		bad("at most one free flight camera")
	}

	buttons := make(map[string]bool)
	for _, l := range s.Lights {
		if l.Button == "" {
			bad("light without a button")
		} else if buttons[l.Button] {
			bad("light button %q bound twice", l.Button)
		}
		buttons[l.Button] = true
		switch l.Kind {
		case "static":
		case "search":
			if !actors[l.Track] {
				bad("search light %q tracks unknown actor %q", l.Button, l.Track)
			}
		case "moving":
			if !actors[l.Attach] {
				bad("moving light %q attached to unknown actor %q", l.Button, l.Attach)
			}
		default:
			bad("light %q has unknown kind %q", l.Button, l.Kind)
		}
	}

	if len(s.Materials.Props) > 0 {
		if len(s.Materials.Palette) == 0 {
			bad("materials palette is empty")
		}
		if s.Materials.Button == "" {
			bad("materials button is empty")
		}
	}

	return errors.Join(errs...)
}
