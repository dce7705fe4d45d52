package input

import "sort"

// Logical button names shared by the scene systems.
const (
	TurnLeft  = "turn_left"
	TurnRight = "turn_right"
	LiftUp    = "lift_up"
	LiftDown  = "lift_down"
	Forward   = "forward"
	Back      = "back"
	Camera    = "camera"
	Grab      = "grab"
	Material  = "material"
	Pause     = "pause"
)

// LightButton returns the toggle button bound to light slot i.
func LightButton(i int) string {
	return "light" + string(rune('0'+i))
}

// Button is the level and edge state of one logical button.
type Button struct {
	Down        bool
	JustPressed bool
}

// State tracks registered logical buttons. JustPressed is latched on an
// up->down transition and only cleared by EndFrame.
type State struct {
	buttons map[string]*Button
}

// NewState creates a state with the given buttons registered.
func NewState(names ...string) *State {
	s := &State{buttons: make(map[string]*Button, len(names))}
	for _, name := range names {
		s.Register(name)
	}
	return s
}

// Register adds a button. Registering an existing name is a no-op.
func (s *State) Register(name string) {
	if s == nil || name == "" {
		return
	}
	if s.buttons == nil {
		s.buttons = make(map[string]*Button)
	}
	if _, ok := s.buttons[name]; ok {
		return
	}
	s.buttons[name] = &Button{}
}

// SetLevel records a press or release. Unknown names are ignored.
func (s *State) SetLevel(name string, pressed bool) {
	if s == nil {
		return
	}
	b, ok := s.buttons[name]
	if !ok {
		return
	}
	if pressed && !b.Down {
		b.JustPressed = true
	}
	b.Down = pressed
}

// EndFrame clears every edge flag. Call once per frame after all readers.
func (s *State) EndFrame() {
	if s == nil {
		return
	}
	for _, b := range s.buttons {
		b.JustPressed = false
	}
}

func (s *State) Down(name string) bool {
	if s == nil {
		return false
	}
	b, ok := s.buttons[name]
	return ok && b.Down
}

func (s *State) JustPressed(name string) bool {
	if s == nil {
		return false
	}
	b, ok := s.buttons[name]
	return ok && b.JustPressed
}

// CarryLevels copies the held levels of from into s for every button both
// know. No edges are raised, so a key held across a scene rebuild stays held
// without counting as a new press.
func (s *State) CarryLevels(from *State) {
	if s == nil || from == nil {
		return
	}
	for name, b := range s.buttons {
		b.Down = from.Down(name)
	}
}

// Axis folds two opposing buttons into -1, 0 or 1.
func (s *State) Axis(neg, pos string) float64 {
	v := 0.0
	if s.Down(pos) {
		v++
	}
	if s.Down(neg) {
		v--
	}
	return v
}

// Names returns the registered button names in sorted order.
func (s *State) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.buttons))
	for name := range s.buttons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Controls lists the buttons every scene registers, regardless of which
// lights and props it builds.
var Controls = []string{TurnLeft, TurnRight, LiftUp, LiftDown, Forward, Back, Camera, Grab}
