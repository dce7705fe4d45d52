package input

// Keymap translates physical key identifiers into logical button names.
type Keymap[K comparable] struct {
	names map[K]string
}

func NewKeymap[K comparable]() *Keymap[K] {
	return &Keymap[K]{names: make(map[K]string)}
}

// Bind maps key to name, replacing any previous binding for key.
func (m *Keymap[K]) Bind(key K, name string) *Keymap[K] {
	m.names[key] = name
	return m
}

// Lookup returns the logical name for key.
func (m *Keymap[K]) Lookup(key K) (string, bool) {
	if m == nil {
		return "", false
	}
	name, ok := m.names[key]
	return name, ok
}

// Apply forwards a raw key event to s. Unmapped keys are dropped.
func (m *Keymap[K]) Apply(s *State, key K, pressed bool) bool {
	name, ok := m.Lookup(key)
	if !ok {
		return false
	}
	s.SetLevel(name, pressed)
	return true
}

// Register makes sure every bound name exists on s.
func (m *Keymap[K]) Register(s *State) {
	if m == nil {
		return
	}
	for _, name := range m.names {
		s.Register(name)
	}
}
