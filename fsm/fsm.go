// Package fsm provides a small named-state machine. States are behaviour
// bundles keyed by name; the table is fixed at construction.
package fsm

import (
	"errors"
	"fmt"
)

var ErrUnknownState = errors.New("fsm: unknown state")

// State bundles the optional callbacks for one named state.
type State[C any] struct {
	Enter  func(ctx C)
	Update func(ctx C)
	Exit   func(ctx C)
}

// Machine drives exactly one current state over a fixed state table.
type Machine[C any] struct {
	states  map[string]State[C]
	current string
	ctx     C
}

// New builds a machine and enters initial. No Exit runs on construction.
func New[C any](ctx C, states map[string]State[C], initial string) (*Machine[C], error) {
	table := make(map[string]State[C], len(states))
	for name, st := range states {
		table[name] = st
	}
	if _, ok := table[initial]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, initial)
	}
	m := &Machine[C]{states: table, current: initial, ctx: ctx}
	if st := table[initial]; st.Enter != nil {
		st.Enter(ctx)
	}
	return m, nil
}

// Current returns the active state name.
func (m *Machine[C]) Current() string {
	return m.current
}

// Has reports whether name is part of the state table.
func (m *Machine[C]) Has(name string) bool {
	_, ok := m.states[name]
	return ok
}

// Transition exits the current state and enters target. Transitioning into
// the current state re-runs Exit and Enter. An unknown target aborts the
// attempt before any callback runs.
func (m *Machine[C]) Transition(target string) error {
	next, ok := m.states[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, target)
	}
	if prev := m.states[m.current]; prev.Exit != nil {
		prev.Exit(m.ctx)
	}
	m.current = target
	if next.Enter != nil {
		next.Enter(m.ctx)
	}
	return nil
}

// Update runs the active state's Update callback.
func (m *Machine[C]) Update() {
	if st := m.states[m.current]; st.Update != nil {
		st.Update(m.ctx)
	}
}
