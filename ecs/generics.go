package ecs

import (
	"fmt"

	"github.com/milk9111/convoy/ecs/component"
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*SparseSet[T])
	}
	if !create {
		return nil
	}
	s := &SparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil || !IsAlive(w, e) {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || !IsAlive(w, e) {
		return nil, false
	}
	return s.get(e)
}

// MustGet panics when the component is missing; for wiring invariants.
func MustGet[T any](w *World, e Entity, kind component.ComponentKind[T]) *T {
	v, ok := Get(w, e, kind)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %s missing component %s", e, kind))
	}
	return v
}

// SetResource stores a world singleton.
func SetResource[T any](w *World, kind component.ComponentKind[T], value *T) {
	if w == nil || !kind.Valid() {
		return
	}
	if value == nil {
		delete(w.resources, kind.ID())
		return
	}
	w.resources[kind.ID()] = value
}

// Resource returns a world singleton.
func Resource[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() {
		return nil, false
	}
	v, ok := w.resources[kind.ID()]
	if !ok {
		return nil, false
	}
	typed, ok := v.(*T)
	return typed, ok
}
