package ecs

import (
	"sort"

	"github.com/milk9111/convoy/ecs/component"
)

// ForEach visits every live entity holding a component of kind, in
// ascending entity id order so system iteration is deterministic.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil {
		return
	}
	ents := append([]Entity(nil), s.denseEntities...)
	sort.Slice(ents, func(i, j int) bool { return ents[i].id() < ents[j].id() })
	for _, e := range ents {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

// First returns the lowest-id live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	var found Entity
	ok := false
	ForEach(w, kind, func(e Entity, _ *T) {
		if !ok {
			found, ok = e, true
		}
	})
	return found, ok
}

// Count returns how many entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).len()
}
