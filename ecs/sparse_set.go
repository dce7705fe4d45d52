package ecs

// componentStore is the type-erased view the world uses to drop components
// of destroyed entities.
type componentStore interface {
	remove(id entityID) bool
	has(id entityID) bool
	len() int
}

// SparseSet is a cache-friendly storage for components keyed by entity id.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int
}

func (s *SparseSet[T]) has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == id
}

func (s *SparseSet[T]) get(e Entity) (*T, bool) {
	if !s.has(e.id()) {
		return nil, false
	}
	idx := s.sparse[e.id()-1]
	if s.denseEntities[idx] != e {
		return nil, false
	}
	return s.denseValues[idx], true
}

func (s *SparseSet[T]) set(e Entity, v *T) {
	id := e.id()
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		idx := s.sparse[id-1]
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

func (s *SparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues[last] = nil
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *SparseSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
