package entity

import (
	"fmt"

	"github.com/milk9111/convoy/convoy"
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
	"github.com/milk9111/convoy/prefabs"
)

// NewConvoy builds the leader and its followers. Follower i chases follower
// i-1, the first chases the leader.
func NewConvoy(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, []ecs.Entity, error) {
	cs := spec.Convoy
	path, err := convoy.NewPath(cs.Path)
	if err != nil {
		return 0, nil, fmt.Errorf("convoy: %w", err)
	}

	leader, err := newActor(w, spec, cs.Leader)
	if err != nil {
		return 0, nil, fmt.Errorf("convoy leader: %w", err)
	}
	if err := ecs.Add(w, leader, component.LeaderTagComponent.Kind(), &component.LeaderTag{}); err != nil {
		return 0, nil, fmt.Errorf("convoy leader: add leader tag: %w", err)
	}
	if err := ecs.Add(w, leader, component.LeaderComponent.Kind(), &component.Leader{
		Path:        path,
		SpeedFactor: cs.SpeedFactor,
		Lookahead:   cs.Lookahead,
	}); err != nil {
		return 0, nil, fmt.Errorf("convoy leader: add leader: %w", err)
	}

	followers := make([]ecs.Entity, 0, len(cs.Followers))
	chased := leader
	for i, fs := range cs.Followers {
		f, err := newActor(w, spec, fs)
		if err != nil {
			return 0, nil, fmt.Errorf("convoy follower %d: %w", i+1, err)
		}
		if err := ecs.Add(w, f, component.FollowerComponent.Kind(), &component.Follower{
			Index:        i + 1,
			Target:       chased.Ref(),
			Trail:        convoy.NewTrail(cs.HistoryCap),
			MaxTurnSpeed: cs.MaxTurnSpeed,
		}); err != nil {
			return 0, nil, fmt.Errorf("convoy follower %d: add follower: %w", i+1, err)
		}
		followers = append(followers, f)
		chased = f
	}
	return leader, followers, nil
}
