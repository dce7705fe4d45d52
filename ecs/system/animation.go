package system

import (
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	clock, ok := ecs.Resource(w, component.ClockResource)
	if !ok {
		return
	}
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(_ ecs.Entity, anim *component.Animator) {
		if anim.Paused {
			return
		}
		anim.Advance(clock.Delta)
	})
}
