package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/ecs/component"
)

// ActorView is what a renderer needs to draw one actor.
type ActorView struct {
	Name     string
	Model    string
	Position mgl64.Vec3
	Yaw      float64
	Radius   float64
}

type LightView struct {
	Button   string
	Kind     component.LightKind
	On       bool
	Position mgl64.Vec3
	Aim      mgl64.Vec3
}

type PropView struct {
	Shape    string
	Material string
	Position mgl64.Vec3
}

type CameraView struct {
	Name     string
	Position mgl64.Vec3
	Yaw      float64
	Aspect   float64
}

// View is a world-space snapshot of everything drawable.
type View struct {
	Actors []ActorView
	Lights []LightView
	Props  []PropView
	Camera CameraView
	Path   []mgl64.Vec3
}

// pathSamples is the number of points used to draw the leader's path.
const pathSamples = 100

func (s *Session) View() View {
	var v View
	w := s.world

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Actor, t *component.Transform) {
		v.Actors = append(v.Actors, ActorView{
			Name:     a.Name,
			Model:    a.Model,
			Position: s.graph.WorldPosition(t.Node),
			Yaw:      s.graph.WorldYaw(t.Node),
			Radius:   a.Radius,
		})
	})

	ecs.ForEach2(w, component.LightComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Light, t *component.Transform) {
		v.Lights = append(v.Lights, LightView{
			Button:   l.Button,
			Kind:     l.Kind,
			On:       l.On,
			Position: s.graph.WorldPosition(t.Node),
			Aim:      l.Aim,
		})
	})

	ecs.ForEach2(w, component.PropComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Prop, t *component.Transform) {
		pv := PropView{Shape: p.Shape, Position: s.graph.WorldPosition(t.Node)}
		if m, ok := ecs.Get(w, ecs.FromRef(p.Materials), component.MaterialCycleComponent.Kind()); ok && len(m.Palette) > 0 {
			pv.Material = m.Palette[m.Index]
		}
		v.Props = append(v.Props, pv)
	})

	if rig, ok := ecs.Get(w, s.scene.Rig, component.CameraRigComponent.Kind()); ok {
		if slot, ok := rig.ActiveSlot(); ok {
			v.Camera = CameraView{
				Name:     slot.Name,
				Position: s.graph.WorldPosition(slot.Node),
				Yaw:      s.graph.WorldYaw(slot.Node),
				Aspect:   slot.Aspect,
			}
		}
	}

	if l, ok := ecs.Get(w, s.scene.Leader, component.LeaderComponent.Kind()); ok && l.Path != nil {
		v.Path = make([]mgl64.Vec3, 0, pathSamples+1)
		for i := 0; i <= pathSamples; i++ {
			p := l.Path.PointAt(float64(i) / pathSamples)
			v.Path = append(v.Path, mgl64.Vec3{p.X(), 0, p.Y()})
		}
	}
	return v
}
