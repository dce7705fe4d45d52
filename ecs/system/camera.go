package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/input"
)

// CameraSystem cycles the active camera slot on the camera button.
type CameraSystem struct {
	log zerolog.Logger
}

func NewCameraSystem(log zerolog.Logger) *CameraSystem {
	return &CameraSystem{log: log}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	f, ok := frameOf(w)
	if !ok || !f.input.JustPressed(input.Camera) {
		return
	}
	rig := cameraRig(w)
	if rig == nil {
		return
	}
	rig.Cycle()
	slot, _ := rig.ActiveSlot()
	cs.log.Debug().Int("index", rig.Active).Str("slot", slot.Name).Msg("camera changed")
	w.Events().Push(ecs.Event{Kind: ecs.EventCameraChanged, Data: rig.Active})
}
