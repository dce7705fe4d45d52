package component

import "github.com/milk9111/convoy/scene"

// CameraSlot is a viewpoint bound to a scene node.
type CameraSlot struct {
	Name   string
	Node   scene.Handle
	Aspect float64
}

// CameraRig holds every camera slot and the active index.
type CameraRig struct {
	Slots  []CameraSlot
	Active int
	// FreeFlight is the slot index that hands control to the drone.
	FreeFlight int
}

var CameraRigComponent = NewComponent[CameraRig]()

// ActiveSlot returns the slot currently rendered.
func (r *CameraRig) ActiveSlot() (CameraSlot, bool) {
	if r == nil || r.Active < 0 || r.Active >= len(r.Slots) {
		return CameraSlot{}, false
	}
	return r.Slots[r.Active], true
}

// Cycle advances to the next slot.
func (r *CameraRig) Cycle() {
	if r == nil || len(r.Slots) == 0 {
		return
	}
	r.Active = (r.Active + 1) % len(r.Slots)
}

// Resize sets every slot's aspect to w/h.
func (r *CameraRig) Resize(w, h float64) {
	if r == nil || h <= 0 {
		return
	}
	for i := range r.Slots {
		r.Slots[i].Aspect = w / h
	}
}

// InFreeFlight reports whether the drone slot is active.
func (r *CameraRig) InFreeFlight() bool {
	return r != nil && r.Active == r.FreeFlight
}
