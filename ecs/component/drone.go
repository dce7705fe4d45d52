package component

// Drone flies freely while its camera slot is active.
type Drone struct {
	TurnSpeed float64
	LiftSpeed float64
}

var DroneComponent = NewComponent[Drone]()
