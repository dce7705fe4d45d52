package component

// Clock is the per-frame simulation state shared by all systems.
type Clock struct {
	Time      float64
	Delta     float64
	MoveSpeed float64
	Tick      uint64
}

var ClockComponent = NewComponent[Clock]()
