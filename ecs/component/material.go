package component

// MaterialCycle is a shared material palette; every prop entity referencing
// it renders Palette[Index].
type MaterialCycle struct {
	Button  string
	Palette []string
	Index   int
}

var MaterialCycleComponent = NewComponent[MaterialCycle]()

// Prop is a mesh whose material comes from a MaterialCycle entity.
type Prop struct {
	Shape     string
	Materials uint64
}

var PropComponent = NewComponent[Prop]()
