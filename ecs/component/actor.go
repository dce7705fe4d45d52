package component

// Actor is anything with a model in the scene. Radius is the proximity
// radius used by grab checks, half the model size.
type Actor struct {
	Name   string
	Model  string
	Radius float64
}

var ActorComponent = NewComponent[Actor]()
