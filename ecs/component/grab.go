package component

// Grab attaches its owner to Target while Held.
type Grab struct {
	Target uint64
	Held   bool
}

var GrabComponent = NewComponent[Grab]()
