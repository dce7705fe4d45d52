package component

import (
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/scene"
)

// World singletons that are not tied to an entity.
var (
	InputResource = NewComponentKind[input.State]()
	GraphResource = NewComponentKind[scene.Graph]()
	ClockResource = ClockComponent.Kind()
)
