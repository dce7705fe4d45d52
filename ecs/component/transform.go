package component

import "github.com/milk9111/convoy/scene"

// Transform binds an entity to its node in the scene graph.
type Transform struct {
	Node scene.Handle
}

var TransformComponent = NewComponent[Transform]()
