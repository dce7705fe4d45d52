package component

import "github.com/milk9111/convoy/convoy"

// Leader follows a closed path by simulation time.
type Leader struct {
	Path        *convoy.Path
	SpeedFactor float64
	Lookahead   float64
}

var LeaderComponent = NewComponent[Leader]()

// Follower chases the recorded positions of Target.
type Follower struct {
	Index        int
	Target       uint64
	Trail        *convoy.Trail
	MaxTurnSpeed float64
}

var FollowerComponent = NewComponent[Follower]()
