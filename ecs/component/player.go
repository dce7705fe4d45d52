package component

import "github.com/milk9111/convoy/fsm"

type Player struct {
	TurnSpeed float64
}

var PlayerComponent = NewComponent[Player]()

// Flag names available to player FSM conditions.
const (
	FlagForward = "forward"
	FlagGrabbed = "grabbed"
)

// PlayerFlags lists every flag a player transition may reference.
var PlayerFlags = []string{FlagForward, FlagGrabbed}

// PlayerTransition moves the player FSM from From to To when When holds.
type PlayerTransition struct {
	From string
	To   string
	When *fsm.Condition
}

// PlayerFSM drives the player's animation state. Enter callbacks receive the
// player's animator.
type PlayerFSM struct {
	Machine     *fsm.Machine[*Animator]
	Transitions []PlayerTransition
}

var PlayerFSMComponent = NewComponent[PlayerFSM]()
