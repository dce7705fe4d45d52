package convoy

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/eapache/queue.v1"

	"github.com/milk9111/convoy/common"
)

var ErrEmptyTrail = errors.New("convoy: trail is empty")

// Pose is a ground actor's world position and yaw.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Params bound one step of follower motion.
type Params struct {
	MoveSpeed    float64
	MaxTurnSpeed float64
	Delta        float64
}

// Trail is the FIFO of positions recorded from the chased object, plus the
// chase/trailing phase flag. Arrived flips once and never reverts.
type Trail struct {
	history *queue.Queue
	max     int
	arrived bool
	dropped int
}

// NewTrail creates a trail. A max of zero keeps every entry.
func NewTrail(max int) *Trail {
	return &Trail{history: queue.New(), max: max}
}

func (t *Trail) Arrived() bool {
	return t.arrived
}

func (t *Trail) Len() int {
	return t.history.Length()
}

// Dropped counts entries discarded by the cap while chasing.
func (t *Trail) Dropped() int {
	return t.dropped
}

// Record appends the chased object's position for this tick.
func (t *Trail) Record(p mgl64.Vec3) {
	t.history.Add(p)
	if t.max > 0 && !t.arrived {
		for t.history.Length() > t.max {
			t.history.Remove()
			t.dropped++
		}
	}
}

// Oldest returns the next entry without consuming it.
func (t *Trail) Oldest() (mgl64.Vec3, bool) {
	if t.history.Length() == 0 {
		return mgl64.Vec3{}, false
	}
	return t.history.Peek().(mgl64.Vec3), true
}

func (t *Trail) pop() (mgl64.Vec3, error) {
	if t.history.Length() == 0 {
		return mgl64.Vec3{}, ErrEmptyTrail
	}
	return t.history.Remove().(mgl64.Vec3), nil
}

// Step advances the follower one tick. While chasing it steers toward the
// oldest entry and closes distance; once a tick's move would reach it the
// trail switches to replaying entries exactly. Reports whether this call
// performed the chase-to-trail switch.
func (t *Trail) Step(pose Pose, p Params) (Pose, bool, error) {
	maxTurn := p.MaxTurnSpeed * p.Delta
	if !t.arrived {
		target, ok := t.Oldest()
		if !ok {
			return pose, false, ErrEmptyTrail
		}
		maxMove := p.MoveSpeed * p.Delta
		yaw, dist := common.SteerToward(pose.Position, pose.Yaw, target, maxTurn)
		pose.Yaw = yaw
		pose.Position = pose.Position.Add(common.Forward(yaw).Mul(math.Min(dist, maxMove)))
		if dist <= maxMove {
			t.arrived = true
			return pose, true, nil
		}
		return pose, false, nil
	}

	next, err := t.pop()
	if err != nil {
		return pose, false, err
	}
	pose.Position = next
	if ahead, ok := t.Oldest(); ok {
		pose.Yaw, _ = common.SteerToward(pose.Position, pose.Yaw, ahead, maxTurn)
	}
	return pose, false, nil
}
