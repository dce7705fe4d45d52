package convoy

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestChaseArrivesOnSchedule(t *testing.T) {
	trail := NewTrail(0)
	pose := Pose{Position: mgl64.Vec3{0, 0, 0}, Yaw: 0}
	target := mgl64.Vec3{0, 0, 100}
	params := Params{MoveSpeed: 16, MaxTurnSpeed: 8, Delta: 0.1}

	arrivedAt := 0
	for tick := 1; tick <= 100; tick++ {
		trail.Record(target)
		var switched bool
		var err error
		pose, switched, err = trail.Step(pose, params)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if switched {
			if arrivedAt != 0 {
				t.Fatalf("switched twice (ticks %d and %d)", arrivedAt, tick)
			}
			arrivedAt = tick
		}
		if arrivedAt == 0 && trail.Arrived() {
			t.Fatalf("arrived without reporting the switch")
		}
		if arrivedAt != 0 && !trail.Arrived() {
			t.Fatalf("arrived flag reverted at tick %d", tick)
		}
	}
	want := int(math.Ceil(100 / 1.6))
	if arrivedAt < want-1 || arrivedAt > want {
		t.Fatalf("arrived at tick %d, want %d (±1, never earlier than %d)", arrivedAt, want, want-1)
	}
}

func TestTrailReplaysHistoryInOrder(t *testing.T) {
	trail := NewTrail(0)
	pose := Pose{Position: mgl64.Vec3{0, 0, -1}}
	params := Params{MoveSpeed: 16, MaxTurnSpeed: 8, Delta: 0.1}

	var recorded, consumed []mgl64.Vec3
	for tick := 0; tick < 80; tick++ {
		p := mgl64.Vec3{math.Sin(float64(tick) * 0.1), 0, float64(tick) * 0.2}
		recorded = append(recorded, p)
		trail.Record(p)

		wasArrived := trail.Arrived()
		var err error
		pose, _, err = trail.Step(pose, params)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if wasArrived {
			consumed = append(consumed, pose.Position)
		}
	}
	if !trail.Arrived() {
		t.Fatalf("follower never arrived")
	}
	if len(consumed) == 0 {
		t.Fatalf("nothing consumed")
	}
	for i, got := range consumed {
		if got != recorded[i] {
			t.Fatalf("consumed[%d] = %v, want %v", i, got, recorded[i])
		}
	}
	if trail.Len()+len(consumed) != len(recorded) {
		t.Fatalf("entries lost: remaining %d consumed %d recorded %d", trail.Len(), len(consumed), len(recorded))
	}
}

func TestTrailingFacesNextEntry(t *testing.T) {
	trail := NewTrail(0)
	trail.Record(mgl64.Vec3{0, 0, 0})
	pose, switched, err := trail.Step(Pose{}, Params{MoveSpeed: 1, MaxTurnSpeed: 100, Delta: 1})
	if err != nil || !switched {
		t.Fatalf("expected immediate arrival, switched=%v err=%v", switched, err)
	}
	trail.Record(mgl64.Vec3{5, 0, 0})
	before := pose.Position
	pose, _, err = trail.Step(pose, Params{MoveSpeed: 1, MaxTurnSpeed: 100, Delta: 1})
	if err != nil {
		t.Fatal(err)
	}
	if pose.Position != (mgl64.Vec3{0, 0, 0}) || before != pose.Position {
		t.Fatalf("trailing snapped to %v", pose.Position)
	}
	if math.Abs(pose.Yaw-math.Pi/2) > 1e-9 {
		t.Fatalf("yaw = %v, want π/2", pose.Yaw)
	}
}

func TestEmptyTrailErrors(t *testing.T) {
	trail := NewTrail(0)
	if _, _, err := trail.Step(Pose{}, Params{MoveSpeed: 1, Delta: 1}); !errors.Is(err, ErrEmptyTrail) {
		t.Fatalf("chase on empty: %v", err)
	}
	trail.Record(mgl64.Vec3{})
	if _, _, err := trail.Step(Pose{}, Params{MoveSpeed: 1, Delta: 1}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := trail.Step(Pose{}, Params{MoveSpeed: 1, Delta: 1}); err != nil {
		t.Fatalf("first trailing pop: %v", err)
	}
	if _, _, err := trail.Step(Pose{}, Params{MoveSpeed: 1, Delta: 1}); !errors.Is(err, ErrEmptyTrail) {
		t.Fatalf("trailing on empty: %v", err)
	}
}

func TestTrailCapOnlyWhileChasing(t *testing.T) {
	trail := NewTrail(3)
	for i := 0; i < 5; i++ {
		trail.Record(mgl64.Vec3{float64(i), 0, 0})
	}
	if trail.Len() != 3 || trail.Dropped() != 2 {
		t.Fatalf("len=%d dropped=%d", trail.Len(), trail.Dropped())
	}
	if oldest, _ := trail.Oldest(); oldest.X() != 2 {
		t.Fatalf("oldest = %v", oldest)
	}
}
