package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/common"
)

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func angleNear(a, b, tol float64) bool {
	return math.Abs(common.WrapSigned(a-b)) <= tol
}

func TestWorldComposition(t *testing.T) {
	g := NewGraph()
	parent, err := g.NewNode("truck", Root, mgl64.Vec3{10, 0, 0}, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	child, err := g.NewNode("rider", parent, mgl64.Vec3{0, 1, 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	// rotating (0,1,2) by +90° about Y gives (2,1,0)
	want := mgl64.Vec3{12, 1, 0}
	if got := g.WorldPosition(child); !vecNear(got, want, 1e-9) {
		t.Fatalf("world position = %v, want %v", got, want)
	}
	if got := g.WorldYaw(child); !angleNear(got, math.Pi/2, 1e-9) {
		t.Fatalf("world yaw = %v", got)
	}
}

func TestReparentPreservesWorldPose(t *testing.T) {
	cases := []struct {
		name      string
		parentPos mgl64.Vec3
		parentYaw float64
	}{
		{"identity_rotation", mgl64.Vec3{5, 0, 5}, 0},
		{"quarter_turn", mgl64.Vec3{32, 0, 20}, math.Pi / 2},
		{"arbitrary", mgl64.Vec3{-3, 2, 7}, 2.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGraph()
			leader, _ := g.NewNode("leader", Root, c.parentPos, c.parentYaw)
			player, _ := g.NewNode("player", Root, mgl64.Vec3{4, 0, 3}, 0.7)

			beforePos, beforeYaw := g.WorldPosition(player), g.WorldYaw(player)
			if err := g.Reparent(player, leader); err != nil {
				t.Fatalf("attach: %v", err)
			}
			if p, _ := g.Parent(player); p != leader {
				t.Fatalf("parent = %d, want %d", p, leader)
			}
			if got := g.WorldPosition(player); !vecNear(got, beforePos, 1e-9) {
				t.Fatalf("attach moved player: %v -> %v", beforePos, got)
			}
			if got := g.WorldYaw(player); !angleNear(got, beforeYaw, 1e-9) {
				t.Fatalf("attach rotated player: %v -> %v", beforeYaw, got)
			}

			// carried along while the parent moves and turns
			g.SetLocal(leader, c.parentPos.Add(mgl64.Vec3{1, 0, 1}), c.parentYaw+0.4)
			carried := g.WorldPosition(player)

			if err := g.Reparent(player, Root); err != nil {
				t.Fatalf("detach: %v", err)
			}
			if got := g.WorldPosition(player); !vecNear(got, carried, 1e-9) {
				t.Fatalf("detach moved player: %v -> %v", carried, got)
			}
			if local, _ := g.Local(player); !vecNear(local, carried, 1e-9) {
				t.Fatalf("root-local position %v, want %v", local, carried)
			}
		})
	}
}

func TestReparentRandomNesting(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGraph()
	handles := []Handle{Root}
	for i := 0; i < 40; i++ {
		parent := handles[rng.Intn(len(handles))]
		h, err := g.NewNode("n", parent, mgl64.Vec3{rng.Float64()*10 - 5, rng.Float64(), rng.Float64()*10 - 5}, rng.Float64()*common.TwoPi)
		if err != nil {
			t.Fatal(err)
		}
		handles = append(handles, h)
	}
	for i := 0; i < 200; i++ {
		child := handles[1+rng.Intn(len(handles)-1)]
		parent := handles[rng.Intn(len(handles))]
		before := g.WorldPosition(child)
		beforeYaw := g.WorldYaw(child)
		err := g.Reparent(child, parent)
		if g.IsAncestor(child, parent) {
			if !errors.Is(err, ErrCycle) {
				t.Fatalf("expected cycle error, got %v", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("reparent: %v", err)
		}
		if got := g.WorldPosition(child); !vecNear(got, before, 1e-6) {
			t.Fatalf("step %d: world moved %v -> %v", i, before, got)
		}
		if got := g.WorldYaw(child); !angleNear(got, beforeYaw, 1e-6) {
			t.Fatalf("step %d: yaw moved %v -> %v", i, beforeYaw, got)
		}
	}
}

func TestReparentErrors(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewNode("a", Root, mgl64.Vec3{}, 0)
	b, _ := g.NewNode("b", a, mgl64.Vec3{}, 0)

	if err := g.Reparent(Root, a); !errors.Is(err, ErrRoot) {
		t.Fatalf("root: %v", err)
	}
	if err := g.Reparent(a, b); !errors.Is(err, ErrCycle) {
		t.Fatalf("descendant: %v", err)
	}
	if err := g.Reparent(a, a); !errors.Is(err, ErrCycle) {
		t.Fatalf("self: %v", err)
	}
	if err := g.Reparent(99, a); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("bad child: %v", err)
	}
	if _, err := g.NewNode("x", 42, mgl64.Vec3{}, 0); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("bad parent: %v", err)
	}
}

func TestChildrenTrackReparent(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewNode("a", Root, mgl64.Vec3{}, 0)
	b, _ := g.NewNode("b", Root, mgl64.Vec3{}, 0)
	if err := g.Reparent(b, a); err != nil {
		t.Fatal(err)
	}
	if len(g.Children(Root)) != 1 || len(g.Children(a)) != 1 {
		t.Fatalf("children root=%v a=%v", g.Children(Root), g.Children(a))
	}
}

func TestTranslateAlongYaw(t *testing.T) {
	g := NewGraph()
	h, _ := g.NewNode("p", Root, mgl64.Vec3{}, math.Pi/2)
	g.Translate(h, mgl64.Vec3{0, 0, 1}, 2)
	if got, _ := g.Local(h); !vecNear(got, mgl64.Vec3{2, 0, 0}, 1e-9) {
		t.Fatalf("translate = %v", got)
	}
	g.Translate(h, mgl64.Vec3{0, 1, 0}, 3)
	if got, _ := g.Local(h); !vecNear(got, mgl64.Vec3{2, 3, 0}, 1e-9) {
		t.Fatalf("lift = %v", got)
	}
}

func TestSetWorldPositionUnderParent(t *testing.T) {
	g := NewGraph()
	a, _ := g.NewNode("a", Root, mgl64.Vec3{5, 0, 0}, math.Pi)
	b, _ := g.NewNode("b", a, mgl64.Vec3{}, 0)
	target := mgl64.Vec3{1, 2, 3}
	g.SetWorldPosition(b, target)
	if got := g.WorldPosition(b); !vecNear(got, target, 1e-9) {
		t.Fatalf("world = %v, want %v", got, target)
	}
}
