package common

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); math.Abs(got-c.want) > eps {
			t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapSigned(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{0.25, 0.25},
	}
	for _, c := range cases {
		if got := WrapSigned(c.in); math.Abs(got-c.want) > eps {
			t.Fatalf("WrapSigned(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSteerTowardCases(t *testing.T) {
	cases := []struct {
		name     string
		pos      mgl64.Vec3
		yaw      float64
		target   mgl64.Vec3
		max      float64
		wantYaw  float64
		wantDist float64
	}{
		{"already_facing", mgl64.Vec3{}, 0, mgl64.Vec3{0, 0, 10}, 1, 0, 10},
		{"turn_clamped_left", mgl64.Vec3{}, 0, mgl64.Vec3{10, 0, 0}, 0.5, 0.5, 10},
		{"turn_clamped_right", mgl64.Vec3{}, 0, mgl64.Vec3{-10, 0, 0}, 0.5, TwoPi - 0.5, 10},
		{"turn_within_bound", mgl64.Vec3{}, 0, mgl64.Vec3{10, 0, 0}, 4, math.Pi / 2, 10},
		{"short_way_round", mgl64.Vec3{}, 0.1, mgl64.Vec3{-1, 0, 1}, 10, TwoPi - math.Pi/4, math.Sqrt2},
		{"vertical_offset_counts_in_distance", mgl64.Vec3{}, 0, mgl64.Vec3{0, 3, 4}, 1, 0, 5},
		{"coincident", mgl64.Vec3{1, 2, 3}, 1.25, mgl64.Vec3{1, 2, 3}, 1, 1.25, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			yaw, dist := SteerToward(c.pos, c.yaw, c.target, c.max)
			if math.Abs(yaw-c.wantYaw) > 1e-9 {
				t.Fatalf("yaw = %v, want %v", yaw, c.wantYaw)
			}
			if math.Abs(dist-c.wantDist) > 1e-9 {
				t.Fatalf("dist = %v, want %v", dist, c.wantDist)
			}
		})
	}
}

func TestSteerTowardBoundHolds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		pos := mgl64.Vec3{rng.Float64()*200 - 100, 0, rng.Float64()*200 - 100}
		target := mgl64.Vec3{rng.Float64()*200 - 100, rng.Float64() * 5, rng.Float64()*200 - 100}
		if i%10 == 0 {
			target = pos
		}
		yaw := rng.Float64() * TwoPi
		dt := rng.Float64() * 0.1
		bound := 8 * dt

		newYaw, dist := SteerToward(pos, yaw, target, bound)
		if math.IsNaN(newYaw) || math.IsNaN(dist) {
			t.Fatalf("case %d: NaN result", i)
		}
		if newYaw < 0 || newYaw >= TwoPi {
			t.Fatalf("case %d: yaw %v outside [0, 2π)", i, newYaw)
		}
		if delta := math.Abs(WrapSigned(newYaw - yaw)); delta > bound+1e-9 {
			t.Fatalf("case %d: delta %v exceeds bound %v", i, delta, bound)
		}
		if target == pos && (dist != 0 || math.Abs(WrapSigned(newYaw-yaw)) > 1e-12) {
			t.Fatalf("case %d: coincident target moved yaw or distance", i)
		}
	}
}

func TestForwardMatchesBearing(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, math.Pi / 2, 2, math.Pi, 4.5} {
		f := Forward(yaw)
		if got := WrapAngle(Bearing(mgl64.Vec3{}, f)); math.Abs(got-WrapAngle(yaw)) > 1e-9 {
			t.Fatalf("bearing of forward(%v) = %v", yaw, got)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	if got := ClampMagnitude(-3, 1); got != -1 {
		t.Fatalf("got %v", got)
	}
	if got := ClampMagnitude(0.5, 1); got != 0.5 {
		t.Fatalf("got %v", got)
	}
	if got := ClampMagnitude(0.5, -1); got != 0 {
		t.Fatalf("negative bound: got %v", got)
	}
}

func TestGroundDistanceIgnoresHeight(t *testing.T) {
	cases := []struct {
		name string
		a, b mgl64.Vec3
		want float64
	}{
		{"same", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0},
		{"height_only", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 40, 0}, 0},
		{"plane", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{3, -1, 4}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GroundDistance(c.a, c.b); math.Abs(got-c.want) > eps {
				t.Fatalf("GroundDistance(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}
