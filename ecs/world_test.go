package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/convoy/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", fresh.id(), old.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("components of the destroyed entity leaked into the recycled one")
	}
	if old.String() != "1.0" || fresh.String() != "1.1" {
		t.Fatalf("unexpected names %s and %s", old, fresh)
	}
	if FromRef(fresh.Ref()) != fresh {
		t.Fatalf("ref round trip changed the entity")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity should not be valid")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "replace_keeps_single_entry",
			setup: func() error { return Add(w, e2, h2.Kind(), stringPtr("c")) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h2.Kind())
				if *v != "c" {
					t.Fatalf("expected replaced value c, got %s", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"dead_entity", Add(w, dead, h.Kind(), intPtr(1)), component.ErrEntityNotAlive},
		{"nil_value", Add(w, e, h.Kind(), nil), component.ErrNilComponent},
		{"zero_kind", Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func TestForEachVisitsInIDOrder(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	// Insert out of order so dense order differs from id order.
	for _, i := range []int{3, 0, 4, 1} {
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	Remove(w, ents[4], h.Kind())

	var got []int
	ForEach(w, h.Kind(), func(_ Entity, v *int) { got = append(got, *v) })
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	first, ok := First(w, h.Kind())
	if !ok || first != ents[0] {
		t.Fatalf("expected First to return e0, got %v ok=%v", first, ok)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []error{
					Add(w, e1, ka, intPtr(1)),
					Add(w, e2, ka, intPtr(2)),
					Add(w, e2, kb, intPtr(3)),
					Add(w, e2, kc, intPtr(5)),
					Add(w, e3, kb, intPtr(4)),
				} {
					if add != nil {
						t.Fatal(add)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				DestroyEntity(w, e)

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				called := false
				ForEach(w, ka, func(Entity, *int) { called = true })
				if called {
					t.Fatalf("expected no visits without a store")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestResources(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[string]()

	if _, ok := Resource(w, kind); ok {
		t.Fatalf("expected no resource before set")
	}
	SetResource(w, kind, stringPtr("x"))
	v, ok := Resource(w, kind)
	if !ok || *v != "x" {
		t.Fatalf("expected resource x, got %v ok=%v", v, ok)
	}
	SetResource(w, kind, nil)
	if _, ok := Resource(w, kind); ok {
		t.Fatalf("expected resource cleared")
	}
}

type countingSystem struct {
	name  string
	order *[]string
}

func (s countingSystem) Update(*World) {
	*s.order = append(*s.order, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		Stage{Name: "a", System: countingSystem{"a", &order}},
		Stage{Name: "b", System: countingSystem{"b", &order}},
	)
	s.Add("nil", nil)
	s.Add("", countingSystem{"c", &order})

	s.Update(NewWorld())
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	names := s.Names()
	if len(names) != 3 || names[0] != "a" || names[2] != "ecs.countingSystem" {
		t.Fatalf("unexpected stage names %v", names)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Push(Event{Kind: EventGrab})
	q.Push(Event{Kind: EventRelease})
	if q.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Kind != EventGrab || got[1].Kind != EventRelease {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}
