package ecsdb

import "testing"

type wtPosition struct{ X, Y float64 }
type wtVelocity struct{ X, Y float64 }
type wtHealth struct{ HP int }

func TestWorldSpawnAndGetComponentMut(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	velID := RegisterComponent[wtVelocity]()

	h, err := w.Spawn(Bundle2(posID, wtPosition{X: 1, Y: 2}, velID, wtVelocity{X: 0.5}))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	g, err := GetComponentMut[wtPosition](w, h)
	if err != nil {
		t.Fatalf("GetComponentMut: %v", err)
	}
	if g.Get().X != 1 || g.Get().Y != 2 {
		t.Fatalf("got %+v, want {1 2}", *g.Get())
	}
	g.Get().X = 10
	g.Release()

	g2, err := GetComponentMut[wtPosition](w, h)
	if err != nil {
		t.Fatalf("GetComponentMut after release: %v", err)
	}
	defer g2.Release()
	if g2.Get().X != 10 {
		t.Fatalf("X = %v, want 10 (mutation should persist)", g2.Get().X)
	}
}

func TestWorldDespawnThenDespawnFailsStale(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	h, err := w.Spawn(Bundle1(posID, wtPosition{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Despawn(h); err != nil {
		t.Fatalf("first Despawn: %v", err)
	}
	err = w.Despawn(h)
	if _, ok := err.(StaleHandleError); !ok {
		t.Fatalf("second Despawn err = %v (%T), want StaleHandleError", err, err)
	}
}

func TestWorldDespawnSwapFixesUpDisplacedRow(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	h1, _ := w.Spawn(Bundle1(posID, wtPosition{X: 1}))
	h2, _ := w.Spawn(Bundle1(posID, wtPosition{X: 2}))
	h3, _ := w.Spawn(Bundle1(posID, wtPosition{X: 3}))

	if err := w.Despawn(h1); err != nil {
		t.Fatal(err)
	}

	for h, want := range map[Handle]float64{h2: 2, h3: 3} {
		g, err := GetComponentMut[wtPosition](w, h)
		if err != nil {
			t.Fatalf("GetComponentMut(%v): %v", h, err)
		}
		if g.Get().X != want {
			t.Fatalf("X = %v, want %v", g.Get().X, want)
		}
		g.Release()
	}
}

func TestAddComponentMigratesAndPreservesExisting(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	h, err := w.Spawn(Bundle1(posID, wtPosition{X: 1, Y: 2}))
	if err != nil {
		t.Fatal(err)
	}

	if err := AddComponent(w, h, wtVelocity{X: 5}); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}

	gp, err := GetComponentMut[wtPosition](w, h)
	if err != nil {
		t.Fatal(err)
	}
	if gp.Get().X != 1 {
		t.Fatalf("Position.X = %v after migration, want 1", gp.Get().X)
	}
	gp.Release()

	gv, err := GetComponentMut[wtVelocity](w, h)
	if err != nil {
		t.Fatal(err)
	}
	if gv.Get().X != 5 {
		t.Fatalf("Velocity.X = %v, want 5", gv.Get().X)
	}
	gv.Release()
}

func TestAddComponentAlreadyPresentOverwritesInPlace(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	h, _ := w.Spawn(Bundle1(posID, wtPosition{X: 1}))

	if err := AddComponent(w, h, wtPosition{X: 99}); err != nil {
		t.Fatalf("AddComponent overwrite: %v", err)
	}
	g, err := GetComponentMut[wtPosition](w, h)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Release()
	if g.Get().X != 99 {
		t.Fatalf("X = %v, want 99", g.Get().X)
	}
}

func TestRemoveComponentMigratesAndReturnsValue(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	velID := RegisterComponent[wtVelocity]()
	h, _ := w.Spawn(Bundle2(posID, wtPosition{X: 1}, velID, wtVelocity{X: 7}))

	removed, err := RemoveComponent[wtVelocity](w, h)
	if err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if removed.X != 7 {
		t.Fatalf("removed.X = %v, want 7", removed.X)
	}

	if _, err := GetComponentMut[wtVelocity](w, h); err == nil {
		t.Fatal("GetComponentMut for removed component should fail")
	} else if _, ok := err.(UnknownComponentError); !ok {
		t.Fatalf("err = %v (%T), want UnknownComponentError", err, err)
	}

	gp, err := GetComponentMut[wtPosition](w, h)
	if err != nil {
		t.Fatalf("Position should survive removal of Velocity: %v", err)
	}
	defer gp.Release()
	if gp.Get().X != 1 {
		t.Fatalf("Position.X = %v, want 1", gp.Get().X)
	}
}

func TestRemoveComponentNotPresentFails(t *testing.T) {
	w := New()
	posID := RegisterComponent[wtPosition]()
	RegisterComponent[wtHealth]()
	h, _ := w.Spawn(Bundle1(posID, wtPosition{}))
	_, err := RemoveComponent[wtHealth](w, h)
	if _, ok := err.(UnknownComponentError); !ok {
		t.Fatalf("err = %v (%T), want UnknownComponentError", err, err)
	}
}
