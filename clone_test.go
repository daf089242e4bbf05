package ecsdb

import "testing"

type ctPosition struct{ X, Y float64 }
type ctTag struct{ Label string }

func TestCloneEntityNotCloneableByDefault(t *testing.T) {
	w := New()
	posID := RegisterComponent[ctPosition]()
	h, _ := w.Spawn(Bundle1(posID, ctPosition{X: 1}))

	_, err := w.CloneEntity(h)
	if _, ok := err.(NotCloneableError); !ok {
		t.Fatalf("err = %v (%T), want NotCloneableError", err, err)
	}
}

func TestCloneEntityShallowCopyIsIndependent(t *testing.T) {
	w := New()
	posID := RegisterComponent[ctPosition]()
	RegisterShallowCloneable[ctPosition]()

	h, _ := w.Spawn(Bundle1(posID, ctPosition{X: 1, Y: 2}))
	clone, err := w.CloneEntity(h)
	if err != nil {
		t.Fatalf("CloneEntity: %v", err)
	}
	if clone == h {
		t.Fatal("clone must have a distinct handle")
	}

	g, err := GetComponentMut[ctPosition](w, h)
	if err != nil {
		t.Fatal(err)
	}
	g.Get().X = 100
	g.Release()

	gc, err := GetComponentMut[ctPosition](w, clone)
	if err != nil {
		t.Fatal(err)
	}
	defer gc.Release()
	if gc.Get().X != 1 {
		t.Fatalf("clone.X = %v, want 1 (independent of source mutation)", gc.Get().X)
	}
}

func TestCloneEntityUsesRegisteredThunk(t *testing.T) {
	w := New()
	tagID := RegisterComponent[ctTag]()
	RegisterCloneable(func(v ctTag) ctTag { return ctTag{Label: v.Label + "-copy"} })

	h, _ := w.Spawn(Bundle1(tagID, ctTag{Label: "orig"}))
	clone, err := w.CloneEntity(h)
	if err != nil {
		t.Fatalf("CloneEntity: %v", err)
	}

	gc, err := GetComponentMut[ctTag](w, clone)
	if err != nil {
		t.Fatal(err)
	}
	defer gc.Release()
	if gc.Get().Label != "orig-copy" {
		t.Fatalf("clone.Label = %q, want %q", gc.Get().Label, "orig-copy")
	}
}
