package ecsdb

import "testing"

type htMarker struct{ V int }

func TestDespawnRecursiveCascadesToChildSubtree(t *testing.T) {
	w := New()
	markerID := RegisterComponent[htMarker]()

	root, _ := w.Spawn(Bundle1(markerID, htMarker{V: 0}))
	child, _ := w.Spawn(Bundle1(markerID, htMarker{V: 1}))
	grandchild, _ := w.Spawn(Bundle1(markerID, htMarker{V: 2}))
	sibling, _ := w.Spawn(Bundle1(markerID, htMarker{V: 3}))

	if err := SetParent(w, child, root); err != nil {
		t.Fatalf("SetParent(child, root): %v", err)
	}
	if err := SetParent(w, grandchild, child); err != nil {
		t.Fatalf("SetParent(grandchild, child): %v", err)
	}

	if err := w.DespawnRecursive(root); err != nil {
		t.Fatalf("DespawnRecursive: %v", err)
	}

	for _, h := range []Handle{root, child, grandchild} {
		if _, err := w.directory.lookup(h); err == nil {
			t.Fatalf("handle %v should be despawned", h)
		}
	}
	if _, err := w.directory.lookup(sibling); err != nil {
		t.Fatalf("unrelated sibling should survive: %v", err)
	}
}

func TestClearParentRemovesComponent(t *testing.T) {
	w := New()
	markerID := RegisterComponent[htMarker]()
	parent, _ := w.Spawn(Bundle1(markerID, htMarker{}))
	child, _ := w.Spawn(Bundle1(markerID, htMarker{}))

	if err := SetParent(w, child, parent); err != nil {
		t.Fatal(err)
	}
	if err := ClearParent(w, child); err != nil {
		t.Fatalf("ClearParent: %v", err)
	}
	if got := w.children(parent); len(got) != 0 {
		t.Fatalf("children(parent) = %v, want empty after ClearParent", got)
	}
}
