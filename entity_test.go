package ecsdb

import "testing"

func TestEntityDirectoryReserveFinalizeLookup(t *testing.T) {
	d := newEntityDirectory()
	h := d.reserve()

	if _, err := d.lookup(h); err != nil {
		t.Fatalf("lookup reserved handle: %v", err)
	}

	if err := d.finalize(h, archetypeID(1), 3); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	loc, err := d.lookup(h)
	if err != nil {
		t.Fatalf("lookup placed handle: %v", err)
	}
	if loc.kind != locationPlaced || loc.archetype != 1 || loc.row != 3 {
		t.Fatalf("loc = %+v, want {placed, 1, 3}", loc)
	}
}

func TestEntityDirectoryFreeBumpsGenerationAndRecycles(t *testing.T) {
	d := newEntityDirectory()
	h1 := d.reserve()
	if err := d.finalize(h1, archetypeID(1), 0); err != nil {
		t.Fatal(err)
	}

	prevLoc, err := d.free(h1)
	if err != nil {
		t.Fatalf("free: %v", err)
	}
	if prevLoc.archetype != 1 || prevLoc.row != 0 {
		t.Fatalf("free returned %+v, want previous location", prevLoc)
	}

	if _, err := d.lookup(h1); err == nil {
		t.Fatal("lookup on freed handle should fail")
	} else if _, ok := err.(StaleHandleError); !ok {
		t.Fatalf("err = %v (%T), want StaleHandleError", err, err)
	}

	h2 := d.reserve()
	if h2.Index != h1.Index {
		t.Fatalf("h2.Index = %d, want recycled index %d", h2.Index, h1.Index)
	}
	if h2.Generation != h1.Generation+1 {
		t.Fatalf("h2.Generation = %d, want %d", h2.Generation, h1.Generation+1)
	}
}

func TestEntityDirectoryStaleHandleOnUnknownIndex(t *testing.T) {
	d := newEntityDirectory()
	if _, err := d.lookup(Handle{Index: 99, Generation: 0}); err == nil {
		t.Fatal("lookup on never-allocated index should fail")
	}
}
