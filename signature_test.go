package ecsdb

import "testing"

type sigTestA struct{ V int }
type sigTestB struct{ V int }
type sigTestC struct{ V int }

func TestNewSignatureSortsCanonically(t *testing.T) {
	idA := RegisterComponent[sigTestA]()
	idB := RegisterComponent[sigTestB]()
	idC := RegisterComponent[sigTestC]()

	cases := []struct {
		name string
		in   []ComponentTypeID
		want []ComponentTypeID
	}{
		{"already sorted", []ComponentTypeID{idA, idB, idC}, sortedIDs(idA, idB, idC)},
		{"reverse order", []ComponentTypeID{idC, idB, idA}, sortedIDs(idA, idB, idC)},
		{"single", []ComponentTypeID{idB}, sortedIDs(idB)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := NewSignature(tc.in...)
			if err != nil {
				t.Fatalf("NewSignature: %v", err)
			}
			got := sig.IDs()
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("IDs()[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func sortedIDs(ids ...ComponentTypeID) []ComponentTypeID {
	out := make([]ComponentTypeID, len(ids))
	copy(out, ids)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] < out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func TestNewSignatureRejectsDuplicates(t *testing.T) {
	idA := RegisterComponent[sigTestA]()
	_, err := NewSignature(idA, idA)
	if _, ok := err.(DuplicateRequirementError); !ok {
		t.Fatalf("err = %v (%T), want DuplicateRequirementError", err, err)
	}
}

func TestSignatureChannelOf(t *testing.T) {
	idA := RegisterComponent[sigTestA]()
	idB := RegisterComponent[sigTestB]()
	idC := RegisterComponent[sigTestC]()
	sig, err := NewSignature(idA, idB, idC)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []ComponentTypeID{idA, idB, idC} {
		if ch := sig.ChannelOf(id); ch < 0 {
			t.Fatalf("ChannelOf(%v) = %d, want >= 0", id, ch)
		}
	}

	type notInSignature struct{}
	missing := RegisterComponent[notInSignature]()
	if ch := sig.ChannelOf(missing); ch != -1 {
		t.Fatalf("ChannelOf(missing) = %d, want -1", ch)
	}
}

func TestSignatureWithAddedAndWithRemoved(t *testing.T) {
	idA := RegisterComponent[sigTestA]()
	idC := RegisterComponent[sigTestC]()
	idB := RegisterComponent[sigTestB]()

	base, err := NewSignature(idA, idC)
	if err != nil {
		t.Fatal(err)
	}
	withB, pos := base.withAdded(idB)
	if withB.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", withB.Len())
	}
	if got := withB.ChannelOf(idB); got != pos {
		t.Fatalf("ChannelOf(idB) = %d, want insertion pos %d", got, pos)
	}

	back := withB.withRemoved(idB)
	if back.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", back.Len())
	}
	if back.ChannelOf(idB) != -1 {
		t.Fatalf("ChannelOf(idB) after removal = %d, want -1", back.ChannelOf(idB))
	}
}
