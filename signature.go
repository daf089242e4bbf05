package ecsdb

import (
	"sort"

	"github.com/TheBitDrifter/mask"
)

// Signature is a sorted, duplicate-free tuple of component type ids
// defining which channels an archetype carries. Two archetypes never
// share a signature (spec invariant: signature uniqueness).
type Signature struct {
	ids []ComponentTypeID
	bit mask.Mask
}

// NewSignature canonicalizes ids into a Signature: stable-sorted, with
// duplicates rejected rather than merged. It reports an error if a
// duplicate type id is found,
// mirroring the teacher's bundle validation (a bundle may not name the
// same component twice).
func NewSignature(ids ...ComponentTypeID) (Signature, error) {
	cp := make([]ComponentTypeID, len(ids))
	copy(cp, ids)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	var bm mask.Mask
	for i, id := range cp {
		if i > 0 && cp[i-1] == id {
			return Signature{}, DuplicateRequirementError{Type: typeNameOf(id)}
		}
		bm.Mark(uint32(id))
	}
	return Signature{ids: cp, bit: bm}, nil
}

// mustSignature is NewSignature but panics on duplicates — used by
// withAdded and withRemoved, whose input is derived from an already
// duplicate-free signature.
func mustSignature(ids ...ComponentTypeID) Signature {
	sig, err := NewSignature(ids...)
	if err != nil {
		panic(err)
	}
	return sig
}

// Len returns the number of components in the signature.
func (s Signature) Len() int { return len(s.ids) }

// IDs returns the sorted, duplicate-free component type ids.
func (s Signature) IDs() []ComponentTypeID { return s.ids }

// Contains reports whether the signature carries the given component.
func (s Signature) Contains(id ComponentTypeID) bool {
	var bm mask.Mask
	bm.Mark(uint32(id))
	return s.bit.ContainsAll(bm)
}

// ChannelOf returns the channel ordinal of id within the signature, or
// -1 if the signature does not carry it. Signatures are small and
// sorted, so binary search is appropriate (mirrors the teacher's
// "binary-search the new component's type id" step in add_component).
func (s Signature) ChannelOf(id ComponentTypeID) int {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	if i < len(s.ids) && s.ids[i] == id {
		return i
	}
	return -1
}

// withAdded returns the signature, and the insertion channel ordinal,
// that results from adding id to s. id must not already be present.
func (s Signature) withAdded(id ComponentTypeID) (Signature, int) {
	pos := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	out := make([]ComponentTypeID, 0, len(s.ids)+1)
	out = append(out, s.ids[:pos]...)
	out = append(out, id)
	out = append(out, s.ids[pos:]...)
	return mustSignature(out...), pos
}

// withRemoved returns the signature that results from removing id
// from s. id must be present.
func (s Signature) withRemoved(id ComponentTypeID) Signature {
	out := make([]ComponentTypeID, 0, len(s.ids)-1)
	for _, existing := range s.ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return mustSignature(out...)
}
