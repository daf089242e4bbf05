package ecsdb

import "sync"

// Handle is an opaque, comparable, cheaply copyable reference to an
// entity. Two handles refer to the same live entity iff both fields
// are equal. Generation is at least 32 bits wide, per the spec's
// mandate to make the narrow-counter ABA scenario unreachable in
// realistic workloads.
type Handle struct {
	Index      uint32
	Generation uint32
}

// locationKind discriminates the three states a directory slot can be
// in at any observable moment.
type locationKind uint8

const (
	locationAbsent locationKind = iota
	locationReserved
	locationPlaced
)

// location is where a live entity's row currently lives, or that it
// has none yet (reserved) or never did / no longer does (absent).
type location struct {
	kind      locationKind
	archetype archetypeID
	row       int
}

// slot is one entry of the entity directory: a generation counter plus
// the slot's current location.
type slot struct {
	generation uint32
	loc        location
}

// entityDirectory is a freelisted generational slotmap mapping each
// Handle to its current (archetype, row) or to reserved/absent,
// grounded on the (ID, Version) / entityMeta shape used across the
// retrieval pack's ECS implementations, generalized to the explicit
// reserved/placed/absent state machine the spec requires.
type entityDirectory struct {
	mu       sync.Mutex // guards allocation state only; see reserve()
	slots    []slot
	freelist []uint32
}

func newEntityDirectory() *entityDirectory {
	return &entityDirectory{}
}

// reserve allocates a handle with state reserved. It is safe to call
// concurrently with a shared world reference — it touches only the
// directory's small internal allocation mutex, never archetype state.
func (d *entityDirectory) reserve() Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n := len(d.freelist); n > 0 {
		idx := d.freelist[n-1]
		d.freelist = d.freelist[:n-1]
		s := &d.slots[idx]
		s.loc = location{kind: locationReserved}
		return Handle{Index: idx, Generation: s.generation}
	}

	idx := uint32(len(d.slots))
	d.slots = append(d.slots, slot{generation: 0, loc: location{kind: locationReserved}})
	return Handle{Index: idx, Generation: 0}
}

// finalize sets a reserved handle's state to placed{archetype, row}.
// Exclusive-access only: callers must already hold the world's
// structural-mutation discipline.
func (d *entityDirectory) finalize(h Handle, arch archetypeID, row int) error {
	s, err := d.checkedSlot(h)
	if err != nil {
		return err
	}
	s.loc = location{kind: locationPlaced, archetype: arch, row: row}
	return nil
}

// setLocation updates an already-placed handle's location after a
// row migration. Exclusive-access only.
func (d *entityDirectory) setLocation(h Handle, arch archetypeID, row int) error {
	return d.finalize(h, arch, row)
}

// free marks handle h dead: its generation is incremented exactly
// once, its slot is returned to the freelist, and its previous
// location is returned so the caller can finish removing the row.
func (d *entityDirectory) free(h Handle) (location, error) {
	s, err := d.checkedSlot(h)
	if err != nil {
		return location{}, err
	}
	prev := s.loc
	s.generation++
	s.loc = location{kind: locationAbsent}
	d.freelist = append(d.freelist, h.Index)
	return prev, nil
}

// lookup returns h's current location, or StaleHandleError if h's
// generation does not match the directory.
func (d *entityDirectory) lookup(h Handle) (location, error) {
	s, err := d.checkedSlot(h)
	if err != nil {
		return location{}, err
	}
	return s.loc, nil
}

// checkedSlot resolves h to its slot, verifying the generation.
func (d *entityDirectory) checkedSlot(h Handle) (*slot, error) {
	if int(h.Index) >= len(d.slots) {
		return nil, StaleHandleError{Handle: h}
	}
	s := &d.slots[h.Index]
	if s.generation != h.Generation {
		return nil, StaleHandleError{Handle: h}
	}
	return s, nil
}
