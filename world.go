package ecsdb

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// World is the top-level data engine: the archetype index, the entity
// directory, and the outstanding-borrow bookkeeping that makes
// structural mutation and query iteration mutually exclusive without
// blocking. Grounded on the teacher's storage struct (locks
// mask.Mask256, schema, archetypes, operationQueue), generalized to
// the explicit reserved/placed/absent entity lifecycle and the
// cardinality-driven ArchetypeIndex the spec requires.
type World struct {
	index     *archetypeIndex
	directory *entityDirectory
	queue     *operationQueue

	lockMu   sync.Mutex
	locks    mask.Mask256
	freeBits []uint32
	nextBit  uint32
}

// New creates an empty World.
func New() *World {
	return &World{
		index:     newArchetypeIndex(),
		directory: newEntityDirectory(),
		queue:     newOperationQueue(),
	}
}

// Locked reports whether any query borrow is currently outstanding on
// w. Structural mutations (Spawn, Despawn, AddComponent,
// RemoveComponent) fail with LockedWorldError while this holds —
// callers defer with the EnqueueX family instead.
func (w *World) Locked() bool {
	w.lockMu.Lock()
	defer w.lockMu.Unlock()
	return !w.locks.IsEmpty()
}

// acquireLockBit marks one outstanding borrow, returning the bit to
// present at release. Mirrors the teacher's storage.AddLock.
func (w *World) acquireLockBit() uint32 {
	w.lockMu.Lock()
	defer w.lockMu.Unlock()

	var bit uint32
	if n := len(w.freeBits); n > 0 {
		bit = w.freeBits[n-1]
		w.freeBits = w.freeBits[:n-1]
	} else {
		bit = w.nextBit
		w.nextBit++
	}
	w.locks.Mark(bit)
	return bit
}

// releaseLockBit clears bit. When it was the last outstanding borrow,
// the deferred operation queue drains immediately, mirroring the
// teacher's storage.RemoveLock. Queue processing is expected to always
// succeed; a failure means an invariant the spec leaves the caller
// responsible for (racing a despawn against a queued mutation of the
// same handle) was violated, so it panics rather than surfacing a
// silently-partial drain.
func (w *World) releaseLockBit(bit uint32) {
	w.lockMu.Lock()
	w.locks.Unmark(bit)
	empty := w.locks.IsEmpty()
	w.freeBits = append(w.freeBits, bit)
	w.lockMu.Unlock()

	if empty {
		if err := w.queue.processAll(w); err != nil {
			panic(bark.AddTrace(err))
		}
	}
}

// Reserve allocates a Handle without placing it into any archetype.
// The handle is valid (directory.lookup succeeds) but carries no
// components until placeReserved runs — via Spawn/EnqueueSpawn, or a
// caller-assembled bundle applied later with SpawnReserved.
func (w *World) Reserve() Handle {
	return w.directory.reserve()
}

// SpawnReserved places a previously Reserve()d handle into the
// archetype for b's components. It is the caller's responsibility to
// call this at most once per reserved handle.
func (w *World) SpawnReserved(h Handle, b Bundle) error {
	sig, err := NewSignature(b.ids()...)
	if err != nil {
		return err
	}
	return w.placeReserved(h, sig, b)
}

func (w *World) placeReserved(h Handle, sig Signature, b Bundle) error {
	arch := w.index.findOrCreate(sig)
	values := b.valuesInSignatureOrder(sig)
	row := arch.pushRow(h, values)
	return w.directory.finalize(h, arch.id, row)
}

// Spawn creates a new entity carrying b's components, returning its
// handle. It fails with LockedWorldError while a query borrow is
// outstanding — use EnqueueSpawn to defer instead.
func (w *World) Spawn(b Bundle) (Handle, error) {
	if w.Locked() {
		return Handle{}, LockedWorldError{}
	}
	sig, err := NewSignature(b.ids()...)
	if err != nil {
		return Handle{}, err
	}
	h := w.directory.reserve()
	if err := w.placeReserved(h, sig, b); err != nil {
		return Handle{}, err
	}
	return h, nil
}

// EnqueueSpawn reserves a handle immediately (safe under an
// outstanding borrow) and defers placement until the world next
// unlocks.
func (w *World) EnqueueSpawn(b Bundle) (Handle, error) {
	sig, err := NewSignature(b.ids()...)
	if err != nil {
		return Handle{}, err
	}
	h := w.directory.reserve()
	w.queue.enqueue(spawnOperation{handle: h, sig: sig, bundle: b})
	return h, nil
}

// Despawn removes h's entity, freeing its handle for reuse with a
// bumped generation. It fails with LockedWorldError while a query
// borrow is outstanding — use EnqueueDespawn to defer instead.
func (w *World) Despawn(h Handle) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	return w.despawnNow(h)
}

// EnqueueDespawn validates h now (StaleHandleError fails fast) and
// defers the actual removal until the world next unlocks.
func (w *World) EnqueueDespawn(h Handle) error {
	if _, err := w.directory.lookup(h); err != nil {
		return err
	}
	w.queue.enqueue(despawnOperation{handle: h})
	return nil
}

func (w *World) despawnNow(h Handle) error {
	loc, err := w.directory.lookup(h)
	if err != nil {
		return err
	}
	if loc.kind != locationPlaced {
		return StaleHandleError{Handle: h}
	}
	arch := w.index.archetypeByID(loc.archetype)
	moved, movedSelf := arch.swapRemoveRow(loc.row)
	if !movedSelf {
		if err := w.directory.setLocation(moved, arch.id, loc.row); err != nil {
			return err
		}
	}
	_, err = w.directory.free(h)
	return err
}

// AddComponent adds value as h's component of type T, migrating h's
// row to the archetype for the enlarged signature (or overwriting in
// place if T is already present). It fails with LockedWorldError while
// a query borrow is outstanding — use EnqueueAddComponent to defer.
func AddComponent[T any](w *World, h Handle, value T) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	return addComponentNow(w, h, value)
}

// EnqueueAddComponent validates h now and defers the migration until
// the world next unlocks.
func EnqueueAddComponent[T any](w *World, h Handle, value T) error {
	if _, err := w.directory.lookup(h); err != nil {
		return err
	}
	w.queue.enqueue(addComponentOperation[T]{handle: h, value: value})
	return nil
}

func addComponentNow[T any](w *World, h Handle, value T) error {
	loc, err := w.directory.lookup(h)
	if err != nil {
		return err
	}
	if loc.kind != locationPlaced {
		return StaleHandleError{Handle: h}
	}
	id := ComponentID[T]()
	src := w.index.archetypeByID(loc.archetype)
	row := loc.row

	if ch := src.channelIndex(id); ch >= 0 {
		*columnValueAt[T](src.channels[ch], row) = value
		return nil
	}

	newSig, insertPos := src.signature.withAdded(id)
	dst := w.index.findOrCreateFrom(newSig, src)
	dstChannels := make([]int, src.signature.Len())
	for i, cid := range src.signature.IDs() {
		dstChannels[i] = dst.channelIndex(cid)
	}

	src.migrateCommonChannels(row, dst, dstChannels)
	dst.channels[insertPos].push(reflect.ValueOf(value))
	dstRow := dst.appendHandle(h)
	fireColumnGrow(id, dst.rowCount())

	moved, movedSelf := src.swapRemoveEntityOnly(row)
	if !movedSelf {
		if err := w.directory.setLocation(moved, src.id, row); err != nil {
			return err
		}
	}
	return w.directory.setLocation(h, dst.id, dstRow)
}

// RemoveComponent removes h's component of type T, migrating h's row
// to the archetype for the shrunken signature, and returns the
// removed value. It fails with LockedWorldError while a query borrow
// is outstanding, and with UnknownComponentError if h does not carry
// T — use EnqueueRemoveComponent to defer instead of the former.
func RemoveComponent[T any](w *World, h Handle) (T, error) {
	var zero T
	if w.Locked() {
		return zero, LockedWorldError{}
	}
	return removeComponentNow[T](w, h)
}

// EnqueueRemoveComponent validates h now and defers the migration
// until the world next unlocks. The removed value is discarded.
func EnqueueRemoveComponent[T any](w *World, h Handle) error {
	if _, err := w.directory.lookup(h); err != nil {
		return err
	}
	w.queue.enqueue(removeComponentOperation[T]{handle: h})
	return nil
}

func removeComponentNow[T any](w *World, h Handle) (T, error) {
	var zero T
	loc, err := w.directory.lookup(h)
	if err != nil {
		return zero, err
	}
	if loc.kind != locationPlaced {
		return zero, StaleHandleError{Handle: h}
	}
	id := ComponentID[T]()
	src := w.index.archetypeByID(loc.archetype)
	row := loc.row

	ch := src.channelIndex(id)
	if ch < 0 {
		return zero, UnknownComponentError{Type: typeNameOf(id)}
	}
	removed := *columnValueAt[T](src.channels[ch], row)

	newSig := src.signature.withRemoved(id)
	dst := w.index.findOrCreateFrom(newSig, src)
	dstChannels := make([]int, src.signature.Len())
	for i, cid := range src.signature.IDs() {
		if cid == id {
			dstChannels[i] = -1
			continue
		}
		dstChannels[i] = dst.channelIndex(cid)
	}

	src.migrateCommonChannels(row, dst, dstChannels)
	fireColumnShrink(id, src.channels[ch].len())
	dstRow := dst.appendHandle(h)

	moved, movedSelf := src.swapRemoveEntityOnly(row)
	if !movedSelf {
		if err := w.directory.setLocation(moved, src.id, row); err != nil {
			return zero, err
		}
	}
	if err := w.directory.setLocation(h, dst.id, dstRow); err != nil {
		return zero, err
	}
	return removed, nil
}

// ComponentMutGuard holds exclusive access to one entity's component
// of type T, acquired via GetComponentMut. Go has no destructors, so
// the hold is explicit: callers must call Release when done, the way
// a query borrow's Release ends its channel locks.
type ComponentMutGuard[T any] struct {
	ptr *T
	col *column
}

// Get returns the held pointer, valid until Release.
func (g *ComponentMutGuard[T]) Get() *T { return g.ptr }

// Release ends the hold, unlocking the underlying channel.
func (g *ComponentMutGuard[T]) Release() { g.col.unlock() }

// GetComponentMut acquires exclusive access to h's component of type
// T outside of a query, failing non-blockingly with BorrowConflictError
// if the channel is already held (by a query or another
// GetComponentMut). The returned guard's Release must be called
// exactly once.
func GetComponentMut[T any](w *World, h Handle) (*ComponentMutGuard[T], error) {
	loc, err := w.directory.lookup(h)
	if err != nil {
		return nil, err
	}
	if loc.kind != locationPlaced {
		return nil, StaleHandleError{Handle: h}
	}
	id := ComponentID[T]()
	arch := w.index.archetypeByID(loc.archetype)
	ch := arch.channelIndex(id)
	if ch < 0 {
		return nil, UnknownComponentError{Type: typeNameOf(id)}
	}
	col := arch.channels[ch]
	if !col.tryLock() {
		return nil, BorrowConflictError{Type: typeNameOf(id)}
	}
	return &ComponentMutGuard[T]{ptr: columnValueAt[T](col, loc.row), col: col}, nil
}
