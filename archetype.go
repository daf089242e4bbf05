package ecsdb

import "reflect"

// archetypeID identifies an archetype for the lifetime of a world.
// Archetypes are created lazily and never destroyed, so ids remain
// stable — callers may cache them (ArchetypeIndex does).
type archetypeID uint32

// archetype is an ordered set of columns sharing a common component
// signature, plus the entity-handle column. It is the Archetype of
// the spec.
type archetype struct {
	id        archetypeID
	signature Signature
	channels  []*column // aligned with signature.IDs()
	entities  []Handle
}

func newArchetype(id archetypeID, sig Signature, channelTypes []reflect.Type) *archetype {
	channels := make([]*column, len(channelTypes))
	for i, t := range channelTypes {
		channels[i] = newColumn(t)
	}
	return &archetype{id: id, signature: sig, channels: channels}
}

// newArchetypeFromChannels builds an archetype from already-constructed
// columns, used by archetypeIndex.findOrCreateFrom when some channels
// are cloned from a source archetype via column.newEmptyOfSameType()
// rather than built fresh from the registry.
func newArchetypeFromChannels(id archetypeID, sig Signature, channels []*column) *archetype {
	return &archetype{id: id, signature: sig, channels: channels}
}

func (a *archetype) rowCount() int { return len(a.entities) }

// channelIndex returns the channel ordinal for id within a's
// signature, or -1 if a does not carry it.
func (a *archetype) channelIndex(id ComponentTypeID) int {
	return a.signature.ChannelOf(id)
}

// pushRow appends one row: values must align 1:1, in order, with
// a.signature.IDs(). It returns the new row index. Fires
// Config.Events.OnColumnGrow once per channel.
func (a *archetype) pushRow(h Handle, values []reflect.Value) int {
	for i, v := range values {
		a.channels[i].push(v)
	}
	a.entities = append(a.entities, h)
	row := len(a.entities) - 1
	for _, id := range a.signature.IDs() {
		fireColumnGrow(id, a.rowCount())
	}
	return row
}

// swapRemoveRow removes row from every channel and the entity column.
// It returns the handle that was moved into row to keep the columns
// dense (the previous last row), and movedSelf=true when the removed
// row already was the last row, in which case no directory fixup is
// needed for a displaced handle. Fires Config.Events.OnColumnShrink
// once per channel.
func (a *archetype) swapRemoveRow(row int) (moved Handle, movedSelf bool) {
	last := len(a.entities) - 1
	movedHandle := a.entities[last]
	for _, ch := range a.channels {
		ch.swapRemove(row)
	}
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	for _, id := range a.signature.IDs() {
		fireColumnShrink(id, a.rowCount())
	}
	if row == last {
		return Handle{}, true
	}
	return movedHandle, false
}

// migrateCommonChannels moves row's values for every source channel
// into the destination channel named by dstChannel (by ordinal;
// dstChannel[i] == -1 means "drop, do not carry to dst" — used by
// remove_component for the channel being removed). It leaves a's
// component channels one row shorter but does not touch either
// archetype's entity column; callers finish the move themselves so
// that the newly added/removed component and the entity handle can be
// sequenced correctly (see World.AddComponent / RemoveComponent).
func (a *archetype) migrateCommonChannels(row int, dst *archetype, dstChannel []int) {
	for i, d := range dstChannel {
		if d < 0 {
			a.channels[i].swapRemove(row)
			continue
		}
		a.channels[i].moveRowTo(row, dst.channels[d])
	}
}

// appendHandle appends h to the entity column only, returning its row.
func (a *archetype) appendHandle(h Handle) int {
	a.entities = append(a.entities, h)
	return len(a.entities) - 1
}

// swapRemoveEntityOnly mirrors swapRemoveRow but touches only the
// entity column, for use after migrateCommonChannels has already
// shrunk every component channel.
func (a *archetype) swapRemoveEntityOnly(row int) (moved Handle, movedSelf bool) {
	last := len(a.entities) - 1
	movedHandle := a.entities[last]
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	if row == last {
		return Handle{}, true
	}
	return movedHandle, false
}
