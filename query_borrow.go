package ecsdb

import (
	"iter"
	"reflect"
)

// borrowHandle is the acquired, rollback-capable set of channel locks
// backing one outstanding query. Acquisition walks plan.lockRequests()
// in their deterministic order (archetype id ascending, then channel
// ordinal ascending) and releases everything already held the instant
// one TryLock/TryRLock fails, so two queries can never deadlock against
// each other — spec.md §4.6's all-or-nothing acquisition.
type borrowHandle struct {
	w    *World
	bit  uint32
	held []lockRequest
}

func lockOne(r lockRequest) bool {
	col := r.arch.channels[r.channel]
	if r.access == Exclusive {
		return col.tryLock()
	}
	return col.tryRLock()
}

func unlockOne(r lockRequest) {
	col := r.arch.channels[r.channel]
	if r.access == Exclusive {
		col.unlock()
	} else {
		col.runlock()
	}
}

// acquireBorrow attempts every lock request in order, rolling back and
// returning BorrowConflictError on the first failure.
func acquireBorrow(w *World, reqs []lockRequest) (*borrowHandle, error) {
	bit := w.acquireLockBit()
	held := make([]lockRequest, 0, len(reqs))
	for _, r := range reqs {
		if !lockOne(r) {
			for i := len(held) - 1; i >= 0; i-- {
				unlockOne(held[i])
			}
			w.releaseLockBit(bit)
			return nil, BorrowConflictError{Type: typeNameOf(r.typeID)}
		}
		held = append(held, r)
	}
	return &borrowHandle{w: w, bit: bit, held: held}, nil
}

func (b *borrowHandle) release() {
	for i := len(b.held) - 1; i >= 0; i-- {
		unlockOne(b.held[i])
	}
	b.w.releaseLockBit(b.bit)
}

// queryCore drives chained iteration across a QueryPlan's matched
// archetypes (one cursor position at a time, skipping archetypes with
// no rows) and answers random-access component lookups by handle. It
// is the shared machinery behind every generated QueryN — the
// teacher's Cursor generalized to the planner's archetype-id-ordered
// archetype list and explicit channel ordinals.
type queryCore struct {
	w      *World
	plan   QueryPlan
	borrow *borrowHandle

	archIdx int
	row     int
}

func newQueryCore(w *World, plan QueryPlan, borrow *borrowHandle) *queryCore {
	return &queryCore{w: w, plan: plan, borrow: borrow, archIdx: -1, row: -1}
}

// next advances the cursor to the next matched row, returning false
// once every matched archetype is exhausted.
func (c *queryCore) next() bool {
	if c.archIdx == -1 {
		c.archIdx = 0
		c.row = -1
	}
	for {
		if c.archIdx >= len(c.plan.archplan) {
			return false
		}
		if c.row+1 < c.plan.archplan[c.archIdx].arch.rowCount() {
			c.row++
			return true
		}
		c.archIdx++
		c.row = -1
	}
}

func (c *queryCore) currentPlan() ArchetypePlan { return c.plan.archplan[c.archIdx] }

func (c *queryCore) currentHandle() Handle {
	return c.currentPlan().arch.entities[c.row]
}

// channelAt returns the current row's reflect.Value for the specIdx-th
// request in the query's tuple, or the zero Value if that request is
// an absent Optional on the current archetype.
func (c *queryCore) channelAt(specIdx int) reflect.Value {
	ch := c.currentPlan().channels[specIdx]
	if ch < 0 {
		return reflect.Value{}
	}
	return c.currentPlan().arch.channels[ch].at(c.row)
}

// release ends the borrow. Safe to call once per queryCore.
func (c *queryCore) release() { c.borrow.release() }

// entities is a range-over-func iterator yielding every matched row's
// handle, grounded on the teacher's iCursor.Entities()
// iter.Seq2[int, table.Table]. Draws from the same cursor state as
// next/channelAt — use either this or the Next/Get loop, not both.
func (c *queryCore) entities() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for c.next() {
			if !yield(c.currentHandle()) {
				return
			}
		}
	}
}

// getComponent resolves h's value for component id, restricted to
// this query's matched archetypes and request tuple — random access
// within query results, not just the current cursor position.
func (c *queryCore) getComponent(id ComponentTypeID) func(h Handle) (reflect.Value, error) {
	return func(h Handle) (reflect.Value, error) {
		loc, err := c.w.directory.lookup(h)
		if err != nil {
			return reflect.Value{}, err
		}
		for _, ap := range c.plan.archplan {
			if ap.archetypeID != loc.archetype {
				continue
			}
			for i, spec := range c.plan.specs {
				if spec.Type != id {
					continue
				}
				ch := ap.channels[i]
				if ch < 0 {
					return reflect.Value{}, NotInQueryError{Handle: h, Type: typeNameOf(id)}
				}
				return ap.arch.channels[ch].at(loc.row), nil
			}
			return reflect.Value{}, NotInQueryError{Handle: h, Type: typeNameOf(id)}
		}
		return reflect.Value{}, NotInQueryError{Handle: h, Type: typeNameOf(id)}
	}
}
