// Code generated by hand following the pack's per-arity generated-family
// pattern (see Query/Query2/Query3 in the edwinsyarief-lazyecs reference);
// arities 1..Config.QueryArity cover the generated typed query tuples.
// Each QueryN holds its own borrowHandle: Release must be called exactly
// once per query, the way the teacher's Cursor.Reset ends one borrow.
package ecsdb

import (
	"iter"
	"reflect"
)

// Param is one slot of a generated query's request tuple: the access
// kind and presence the caller wants for that component type.
type Param struct {
	Access   AccessKind
	Presence Presence
}

// Read requests shared, required access — the &T of spec.md §4.5.
func Read() Param { return Param{Access: Shared, Presence: Required} }

// ReadWrite requests exclusive, required access — the &mut T of spec.md §4.5.
func ReadWrite() Param { return Param{Access: Exclusive, Presence: Required} }

// MaybeRead requests shared, optional access: the slot is present in the
// result whenever the matched archetype carries the type, nil otherwise,
// and never drives archetype selection.
func MaybeRead() Param { return Param{Access: Shared, Presence: OptionalPresence} }

// MaybeReadWrite is MaybeRead with exclusive access.
func MaybeReadWrite() Param { return Param{Access: Exclusive, Presence: OptionalPresence} }

func valuePtr[T any](v reflect.Value) *T {
	if !v.IsValid() {
		return nil
	}
	return v.Addr().Interface().(*T)
}

func getComponentAs[T any](core *queryCore, h Handle) (*T, error) {
	v, err := core.getComponent(ComponentID[T]())(h)
	if err != nil {
		return nil, err
	}
	return v.Addr().Interface().(*T), nil
}

// Query1 is a generated 1-component query handle.
type Query1[T1 any] struct {
	core *queryCore
}

// NewQuery1 plans and atomically borrows a 1-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery1[T1 any](w *World, p1 Param, without ...ComponentTypeID) (*Query1[T1], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query1[T1]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query1[T1]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query1[T1]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointer; nil iff the slot
// is an absent Optional on the current archetype.
func (q *Query1[T1]) Get() *T1 {
	v1 := q.core.channelAt(0)
	return valuePtr[T1](v1)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query1[T1]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query1[T1]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query1[T1]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// Query2 is a generated 2-component query handle.
type Query2[T1 any, T2 any] struct {
	core *queryCore
}

// NewQuery2 plans and atomically borrows a 2-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery2[T1 any, T2 any](w *World, p1 Param, p2 Param, without ...ComponentTypeID) (*Query2[T1, T2], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
		{Type: ComponentID[T2](), Access: p2.Access, Presence: p2.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query2[T1, T2]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query2[T1, T2]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query2[T1, T2]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointers, in tuple order;
// a pointer is nil iff that slot is an absent Optional on the current
// archetype.
func (q *Query2[T1, T2]) Get() (*T1, *T2) {
	v1 := q.core.channelAt(0)
	v2 := q.core.channelAt(1)
	return valuePtr[T1](v1), valuePtr[T2](v2)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query2[T1, T2]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query2[T1, T2]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query2[T1, T2]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// GetComponent2 resolves h's component of type T2, restricted to
// this query's matched archetypes and request tuple.
func (q *Query2[T1, T2]) GetComponent2(h Handle) (*T2, error) {
	return getComponentAs[T2](q.core, h)
}

// Query3 is a generated 3-component query handle.
type Query3[T1 any, T2 any, T3 any] struct {
	core *queryCore
}

// NewQuery3 plans and atomically borrows a 3-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery3[T1 any, T2 any, T3 any](w *World, p1 Param, p2 Param, p3 Param, without ...ComponentTypeID) (*Query3[T1, T2, T3], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
		{Type: ComponentID[T2](), Access: p2.Access, Presence: p2.Presence},
		{Type: ComponentID[T3](), Access: p3.Access, Presence: p3.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query3[T1, T2, T3]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query3[T1, T2, T3]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query3[T1, T2, T3]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointers, in tuple order;
// a pointer is nil iff that slot is an absent Optional on the current
// archetype.
func (q *Query3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	v1 := q.core.channelAt(0)
	v2 := q.core.channelAt(1)
	v3 := q.core.channelAt(2)
	return valuePtr[T1](v1), valuePtr[T2](v2), valuePtr[T3](v3)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query3[T1, T2, T3]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query3[T1, T2, T3]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query3[T1, T2, T3]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// GetComponent2 resolves h's component of type T2, restricted to
// this query's matched archetypes and request tuple.
func (q *Query3[T1, T2, T3]) GetComponent2(h Handle) (*T2, error) {
	return getComponentAs[T2](q.core, h)
}

// GetComponent3 resolves h's component of type T3, restricted to
// this query's matched archetypes and request tuple.
func (q *Query3[T1, T2, T3]) GetComponent3(h Handle) (*T3, error) {
	return getComponentAs[T3](q.core, h)
}

// Query4 is a generated 4-component query handle.
type Query4[T1 any, T2 any, T3 any, T4 any] struct {
	core *queryCore
}

// NewQuery4 plans and atomically borrows a 4-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery4[T1 any, T2 any, T3 any, T4 any](w *World, p1 Param, p2 Param, p3 Param, p4 Param, without ...ComponentTypeID) (*Query4[T1, T2, T3, T4], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
		{Type: ComponentID[T2](), Access: p2.Access, Presence: p2.Presence},
		{Type: ComponentID[T3](), Access: p3.Access, Presence: p3.Presence},
		{Type: ComponentID[T4](), Access: p4.Access, Presence: p4.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query4[T1, T2, T3, T4]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query4[T1, T2, T3, T4]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query4[T1, T2, T3, T4]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointers, in tuple order;
// a pointer is nil iff that slot is an absent Optional on the current
// archetype.
func (q *Query4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	v1 := q.core.channelAt(0)
	v2 := q.core.channelAt(1)
	v3 := q.core.channelAt(2)
	v4 := q.core.channelAt(3)
	return valuePtr[T1](v1), valuePtr[T2](v2), valuePtr[T3](v3), valuePtr[T4](v4)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query4[T1, T2, T3, T4]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query4[T1, T2, T3, T4]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query4[T1, T2, T3, T4]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// GetComponent2 resolves h's component of type T2, restricted to
// this query's matched archetypes and request tuple.
func (q *Query4[T1, T2, T3, T4]) GetComponent2(h Handle) (*T2, error) {
	return getComponentAs[T2](q.core, h)
}

// GetComponent3 resolves h's component of type T3, restricted to
// this query's matched archetypes and request tuple.
func (q *Query4[T1, T2, T3, T4]) GetComponent3(h Handle) (*T3, error) {
	return getComponentAs[T3](q.core, h)
}

// GetComponent4 resolves h's component of type T4, restricted to
// this query's matched archetypes and request tuple.
func (q *Query4[T1, T2, T3, T4]) GetComponent4(h Handle) (*T4, error) {
	return getComponentAs[T4](q.core, h)
}

// Query5 is a generated 5-component query handle.
type Query5[T1 any, T2 any, T3 any, T4 any, T5 any] struct {
	core *queryCore
}

// NewQuery5 plans and atomically borrows a 5-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery5[T1 any, T2 any, T3 any, T4 any, T5 any](w *World, p1 Param, p2 Param, p3 Param, p4 Param, p5 Param, without ...ComponentTypeID) (*Query5[T1, T2, T3, T4, T5], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
		{Type: ComponentID[T2](), Access: p2.Access, Presence: p2.Presence},
		{Type: ComponentID[T3](), Access: p3.Access, Presence: p3.Presence},
		{Type: ComponentID[T4](), Access: p4.Access, Presence: p4.Presence},
		{Type: ComponentID[T5](), Access: p5.Access, Presence: p5.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query5[T1, T2, T3, T4, T5]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query5[T1, T2, T3, T4, T5]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query5[T1, T2, T3, T4, T5]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointers, in tuple order;
// a pointer is nil iff that slot is an absent Optional on the current
// archetype.
func (q *Query5[T1, T2, T3, T4, T5]) Get() (*T1, *T2, *T3, *T4, *T5) {
	v1 := q.core.channelAt(0)
	v2 := q.core.channelAt(1)
	v3 := q.core.channelAt(2)
	v4 := q.core.channelAt(3)
	v5 := q.core.channelAt(4)
	return valuePtr[T1](v1), valuePtr[T2](v2), valuePtr[T3](v3), valuePtr[T4](v4), valuePtr[T5](v5)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query5[T1, T2, T3, T4, T5]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query5[T1, T2, T3, T4, T5]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query5[T1, T2, T3, T4, T5]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// GetComponent2 resolves h's component of type T2, restricted to
// this query's matched archetypes and request tuple.
func (q *Query5[T1, T2, T3, T4, T5]) GetComponent2(h Handle) (*T2, error) {
	return getComponentAs[T2](q.core, h)
}

// GetComponent3 resolves h's component of type T3, restricted to
// this query's matched archetypes and request tuple.
func (q *Query5[T1, T2, T3, T4, T5]) GetComponent3(h Handle) (*T3, error) {
	return getComponentAs[T3](q.core, h)
}

// GetComponent4 resolves h's component of type T4, restricted to
// this query's matched archetypes and request tuple.
func (q *Query5[T1, T2, T3, T4, T5]) GetComponent4(h Handle) (*T4, error) {
	return getComponentAs[T4](q.core, h)
}

// GetComponent5 resolves h's component of type T5, restricted to
// this query's matched archetypes and request tuple.
func (q *Query5[T1, T2, T3, T4, T5]) GetComponent5(h Handle) (*T5, error) {
	return getComponentAs[T5](q.core, h)
}

// Query6 is a generated 6-component query handle.
type Query6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any] struct {
	core *queryCore
}

// NewQuery6 plans and atomically borrows a 6-component query. It
// fails with BorrowConflictError if any required channel is already
// held, and with DuplicateRequirementError if a type appears twice
// across the request tuple and without filters.
func NewQuery6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](w *World, p1 Param, p2 Param, p3 Param, p4 Param, p5 Param, p6 Param, without ...ComponentTypeID) (*Query6[T1, T2, T3, T4, T5, T6], error) {
	specs := []requestSpec{
		{Type: ComponentID[T1](), Access: p1.Access, Presence: p1.Presence},
		{Type: ComponentID[T2](), Access: p2.Access, Presence: p2.Presence},
		{Type: ComponentID[T3](), Access: p3.Access, Presence: p3.Presence},
		{Type: ComponentID[T4](), Access: p4.Access, Presence: p4.Presence},
		{Type: ComponentID[T5](), Access: p5.Access, Presence: p5.Presence},
		{Type: ComponentID[T6](), Access: p6.Access, Presence: p6.Presence},
	}
	plan, err := planQuery(w.index, specs, without)
	if err != nil {
		return nil, err
	}
	borrow, err := acquireBorrow(w, plan.lockRequests())
	if err != nil {
		return nil, err
	}
	return &Query6[T1, T2, T3, T4, T5, T6]{core: newQueryCore(w, plan, borrow)}, nil
}

// Next advances to the next matched row, returning false once exhausted.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Next() bool { return q.core.next() }

// Entity returns the current row's entity handle.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Entity() Handle { return q.core.currentHandle() }

// Get returns the current row's component pointers, in tuple order;
// a pointer is nil iff that slot is an absent Optional on the current
// archetype.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Get() (*T1, *T2, *T3, *T4, *T5, *T6) {
	v1 := q.core.channelAt(0)
	v2 := q.core.channelAt(1)
	v3 := q.core.channelAt(2)
	v4 := q.core.channelAt(3)
	v5 := q.core.channelAt(4)
	v6 := q.core.channelAt(5)
	return valuePtr[T1](v1), valuePtr[T2](v2), valuePtr[T3](v3), valuePtr[T4](v4), valuePtr[T5](v5), valuePtr[T6](v6)
}

// Release ends the query's borrow. Must be called exactly once.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Release() { q.core.release() }

// Entities is a range-over-func alternative to the Next/Get loop,
// yielding each matched row's handle in turn.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Entities() iter.Seq[Handle] { return q.core.entities() }

// GetComponent1 resolves h's component of type T1, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent1(h Handle) (*T1, error) {
	return getComponentAs[T1](q.core, h)
}

// GetComponent2 resolves h's component of type T2, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent2(h Handle) (*T2, error) {
	return getComponentAs[T2](q.core, h)
}

// GetComponent3 resolves h's component of type T3, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent3(h Handle) (*T3, error) {
	return getComponentAs[T3](q.core, h)
}

// GetComponent4 resolves h's component of type T4, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent4(h Handle) (*T4, error) {
	return getComponentAs[T4](q.core, h)
}

// GetComponent5 resolves h's component of type T5, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent5(h Handle) (*T5, error) {
	return getComponentAs[T5](q.core, h)
}

// GetComponent6 resolves h's component of type T6, restricted to
// this query's matched archetypes and request tuple.
func (q *Query6[T1, T2, T3, T4, T5, T6]) GetComponent6(h Handle) (*T6, error) {
	return getComponentAs[T6](q.core, h)
}

