package ecsdb

// SystemBorrow is one parameter of a system function: the component
// type it touches, by access kind. Unlike the generated QueryN family,
// a system's parameters are single-component — composing N such
// parameters through RunSystemN demonstrates the same all-or-nothing
// acquisition contract query_borrow.go builds on, without the two-dimensional
// arity explosion a fully general "system of arbitrary queries"
// signature would require (parameter count times components per
// parameter). Extending RunSystemN to a higher N is the same
// mechanical step as extending QueryN or BundleN.
type SystemBorrow[T any] struct {
	param Param
}

// Reads a system parameter with shared, required access.
func Reads[T any]() SystemBorrow[T] { return SystemBorrow[T]{param: Read()} }

// Writes a system parameter with exclusive, required access.
func Writes[T any]() SystemBorrow[T] { return SystemBorrow[T]{param: ReadWrite()} }

// RunSystem2 plans both parameters' single-component queries, acquires
// their lock requests as one all-or-nothing borrow (plan1's requests in
// their own order, then plan2's; the union is not re-sorted), and runs
// fn over every entity present in both matched sets only if every lock
// in the combined set is acquired.
// fn sees plain typed pointers already row-aligned per entity.
func RunSystem2[T1, T2 any](w *World, b1 SystemBorrow[T1], b2 SystemBorrow[T2], fn func(Handle, *T1, *T2)) error {
	specs1 := []requestSpec{{Type: ComponentID[T1](), Access: b1.param.Access, Presence: b1.param.Presence}}
	specs2 := []requestSpec{{Type: ComponentID[T2](), Access: b2.param.Access, Presence: b2.param.Presence}}

	plan1, err := planQuery(w.index, specs1, nil)
	if err != nil {
		return err
	}
	plan2, err := planQuery(w.index, specs2, nil)
	if err != nil {
		return err
	}

	// Concatenating plan1's and plan2's own (already archetype-id,
	// then channel-ordinal sorted) lists, rather than re-sorting the
	// union, still acquires non-blockingly via TryLock/TryRLock: no
	// attempt ever waits, so there is nothing for a fixed global order
	// to deadlock against. Ordering only needs to be deterministic
	// within a single plan's own acquisition.
	combined := append(plan1.lockRequests(), plan2.lockRequests()...)
	borrow, err := acquireBorrow(w, combined)
	if err != nil {
		return err
	}
	defer borrow.release()

	core1 := newQueryCore(w, plan1, nil)
	for core1.next() {
		h := core1.currentHandle()
		v1 := valuePtr[T1](core1.channelAt(0))
		v2, err := getComponentAs[T2](newQueryCore(w, plan2, nil), h)
		if err != nil {
			continue
		}
		fn(h, v1, v2)
	}
	return nil
}

// RunSystem3 is RunSystem2 generalized to three single-component
// parameters.
func RunSystem3[T1, T2, T3 any](w *World, b1 SystemBorrow[T1], b2 SystemBorrow[T2], b3 SystemBorrow[T3], fn func(Handle, *T1, *T2, *T3)) error {
	specs1 := []requestSpec{{Type: ComponentID[T1](), Access: b1.param.Access, Presence: b1.param.Presence}}
	specs2 := []requestSpec{{Type: ComponentID[T2](), Access: b2.param.Access, Presence: b2.param.Presence}}
	specs3 := []requestSpec{{Type: ComponentID[T3](), Access: b3.param.Access, Presence: b3.param.Presence}}

	plan1, err := planQuery(w.index, specs1, nil)
	if err != nil {
		return err
	}
	plan2, err := planQuery(w.index, specs2, nil)
	if err != nil {
		return err
	}
	plan3, err := planQuery(w.index, specs3, nil)
	if err != nil {
		return err
	}

	combined := append(append(plan1.lockRequests(), plan2.lockRequests()...), plan3.lockRequests()...)
	borrow, err := acquireBorrow(w, combined)
	if err != nil {
		return err
	}
	defer borrow.release()

	core1 := newQueryCore(w, plan1, nil)
	for core1.next() {
		h := core1.currentHandle()
		v1 := valuePtr[T1](core1.channelAt(0))
		v2, err := getComponentAs[T2](newQueryCore(w, plan2, nil), h)
		if err != nil {
			continue
		}
		v3, err := getComponentAs[T3](newQueryCore(w, plan3, nil), h)
		if err != nil {
			continue
		}
		fn(h, v1, v2, v3)
	}
	return nil
}

// RunExclusive runs fn with the world guaranteed to have no other
// outstanding borrow, failing with MustRunExclusivelyError if one is
// already held — the minimal demonstration of the exclusive-system
// contract a full scheduler would enforce across an entire tick; this
// library does not ship a scheduler (spec's Non-goals place tick
// orchestration out of core scope).
func RunExclusive(w *World, name string, fn func()) error {
	if w.Locked() {
		return MustRunExclusivelyError{Name: name}
	}
	fn()
	return nil
}
