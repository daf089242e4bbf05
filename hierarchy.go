package ecsdb

func init() {
	RegisterComponent[Parent]()
}

// Parent is the supplemented parent/child relationship component,
// grounded on the teacher's entity.relationships (parent, onDestroy)
// tracking, generalized into an ordinary component so the hierarchy
// lives in regular archetype storage rather than a side table.
type Parent struct {
	Handle Handle
}

// SetParent records that child is parented by parent, adding or
// overwriting child's Parent component.
func SetParent(w *World, child, parent Handle) error {
	return AddComponent(w, child, Parent{Handle: parent})
}

// ClearParent removes child's Parent component, if any.
func ClearParent(w *World, child Handle) error {
	_, err := RemoveComponent[Parent](w, child)
	return err
}

// children returns every live entity whose Parent component names h,
// by scanning every archetype carrying a Parent column. Hierarchies
// are supplementary to the core engine, not indexed separately, so
// this is the one place in the package that pays for a full archetype
// scan rather than a planned query.
func (w *World) children(h Handle) []Handle {
	parentID := ComponentID[Parent]()
	var out []Handle
	for _, arch := range w.index.all {
		ch := arch.channelIndex(parentID)
		if ch < 0 {
			continue
		}
		for row := 0; row < arch.rowCount(); row++ {
			p := *columnValueAt[Parent](arch.channels[ch], row)
			if p.Handle == h {
				out = append(out, arch.entities[row])
			}
		}
	}
	return out
}

// DespawnRecursive despawns h and every descendant in its Parent
// subtree, depth-first. The source this spec was distilled from
// recursed on the parent instead of the child subtree when cascading
// a destroy; this corrects that and despawns children, matching the
// behavior an entity hierarchy actually needs. It fails with
// LockedWorldError while a query borrow is outstanding.
func (w *World) DespawnRecursive(h Handle) error {
	if w.Locked() {
		return LockedWorldError{}
	}
	for _, c := range w.children(h) {
		if err := w.DespawnRecursive(c); err != nil {
			return err
		}
	}
	return w.despawnNow(h)
}
