package ecsdb

// ColumnEvents lets a caller observe column-level structural changes
// (component added/removed from an archetype's storage), mirroring the
// teacher's table.TableEvents hook. Any field may be left nil; World
// calls only the hooks that are set.
type ColumnEvents struct {
	// OnColumnGrow fires after a column gains a row for component id.
	OnColumnGrow func(id ComponentTypeID, archetypeRowCount int)
	// OnColumnShrink fires after a column loses a row for component id.
	OnColumnShrink func(id ComponentTypeID, archetypeRowCount int)
}

// config holds the package-level tunables spec.md §6 and §4 name as
// external constants rather than per-call parameters: the bundle arity
// ceiling and the generated query-tuple arity ceiling, plus the
// optional structural-change event hooks. Grounded on the teacher's
// config.go package-level Config singleton.
type config struct {
	// BundleArity is the maximum number of components a single Bundle
	// (or NewBundle call) may carry. The generated BundleN family in
	// bundle_generated.go covers 1..BundleArity.
	BundleArity int
	// QueryArity is the maximum number of component requests a single
	// generated QueryN may carry. The generated QueryN family in
	// query_generated.go covers 1..QueryArity.
	QueryArity int
	// Events, when non-nil, is notified of column structural changes.
	Events *ColumnEvents
}

// Config is the package-level tunable singleton. It is not
// goroutine-safe to mutate once a World is in use, matching the
// teacher's own config.go contract.
var Config = config{
	BundleArity: 12,
	QueryArity:  6,
}

// SetColumnEvents configures the column structural-change callbacks,
// mirroring the teacher's config.go SetTableEvents.
func (c *config) SetColumnEvents(e ColumnEvents) {
	c.Events = &e
}

// fireColumnGrow and fireColumnShrink are the call sites Config.Events
// actually feeds: archetype.pushRow/swapRemoveRow (Spawn/Despawn) and
// World's add/remove-component migration (world.go).
func fireColumnGrow(id ComponentTypeID, archetypeRowCount int) {
	if Config.Events != nil && Config.Events.OnColumnGrow != nil {
		Config.Events.OnColumnGrow(id, archetypeRowCount)
	}
}

func fireColumnShrink(id ComponentTypeID, archetypeRowCount int) {
	if Config.Events != nil && Config.Events.OnColumnShrink != nil {
		Config.Events.OnColumnShrink(id, archetypeRowCount)
	}
}
