package ecsdb

import "fmt"

// StaleHandleError means a Handle's generation no longer matches the
// directory — the entity it named was despawned (or the handle was
// never placed).
type StaleHandleError struct {
	Handle Handle
}

func (e StaleHandleError) Error() string {
	return fmt.Sprintf("stale handle: %v", e.Handle)
}

// UnknownComponentError means a component lookup asked for a type not
// carried by the target entity.
type UnknownComponentError struct {
	Type string
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component: entity does not carry %s", e.Type)
}

// BorrowConflictError means a query could not acquire a channel lock
// without blocking. Type names the component whose channel was
// contested.
type BorrowConflictError struct {
	Type string
}

func (e BorrowConflictError) Error() string {
	return fmt.Sprintf("borrow conflict on component %s", e.Type)
}

// DuplicateRequirementError means a query's request tuple mentioned
// the same component type more than once.
type DuplicateRequirementError struct {
	Type string
}

func (e DuplicateRequirementError) Error() string {
	return fmt.Sprintf("duplicate requirement for component %s", e.Type)
}

// NotInQueryError means GetComponent was called on a query for a
// handle the query's plan does not match, or for a component type not
// in the query's request tuple.
type NotInQueryError struct {
	Handle Handle
	Type   string
}

func (e NotInQueryError) Error() string {
	return fmt.Sprintf("handle %v not matched by query for component %s", e.Handle, e.Type)
}

// NotCloneableError means CloneEntity was asked to clone an entity
// carrying a component type with no registered clone thunk.
type NotCloneableError struct {
	Type string
}

func (e NotCloneableError) Error() string {
	return fmt.Sprintf("component %s has no registered clone thunk", e.Type)
}

// MustRunExclusivelyError means a system requested exclusive world
// access but was scheduled with only shared access. It surfaces only
// through the system-runner collaborator (system.go).
type MustRunExclusivelyError struct {
	Name string
}

func (e MustRunExclusivelyError) Error() string {
	return fmt.Sprintf("system %q requires exclusive world access", e.Name)
}

// LockedWorldError means a structural mutation was attempted while a
// query borrow is outstanding on the same world.
type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is locked by an outstanding query borrow"
}
