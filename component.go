package ecsdb

import (
	"reflect"
	"sync"
)

// ComponentTypeID is a process-stable identifier for a registered
// component type. It is comparable, usable as a map key, and totally
// ordered (lower IDs were registered first), which lets signatures be
// sorted canonically.
type ComponentTypeID uint32

// maxComponentTypes bounds the number of distinct component types a
// single process may register. It matches the width of the signature
// bitmask (mask.Mask256 is a 256-bit set).
const maxComponentTypes = 256

var componentRegistry = struct {
	mu       sync.RWMutex
	typeToID map[reflect.Type]ComponentTypeID
	idToType []reflect.Type
	idToName []string
}{
	typeToID: make(map[reflect.Type]ComponentTypeID, 64),
}

// RegisterComponent registers T as a component type, returning its
// stable ID. Calling it again for the same T returns the same ID —
// registration is idempotent, the way the teacher's schema.Register
// treats re-registering an already-known element type as a no-op.
func RegisterComponent[T any]() ComponentTypeID {
	var zero T
	t := reflect.TypeOf(zero)

	componentRegistry.mu.RLock()
	if id, ok := componentRegistry.typeToID[t]; ok {
		componentRegistry.mu.RUnlock()
		return id
	}
	componentRegistry.mu.RUnlock()

	componentRegistry.mu.Lock()
	defer componentRegistry.mu.Unlock()
	if id, ok := componentRegistry.typeToID[t]; ok {
		return id
	}
	if len(componentRegistry.idToType) >= maxComponentTypes {
		panic("ecsdb: maximum number of component types exceeded")
	}
	id := ComponentTypeID(len(componentRegistry.idToType))
	componentRegistry.typeToID[t] = id
	componentRegistry.idToType = append(componentRegistry.idToType, t)
	componentRegistry.idToName = append(componentRegistry.idToName, t.String())
	return id
}

// ComponentID returns the ID for an already-registered component
// type T, panicking if T was never registered. Mirrors the teacher's
// expectation that component identity is established up front.
func ComponentID[T any]() ComponentTypeID {
	var zero T
	t := reflect.TypeOf(zero)
	componentRegistry.mu.RLock()
	defer componentRegistry.mu.RUnlock()
	id, ok := componentRegistry.typeToID[t]
	if !ok {
		panic("ecsdb: component type " + t.String() + " not registered")
	}
	return id
}

// typeNameOf returns the diagnostic name for a component type ID,
// used by error values so they are actionable without inspecting the
// world.
func typeNameOf(id ComponentTypeID) string {
	componentRegistry.mu.RLock()
	defer componentRegistry.mu.RUnlock()
	if int(id) < len(componentRegistry.idToName) {
		return componentRegistry.idToName[id]
	}
	return "<unknown component>"
}

func reflectTypeOf(id ComponentTypeID) reflect.Type {
	componentRegistry.mu.RLock()
	defer componentRegistry.mu.RUnlock()
	return componentRegistry.idToType[id]
}
