/*
Package ecsdb provides an archetypal Entity-Component-System (ECS) data
engine: an in-memory container that stores heterogeneous records
("entities") as tuples of typed values ("components"), groups entities
by their exact component signature into tightly packed column stores
("archetypes"), and exposes typed multi-column iteration ("queries")
with safe concurrent read/write discipline.

Core Concepts:

  - Handle: a generational identifier for an entity, stable across
    structural mutation.
  - Component: any Go type registered with RegisterComponent.
  - Archetype: a columnar store for every entity sharing an exact
    component signature.
  - Query: a statically typed request for one or more components,
    planned against the world's archetypes and borrowed non-blockingly.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	w := ecsdb.New()
	posID := ecsdb.RegisterComponent[Position]()
	velID := ecsdb.RegisterComponent[Velocity]()

	h, _ := w.Spawn(ecsdb.Bundle2(posID, Position{}, velID, Velocity{X: 1}))

	q, err := ecsdb.NewQuery2[Position, Velocity](w, ecsdb.ReadWrite(), ecsdb.Read())
	if err != nil {
		panic(err)
	}
	defer q.Release()
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}

ecsdb is a library; there is no wire protocol, CLI, or persisted
format. Structural mutation (Spawn, Despawn, AddComponent,
RemoveComponent) requires exclusive access to the World; queries are
the unit of safe concurrent access and never block — conflicting
borrows fail atomically with BorrowConflictError.
*/
package ecsdb
