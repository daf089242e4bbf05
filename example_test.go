package ecsdb

import "fmt"

type exPosition struct{ X, Y float64 }
type exVelocity struct{ X, Y float64 }

// Example_basic spawns two entities, advances their Position by their
// Velocity through a single query, and reports the result.
func Example_basic() {
	w := New()
	posID := RegisterComponent[exPosition]()
	velID := RegisterComponent[exVelocity]()

	w.Spawn(Bundle2(posID, exPosition{X: 0, Y: 0}, velID, exVelocity{X: 1, Y: 1}))
	w.Spawn(Bundle2(posID, exPosition{X: 10, Y: 10}, velID, exVelocity{X: -1, Y: 0}))

	q, err := NewQuery2[exPosition, exVelocity](w, ReadWrite(), Read())
	if err != nil {
		panic(err)
	}
	var total float64
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.X
		pos.Y += vel.Y
		total += pos.X + pos.Y
	}
	q.Release()

	fmt.Println(total)
	// Output: 21
}

// Example_addComponentThenQuery shows a component added after spawn
// becoming visible to a query planned afterward.
func Example_addComponentThenQuery() {
	type tag struct{ Team int }

	w := New()
	posID := RegisterComponent[exPosition]()
	tagID := RegisterComponent[tag]()
	_ = tagID

	h, _ := w.Spawn(Bundle1(posID, exPosition{X: 5}))
	if err := AddComponent(w, h, tag{Team: 1}); err != nil {
		panic(err)
	}

	q, err := NewQuery2[exPosition, tag](w, Read(), Read())
	if err != nil {
		panic(err)
	}
	count := 0
	for q.Next() {
		count++
	}
	q.Release()

	fmt.Println(count)
	// Output: 1
}
