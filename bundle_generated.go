// Code generated by hand following the pack's per-arity generated-family
// pattern (see builder_generated.go / ecs_api_generated.go in the
// edwinsyarief-lazyecs reference); arities 1..12 mirror spec.md §6's
// documented bundle ceiling K = 12.
package ecsdb

import "reflect"

// Bundle1 builds a Bundle of 1 component in the given order.
func Bundle1[T1 any](
	id1 ComponentTypeID, v1 T1,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
	}}
}

// Bundle2 builds a Bundle of 2 components in the given order.
func Bundle2[T1 any, T2 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
	}}
}

// Bundle3 builds a Bundle of 3 components in the given order.
func Bundle3[T1 any, T2 any, T3 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
	}}
}

// Bundle4 builds a Bundle of 4 components in the given order.
func Bundle4[T1 any, T2 any, T3 any, T4 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
	}}
}

// Bundle5 builds a Bundle of 5 components in the given order.
func Bundle5[T1 any, T2 any, T3 any, T4 any, T5 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
	}}
}

// Bundle6 builds a Bundle of 6 components in the given order.
func Bundle6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
	}}
}

// Bundle7 builds a Bundle of 7 components in the given order.
func Bundle7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
	}}
}

// Bundle8 builds a Bundle of 8 components in the given order.
func Bundle8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
	id8 ComponentTypeID, v8 T8,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
		{id: id8, val: reflect.ValueOf(v8)},
	}}
}

// Bundle9 builds a Bundle of 9 components in the given order.
func Bundle9[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
	id8 ComponentTypeID, v8 T8,
	id9 ComponentTypeID, v9 T9,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
		{id: id8, val: reflect.ValueOf(v8)},
		{id: id9, val: reflect.ValueOf(v9)},
	}}
}

// Bundle10 builds a Bundle of 10 components in the given order.
func Bundle10[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
	id8 ComponentTypeID, v8 T8,
	id9 ComponentTypeID, v9 T9,
	id10 ComponentTypeID, v10 T10,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
		{id: id8, val: reflect.ValueOf(v8)},
		{id: id9, val: reflect.ValueOf(v9)},
		{id: id10, val: reflect.ValueOf(v10)},
	}}
}

// Bundle11 builds a Bundle of 11 components in the given order.
func Bundle11[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
	id8 ComponentTypeID, v8 T8,
	id9 ComponentTypeID, v9 T9,
	id10 ComponentTypeID, v10 T10,
	id11 ComponentTypeID, v11 T11,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
		{id: id8, val: reflect.ValueOf(v8)},
		{id: id9, val: reflect.ValueOf(v9)},
		{id: id10, val: reflect.ValueOf(v10)},
		{id: id11, val: reflect.ValueOf(v11)},
	}}
}

// Bundle12 builds a Bundle of 12 components in the given order.
func Bundle12[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any, T9 any, T10 any, T11 any, T12 any](
	id1 ComponentTypeID, v1 T1,
	id2 ComponentTypeID, v2 T2,
	id3 ComponentTypeID, v3 T3,
	id4 ComponentTypeID, v4 T4,
	id5 ComponentTypeID, v5 T5,
	id6 ComponentTypeID, v6 T6,
	id7 ComponentTypeID, v7 T7,
	id8 ComponentTypeID, v8 T8,
	id9 ComponentTypeID, v9 T9,
	id10 ComponentTypeID, v10 T10,
	id11 ComponentTypeID, v11 T11,
	id12 ComponentTypeID, v12 T12,
) Bundle {
	return Bundle{items: []ComponentValue{
		{id: id1, val: reflect.ValueOf(v1)},
		{id: id2, val: reflect.ValueOf(v2)},
		{id: id3, val: reflect.ValueOf(v3)},
		{id: id4, val: reflect.ValueOf(v4)},
		{id: id5, val: reflect.ValueOf(v5)},
		{id: id6, val: reflect.ValueOf(v6)},
		{id: id7, val: reflect.ValueOf(v7)},
		{id: id8, val: reflect.ValueOf(v8)},
		{id: id9, val: reflect.ValueOf(v9)},
		{id: id10, val: reflect.ValueOf(v10)},
		{id: id11, val: reflect.ValueOf(v11)},
		{id: id12, val: reflect.ValueOf(v12)},
	}}
}
