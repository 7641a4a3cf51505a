package memo

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/memo/store"
)

// ComparableOrStringer documents what Tableize accepts as an argument: a
// comparable value, or a fmt.Stringer keyed by its String result.
type ComparableOrStringer any

// argKey is the table key of up to four arguments.
type argKey [4]any

func tableKey(i ComparableOrStringer) any {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func keyOf(args ...ComparableOrStringer) argKey {
	var k argKey
	for i, arg := range args {
		k[i] = tableKey(arg)
	}
	return k
}

type pair[O1, O2 any] struct {
	o1 O1
	o2 O2
}

// tableize returns a lookup that calls pureFn with the original arguments
// on a miss. Two argument lists with equal keys share one entry.
func tableize[O any](opts []Option) func(call func() O, args ...ComparableOrStringer) O {
	c := newCache[argKey, O](nil, store.NewSyncMap[argKey, O](), opts)
	return func(call func() O, args ...ComparableOrStringer) O {
		v, _ := c.get(keyOf(args...), func(argKey) (O, error) {
			return call(), nil
		})
		return v
	}
}

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) func(I1) O1 {
	tableized := tableize[O1](opts)
	return func(i1 I1) O1 {
		return tableized(func() O1 { return pureFn(i1) }, i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) func(I1, I2) O1 {
	tableized := tableize[O1](opts)
	return func(i1 I1, i2 I2) O1 {
		return tableized(func() O1 { return pureFn(i1, i2) }, i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) func(I1, I2, I3) O1 {
	tableized := tableize[O1](opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(func() O1 { return pureFn(i1, i2, i3) }, i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize[O1](opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(func() O1 { return pureFn(i1, i2, i3, i4) }, i1, i2, i3, i4)
	}
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) func(I1) (O1, O2) {
	tableized := tableize[pair[O1, O2]](opts)
	return func(i1 I1) (O1, O2) {
		p := tableized(func() pair[O1, O2] {
			o1, o2 := pureFn(i1)
			return pair[O1, O2]{o1, o2}
		}, i1)
		return p.o1, p.o2
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) func(I1, I2) (O1, O2) {
	tableized := tableize[pair[O1, O2]](opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := tableized(func() pair[O1, O2] {
			o1, o2 := pureFn(i1, i2)
			return pair[O1, O2]{o1, o2}
		}, i1, i2)
		return p.o1, p.o2
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...Option,
) func(I1, I2, I3) (O1, O2) {
	tableized := tableize[pair[O1, O2]](opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		p := tableized(func() pair[O1, O2] {
			o1, o2 := pureFn(i1, i2, i3)
			return pair[O1, O2]{o1, o2}
		}, i1, i2, i3)
		return p.o1, p.o2
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...Option,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableize[pair[O1, O2]](opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		p := tableized(func() pair[O1, O2] {
			o1, o2 := pureFn(i1, i2, i3, i4)
			return pair[O1, O2]{o1, o2}
		}, i1, i2, i3, i4)
		return p.o1, p.o2
	}
}
