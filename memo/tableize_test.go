package memo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/memo_ive_go/memo"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O1(func(a, b int) int {
		count++
		return a - b
	})

	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, 1, fn(3, 2)) // argument order is part of the key
	assert.Equal(t, 2, count)
}

func TestTableizeI3O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI4O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	})

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableizeI2O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	})

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI3O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	})

	x, y := fn(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = fn(1, 2, 3)
	assert.Equal(t, 1, count)
}

func TestTableizeI4O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	})

	x, y := fn(1, 2, 3, 4)
	assert.Equal(t, 24, x)
	assert.Equal(t, "product", y)
	_, _ = fn(1, 2, 3, 4)
	assert.Equal(t, 1, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := memo.TableizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	})

	assert.Panics(t, func() {
		_ = fn(TotallyInvalid{Field: []int{1}})
	})
}

func TestTableize_RecursiveSelfReference(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = memo.TableizeI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, calls)
	assert.Equal(t, 832040, fib(30))
	assert.Equal(t, 31, calls)
}
