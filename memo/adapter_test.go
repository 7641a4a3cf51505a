package memo_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/memo_ive_go/memo"
)

func TestFunc_KeepsContract(t *testing.T) {
	count := 0
	parse := memo.Func(func(s string) (int, error) {
		count++
		return strconv.Atoi(s)
	})

	v, err := parse("12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	v, err = parse("12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = parse("x")
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	_, err = parse("x")
	assert.Error(t, err)

	assert.Equal(t, 3, count)
}

func TestPure_ComputesOnce(t *testing.T) {
	count := 0
	double := memo.Pure(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, double(2))
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 6, double(3))
	assert.Equal(t, 2, count)
}

func TestPure_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.Pure[int, int](nil)
	})
}
