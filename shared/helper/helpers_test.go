package helper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 3, nil })
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "3", nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	cause := errors.New("getter failed")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, cause })
	assert.Same(t, cause, err)
}

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[string](func() (any, bool) { return "x", true })
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return 1, true })
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return nil, false })
	assert.False(t, ok)
}
