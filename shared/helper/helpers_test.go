package helper_test

import (
	"testing"

	"github.com/on-the-ground/funstruct_go/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedValueOf(t *testing.T) {
	v, err := helper.TypedValueOf[int](42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.TypedValueOf[string](42)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
}

func TestMustTypedValue_PanicsOnMismatch(t *testing.T) {
	assert.Equal(t, "x", helper.MustTypedValue[string]("x"))
	assert.Panics(t, func() {
		helper.MustTypedValue[int]("x")
	})
}
