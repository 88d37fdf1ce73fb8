package javaserial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsBadUID(t *testing.T) {
	var reg Registry
	err := reg.RegisterPostProcessor("java.util.ArrayList", "not-hex", func(*Object) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSerialVersionUID)

	err = reg.RegisterParser("java.util.ArrayList", "7881d21d99c7619", nil) // 15 chars
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadSerialVersionUID)
}

func TestRegistryRoundTrip(t *testing.T) {
	var reg Registry
	called := false
	err := reg.RegisterPostProcessor("demo.Thing", "0000000000000001", func(obj *Object) error {
		called = true
		return nil
	})
	require.NoError(t, err)

	post, ok := reg.postProcessorFor("demo.Thing@0000000000000001")
	require.True(t, ok)
	require.NoError(t, post(&Object{}))
	assert.True(t, called)

	_, ok = reg.postProcessorFor("demo.Other@0000000000000001")
	assert.False(t, ok)
}
