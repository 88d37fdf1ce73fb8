package javaserial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedFieldsPreservesInsertionOrderAndShadows(t *testing.T) {
	var f OrderedFields
	f.Set("a", 1)
	f.Set("b", 2)
	f.Set("a", 99) // overwrite, must not move to the end

	assert.Equal(t, []string{"a", "b"}, f.Names())

	v, ok := f.Get("a")
	require.True(t, ok)
	assert.Equal(t, 99, v)

	_, ok = f.Get("missing")
	assert.False(t, ok)
}

func TestEndBlockIsDistinctFromDecodedValues(t *testing.T) {
	var v any = EndBlock
	_, isString := v.(string)
	assert.False(t, isString)
	_, isEndBlock := v.(endBlockT)
	assert.True(t, isEndBlock)
}
