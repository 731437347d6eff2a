package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetSemanticRoundTrip(t *testing.T) {
	t.Cleanup(func() { _ = SetSemantic(Default()) })

	custom := Table{FallbackKey: 8, "C": 1}
	require.NoError(t, SetSemantic(custom))
	got := GetSemantic()
	assert.Equal(t, custom["C"], got["C"])
}

func TestGetSemanticReturnsFreshCopy(t *testing.T) {
	t.Cleanup(func() { _ = SetSemantic(Default()) })

	require.NoError(t, SetSemantic(Default()))
	got := GetSemantic()
	got["C"] = -1 // mutate the returned copy
	again := GetSemantic()
	assert.NotEqual(t, -1, again["C"])
}

func TestSetSemanticInvalidatesCapacityMemo(t *testing.T) {
	t.Cleanup(func() { _ = SetSemantic(Default()) })

	require.NoError(t, SetSemantic(Default()))
	assert.Equal(t, 4, CapacityFor("C", 0))

	require.NoError(t, SetSemantic(Table{FallbackKey: 8, "C": 1}))
	assert.Equal(t, 1, CapacityFor("C", 0))
}

func TestGenerationBumpsOnChange(t *testing.T) {
	t.Cleanup(func() { _ = SetSemantic(Default()) })

	g1 := Generation()
	require.NoError(t, SetSemantic(Default()))
	g2 := Generation()
	assert.Greater(t, g2, g1)
}
