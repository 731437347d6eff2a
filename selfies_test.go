package selfies

import (
	"testing"

	"github.com/cx-luo/go-selfies/constraints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderDecoderRoundTrip(t *testing.T) {
	s, _, err := Encoder("CCO", false)
	require.NoError(t, err)
	assert.Equal(t, "[C][C][O]", s)

	out, _, err := Decoder(s, false, false)
	require.NoError(t, err)
	assert.Equal(t, "CCO", out)
}

func TestLenAndSplitSelfies(t *testing.T) {
	s := "[C][=C][Ring1][C]"
	assert.Equal(t, 4, LenSelfies(s))
	assert.Equal(t, []string{"[C]", "[=C]", "[Ring1]", "[C]"}, SplitSelfies(s))
}

func TestGetAlphabetFromSelfiesDeduplicates(t *testing.T) {
	alphabet := GetAlphabetFromSelfies([]string{"[C][C]", "[C][O]"})
	assert.ElementsMatch(t, []string{"[C]", "[O]"}, alphabet)
}

func TestPresetConstraintsRoundTrip(t *testing.T) {
	table, err := GetPresetConstraints(constraints.PresetDefault)
	require.NoError(t, err)
	assert.Equal(t, constraints.Default(), table)
}

func TestSetAndGetSemanticConstraints(t *testing.T) {
	original := GetSemanticConstraints()
	defer func() { _ = SetSemanticConstraints(original) }()

	custom := constraints.Default()
	custom["C"] = 2
	require.NoError(t, SetSemanticConstraints(custom))

	got := GetSemanticConstraints()
	assert.Equal(t, custom, got)

	got["C"] = 99
	assert.NotEqual(t, got, GetSemanticConstraints())
}

func TestSemanticRobustAlphabetReflectsInstalledConstraints(t *testing.T) {
	original := GetSemanticConstraints()
	defer func() { _ = SetSemanticConstraints(original) }()

	require.NoError(t, SetSemanticConstraintsPreset(constraints.PresetDefault))
	alphabet := GetSemanticRobustAlphabet()
	assert.Contains(t, alphabet, "[C]")
}
