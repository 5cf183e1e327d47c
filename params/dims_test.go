package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsIndexLimits(t *testing.T) {
	d := Dims{MinYear: 1962, MaxYear: 2014, SizeBins: 32, Fisheries: 4, Surveys: 2}

	cases := []struct {
		key    string
		mn, mx int
	}{
		{DimYear, 1962, 2014},
		{DimSize, 1, 32},
		{DimSex, 1, 2},
		{DimMaturityState, 1, 2},
		{DimShellCondition, 1, 2},
		{DimFishery, 1, 4},
		{DimSurvey, 1, 2},
	}
	for _, c := range cases {
		mn, mx, err := d.IndexLimits(c.key)
		require.NoError(t, err, c.key)
		assert.Equal(t, c.mn, mn, c.key)
		assert.Equal(t, c.mx, mx, c.key)
	}
}

func TestDimsIndexLimitsUnknown(t *testing.T) {
	var d Dims
	_, _, err := d.IndexLimits("MOON_PHASE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestDimensionLabels(t *testing.T) {
	assert.Equal(t, "MALE", SexLabel(Male))
	assert.Equal(t, "FEMALE", SexLabel(Female))
	assert.Equal(t, "IMMATURE", MaturityLabel(Immature))
	assert.Equal(t, "MATURE", MaturityLabel(Mature))
	assert.Equal(t, "NEW_SHELL", ShellLabel(NewShell))
	assert.Equal(t, "OLD_SHELL", ShellLabel(OldShell))
	assert.Equal(t, "SEX(3)", SexLabel(3))
}
