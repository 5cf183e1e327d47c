package data

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

var effortDims = params.Dims{MinYear: 1990, MaxYear: 1995}

const sampleEffort = `
EFFORT_DATA	#required keyword
3	#number of years of effort data
1992:-1	#interval to average effort/fishing mortality over
POTLIFTS	#units
#year   potlifts
1991 1000
1992 1500.5
1994 2000
`

func TestReadEffortData(t *testing.T) {
	e, err := ReadEffortData(tcsamio.NewScanner(strings.NewReader(sampleEffort), "eff"), effortDims)
	require.NoError(t, err)

	assert.Equal(t, "POTLIFTS", e.Units)
	assert.Equal(t, []int{1991, 1992, 1994}, e.Years)

	// The open upper operand substitutes the model max year.
	assert.Equal(t, 1992, e.AvgRange.Min())
	assert.Equal(t, 1995, e.AvgRange.Max())

	assert.Equal(t, 1500.5, e.Effort(1992))
	assert.Zero(t, e.Effort(1993), "unobserved years report zero effort")

	// 1992..1995 averages over four years, two observed.
	assert.InDelta(t, (1500.5+2000)/4, e.AvgEffort(), 1e-12)
}

func TestEffortDataKeywordRequired(t *testing.T) {
	_, err := ReadEffortData(tcsamio.NewScanner(strings.NewReader("CATCH_DATA 0"), "eff"), effortDims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"EFFORT_DATA"`)
}

func TestEffortDataWriteReadRoundTrip(t *testing.T) {
	e, err := ReadEffortData(tcsamio.NewScanner(strings.NewReader(sampleEffort), "eff"), effortDims)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf))

	again, err := ReadEffortData(tcsamio.NewScanner(&buf, "roundtrip"), effortDims)
	require.NoError(t, err)
	assert.Equal(t, e.Years, again.Years)
	assert.Equal(t, e.Units, again.Units)
	assert.Equal(t, e.AvgRange.Indices(), again.AvgRange.Indices())
	for _, y := range e.Years {
		assert.Equal(t, e.Effort(y), again.Effort(y))
	}
}
