package indexblocks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wStockhausen/wtsTCSAM2015/common"
	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

var testDims = params.Dims{
	MinYear:   1960,
	MaxYear:   1965,
	SizeBins:  20,
	Fisheries: 3,
	Surveys:   1,
}

func TestDispatchKey(t *testing.T) {
	cases := map[string]string{
		"YEAR":               "YEAR",
		"YEAR_RECRUITMENT":   "YEAR",
		"MATURITY_STATE":     "MATURITY_STATE",
		"MATURITY_STATE_X":   "MATURITY_STATE",
		"SHELL_CONDITION":    "SHELL_CONDITION",
		"SIZE_MOLT":          "SIZE",
		"FISHERY":            "FISHERY",
		"CUSTOM":             "CUSTOM",
		"CUSTOM_DIM_THING":   "CUSTOM",
		"SEX":                "SEX",
		"SURVEY_SELECTIVITY": "SURVEY",
	}
	for in, want := range cases {
		assert.Equal(t, want, dispatchKey(in), "type %q", in)
	}
}

func TestIndexBlockSetSetType(t *testing.T) {
	s := NewIndexBlockSet(testDims)
	s.SetType("YEAR_RECRUITMENT")
	assert.Equal(t, "YEAR_RECRUITMENT", s.Type(), "full text is the identity")
	assert.Equal(t, "YEAR", s.Key())
	mn, mx := s.Bounds()
	assert.Equal(t, 1960, mn)
	assert.Equal(t, 1965, mx)
}

func TestIndexBlockSetUnknownTypeWarns(t *testing.T) {
	records, restore := common.SlogCapture()
	defer restore()

	s := NewIndexBlockSet(testDims)
	s.SetType("MOON_PHASE")

	assert.Equal(t, "MOON_PHASE", s.Type())
	mn, mx := s.Bounds()
	assert.Zero(t, mn, "unknown types keep unresolved bounds")
	assert.Zero(t, mx)
	require.Len(t, records.Messages(), 1)
	assert.Contains(t, records.Messages()[0], "non-standard index dimension type")
}

func TestIndexBlockSetReadOutOfOrderIds(t *testing.T) {
	// Ids may arrive in any order; each still lands in its declared slot.
	in := `YEAR 3
		2 [1963]
		1 [1960:1962]
		3 [1964:-1]
	`
	s := NewIndexBlockSet(testDims)
	require.NoError(t, s.Read(tcsamio.NewScanner(strings.NewReader(in), "test")))

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1960, 1961, 1962}, s.Block(1).ModelIndices())
	assert.Equal(t, []int{1963}, s.Block(2).ModelIndices())
	assert.Equal(t, []int{1964, 1965}, s.Block(3).ModelIndices())
}

func TestIndexBlockSetReadDuplicateId(t *testing.T) {
	in := `YEAR 2
		1 [1960]
		1 [1961]
	`
	s := NewIndexBlockSet(testDims)
	err := s.Read(tcsamio.NewScanner(strings.NewReader(in), "test"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "duplicate block id 1")
}

func TestIndexBlockSetReadIdOutOfBounds(t *testing.T) {
	in := `YEAR 2
		3 [1960]
		1 [1961]
	`
	s := NewIndexBlockSet(testDims)
	err := s.Read(tcsamio.NewScanner(strings.NewReader(in), "test"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBounds)
}

func TestIndexBlockSetWriteReadRoundTrip(t *testing.T) {
	in := `SIZE 2
		1 [1:5;10]
		2 [6:-1]
	`
	s := NewIndexBlockSet(testDims)
	require.NoError(t, s.Read(tcsamio.NewScanner(strings.NewReader(in), "test")))

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))

	again := NewIndexBlockSet(testDims)
	require.NoError(t, again.Read(tcsamio.NewScanner(&buf, "roundtrip")))
	require.Equal(t, s.Len(), again.Len())
	assert.Equal(t, s.Type(), again.Type())
	for id := 1; id <= s.Len(); id++ {
		assert.Equal(t, s.Block(id).ModelIndices(), again.Block(id).ModelIndices())
	}
}
