// Package data holds the observation-record containers that consume index
// ranges from the model configuration. They are plain data-transfer types:
// read once, queried by model index afterwards.
package data

import (
	"io"

	"github.com/wStockhausen/wtsTCSAM2015/indexblocks"
	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// KeywordEffortData frames an effort-data record in a datasets file.
const KeywordEffortData = "EFFORT_DATA"

// EffortData is fishery effort (pot lifts) by year, with the year range to
// average over when scaling effort to fishing mortality. Years without an
// observation report zero effort.
type EffortData struct {
	// AvgRange is the model-year interval effort is averaged over. Open
	// operands in its text substitute the model year span.
	AvgRange *indexblocks.IndexRange
	Units    string
	Years    []int

	byYear map[int]float64
}

// ReadEffortData parses an EFFORT_DATA record. The dims supply the model
// year span substituted into the averaging range.
func ReadEffortData(sc *tcsamio.Scanner, dims params.Dims) (*EffortData, error) {
	if err := sc.Keyword(KeywordEffortData); err != nil {
		return nil, err
	}
	ny, err := sc.Int()
	if err != nil {
		return nil, err
	}
	e := &EffortData{
		AvgRange: indexblocks.NewIndexRange(dims.MinYear, dims.MaxYear),
		byYear:   make(map[int]float64, ny),
	}
	if err := e.AvgRange.Read(sc); err != nil {
		return nil, err
	}
	if e.Units, err = sc.Token(); err != nil {
		return nil, err
	}
	e.Years = make([]int, ny)
	for i := 0; i < ny; i++ {
		y, err := sc.Int()
		if err != nil {
			return nil, err
		}
		v, err := sc.Float()
		if err != nil {
			return nil, err
		}
		e.Years[i] = y
		e.byYear[y] = v
	}
	return e, nil
}

// Effort returns the observed effort for a model year, zero when the year
// has no observation.
func (e *EffortData) Effort(year int) float64 { return e.byYear[year] }

// AvgEffort averages observed effort over the averaging range. Years in the
// range without observations count as zeroes, matching how the model treats
// unfished years.
func (e *EffortData) AvgEffort() float64 {
	n := e.AvgRange.Size()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, y := range e.AvgRange.Indices() {
		sum += e.byYear[y]
	}
	return sum / float64(n)
}

// Write emits the record in the annotated format ReadEffortData consumes.
func (e *EffortData) Write(w io.Writer) error {
	tw := tcsamio.NewWriter(w)
	tw.Line(KeywordEffortData, "required keyword")
	tw.Line(len(e.Years), "number of years of effort data")
	tw.Line(e.AvgRange, "interval to average effort/fishing mortality over")
	tw.Line(e.Units, "units for pot lifts")
	tw.Comment("year   potlifts")
	for _, y := range e.Years {
		tw.Values(y, tcsamio.FormatFloat(e.byYear[y]))
	}
	return tw.Err()
}
