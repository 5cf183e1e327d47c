package params

import (
	"io"

	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// ModelConfig is the model configuration file: the year span, size-bin
// structure, fishery/survey labels, run flags, and the names of the other
// input files. It is read once at startup and treated as immutable after.
type ModelConfig struct {
	Name string

	MinYear int
	MaxYear int

	// SizeCutPoints has one more entry than there are size bins; midpoints
	// are derived, not read.
	SizeCutPoints []float64
	SizeMidPoints []float64

	FisheryLabels []string
	SurveyLabels  []string

	RunOpMod    bool
	FitToPriors bool

	ParamsInfoFile string
	DatasetsFile   string
	OptionsFile    string

	Jitter       bool
	JitterFrac   float64
	Resample     bool
	VarInflation float64
}

// Dims returns the dimension bounds this configuration implies.
func (mc *ModelConfig) Dims() Dims {
	return Dims{
		MinYear:   mc.MinYear,
		MaxYear:   mc.MaxYear,
		SizeBins:  len(mc.SizeMidPoints),
		Fisheries: len(mc.FisheryLabels),
		Surveys:   len(mc.SurveyLabels),
	}
}

// ReadModelConfig parses a model configuration from the scanner.
func ReadModelConfig(sc *tcsamio.Scanner) (*ModelConfig, error) {
	mc := &ModelConfig{}
	var err error
	if mc.Name, err = sc.Token(); err != nil {
		return nil, err
	}
	if mc.MinYear, err = sc.Int(); err != nil {
		return nil, err
	}
	if mc.MaxYear, err = sc.Int(); err != nil {
		return nil, err
	}
	nBins, err := sc.Int()
	if err != nil {
		return nil, err
	}
	if nBins < 1 {
		return nil, sc.Errorf("model must have at least one size bin, got %d", nBins)
	}
	if mc.SizeCutPoints, err = sc.Floats(nBins + 1); err != nil {
		return nil, err
	}
	mc.SizeMidPoints = make([]float64, nBins)
	for z := range mc.SizeMidPoints {
		mc.SizeMidPoints[z] = 0.5 * (mc.SizeCutPoints[z] + mc.SizeCutPoints[z+1])
	}

	nFsh, err := sc.Int()
	if err != nil {
		return nil, err
	}
	if mc.FisheryLabels, err = sc.Strings(nFsh); err != nil {
		return nil, err
	}
	nSrv, err := sc.Int()
	if err != nil {
		return nil, err
	}
	if mc.SurveyLabels, err = sc.Strings(nSrv); err != nil {
		return nil, err
	}

	if mc.RunOpMod, err = sc.Bool(); err != nil {
		return nil, err
	}
	if mc.FitToPriors, err = sc.Bool(); err != nil {
		return nil, err
	}

	if mc.ParamsInfoFile, err = sc.Token(); err != nil {
		return nil, err
	}
	if mc.DatasetsFile, err = sc.Token(); err != nil {
		return nil, err
	}
	if mc.OptionsFile, err = sc.Token(); err != nil {
		return nil, err
	}

	if mc.Jitter, err = sc.OnOff(); err != nil {
		return nil, err
	}
	if mc.JitterFrac, err = sc.Float(); err != nil {
		return nil, err
	}
	if mc.Resample, err = sc.OnOff(); err != nil {
		return nil, err
	}
	if mc.VarInflation, err = sc.Float(); err != nil {
		return nil, err
	}
	return mc, nil
}

// Write emits the configuration in the same annotated format Read consumes.
func (mc *ModelConfig) Write(w io.Writer) error {
	tw := tcsamio.NewWriter(w)
	tw.Comment("######################################################")
	tw.Comment("# Model Configuration File                           #")
	tw.Comment("######################################################")
	tw.Line(mc.Name, "model configuration name")
	tw.Line(mc.MinYear, "min model year")
	tw.Line(mc.MaxYear, "max model year")
	tw.Line(len(mc.SizeMidPoints), "number of model size bins")
	tw.Comment("size bin cut points (mm CW)")
	cuts := make([]any, len(mc.SizeCutPoints))
	for i, v := range mc.SizeCutPoints {
		cuts[i] = tcsamio.FormatFloat(v)
	}
	tw.Values(cuts...)

	tw.Line(len(mc.FisheryLabels), "number of fisheries")
	for _, l := range mc.FisheryLabels {
		tw.Line(l, "fishery label")
	}
	tw.Line(len(mc.SurveyLabels), "number of surveys")
	for _, l := range mc.SurveyLabels {
		tw.Line(l, "survey label")
	}

	tw.Line(tcsamio.FormatBool(mc.RunOpMod), "run operating model?")
	tw.Line(tcsamio.FormatBool(mc.FitToPriors), "fit to priors?")

	tw.Line(mc.ParamsInfoFile, "model parameters info file")
	tw.Line(mc.DatasetsFile, "model datasets file")
	tw.Line(mc.OptionsFile, "model options file")

	tw.Line(tcsamio.FormatOnOff(mc.Jitter), "jitter initial parameter values?")
	tw.Line(tcsamio.FormatFloat(mc.JitterFrac), "jitter fraction")
	tw.Line(tcsamio.FormatOnOff(mc.Resample), "resample initial parameter values?")
	tw.Line(tcsamio.FormatFloat(mc.VarInflation), "variance inflation factor")
	return tw.Err()
}
