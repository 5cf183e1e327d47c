// Package params holds model dimension constants and the model configuration
// every other package is parameterized by. Dimension bounds are carried as
// plain values and injected at construction time; nothing here is global
// mutable state.
package params

import (
	"errors"
	"fmt"
)

// Dimension-type keys. An index block set names one of these (optionally with
// a trailing "_suffix", e.g. YEAR_RECRUITMENT) to say which model axis its
// indices run over.
const (
	DimYear           = "YEAR"
	DimSize           = "SIZE"
	DimSex            = "SEX"
	DimMaturityState  = "MATURITY_STATE"
	DimShellCondition = "SHELL_CONDITION"
	DimFishery        = "FISHERY"
	DimSurvey         = "SURVEY"
)

// Fixed model cardinalities and the 1-based integer codes within them.
const (
	SexCount = 2
	Male     = 1
	Female   = 2

	MaturityStateCount = 2
	Immature           = 1
	Mature             = 2

	ShellConditionCount = 2
	NewShell            = 1
	OldShell            = 2
)

var ErrUnknownDimension = errors.New("unknown dimension type")

// Dims is the per-run shape of the model index space: the year span and the
// counts of size bins, fisheries and surveys. Sex, maturity state and shell
// condition are fixed at two states each.
type Dims struct {
	MinYear   int
	MaxYear   int
	SizeBins  int
	Fisheries int
	Surveys   int
}

// IndexLimits resolves a dimension-type key to its model index bounds.
// Counted dimensions run 1..n; years run MinYear..MaxYear. Unknown keys are
// an error here even though index block sets merely warn on them, matching
// the differing strictness of the two call sites in the original model.
func (d Dims) IndexLimits(key string) (mn, mx int, err error) {
	switch key {
	case DimYear:
		return d.MinYear, d.MaxYear, nil
	case DimSize:
		return 1, d.SizeBins, nil
	case DimSex:
		return 1, SexCount, nil
	case DimMaturityState:
		return 1, MaturityStateCount, nil
	case DimShellCondition:
		return 1, ShellConditionCount, nil
	case DimFishery:
		return 1, d.Fisheries, nil
	case DimSurvey:
		return 1, d.Surveys, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownDimension, key)
}

// SexLabel returns the label for a sex code, e.g. "MALE" for Male.
func SexLabel(i int) string {
	switch i {
	case Male:
		return "MALE"
	case Female:
		return "FEMALE"
	}
	return fmt.Sprintf("SEX(%d)", i)
}

// MaturityLabel returns the label for a maturity-state code.
func MaturityLabel(i int) string {
	switch i {
	case Immature:
		return "IMMATURE"
	case Mature:
		return "MATURE"
	}
	return fmt.Sprintf("MATURITY_STATE(%d)", i)
}

// ShellLabel returns the label for a shell-condition code.
func ShellLabel(i int) string {
	switch i {
	case NewShell:
		return "NEW_SHELL"
	case OldShell:
		return "OLD_SHELL"
	}
	return fmt.Sprintf("SHELL_CONDITION(%d)", i)
}
