// Package indexblocks parses and resolves named, possibly discontiguous
// subsets of the model's integer dimensions (years, size bins, sexes,
// maturity states, shell conditions, fisheries, surveys).
//
// A configuration author writes expressions like "[1962:2000;2005;-1:1959]"
// to say which dimension indices share a parameter. This package turns that
// text into bounds-checked index sets with O(1) forward (block position to
// model index) and reverse (model index to block position) lookups.
//
// Everything here is built once during the sequential configuration read and
// is read-only afterwards.
package indexblocks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

var (
	// ErrFormat marks malformed index expressions and keyword mismatches.
	ErrFormat = errors.New("malformed index expression")
	// ErrBounds marks ids or slots outside their declared 1..n range.
	ErrBounds = errors.New("index out of declared bounds")
)

// IndexRange is one contiguous run of model indices within a dimension.
// A negative parse operand is the documented "open" marker: the first
// operand substitutes the dimension minimum, the second the maximum, so
// "-1:1959" means "from the start of the dimension through 1959".
type IndexRange struct {
	modMin, modMax int
	mn, mx         int
	indices        []int
}

// NewIndexRange returns a range that substitutes the given dimension bounds
// for open operands when parsing.
func NewIndexRange(modMin, modMax int) *IndexRange {
	return &IndexRange{modMin: modMin, modMax: modMax}
}

// Parse resolves "x:y" or "x" range text and rebuilds the index sequence.
// A bare "x" is the singleton range x..x. If the resolved span is inverted
// (min past max, possible when an open bound substitutes) the range is kept
// as a zero-length member rather than rejected.
func (r *IndexRange) Parse(text string) error {
	lo, hi, paired := strings.Cut(text, ":")
	mn, err := strconv.Atoi(lo)
	if err != nil {
		return fmt.Errorf("%w: range %q: bad min operand %q", ErrFormat, text, lo)
	}
	if mn < 0 {
		mn = r.modMin
	}
	mx := mn
	if paired {
		mx, err = strconv.Atoi(hi)
		if err != nil {
			return fmt.Errorf("%w: range %q: bad max operand %q", ErrFormat, text, hi)
		}
		if mx < 0 {
			mx = r.modMax
		}
	}
	r.set(mn, mx)
	return nil
}

func (r *IndexRange) set(mn, mx int) {
	r.mn, r.mx = mn, mx
	n := mx - mn + 1
	if n < 0 {
		n = 0
	}
	r.indices = make([]int, n)
	for i := range r.indices {
		r.indices[i] = mn + i
	}
}

// Read consumes the next token from the scanner and parses it.
func (r *IndexRange) Read(sc *tcsamio.Scanner) error {
	tok, err := sc.Token()
	if err != nil {
		return err
	}
	if err := r.Parse(tok); err != nil {
		return sc.Wrap(err)
	}
	return nil
}

// Min returns the resolved lower bound.
func (r *IndexRange) Min() int { return r.mn }

// Max returns the resolved upper bound.
func (r *IndexRange) Max() int { return r.mx }

// Size returns the number of indices covered.
func (r *IndexRange) Size() int { return len(r.indices) }

// Indices returns the covered model indices in increasing order. The slice
// is the range's backing store; callers must not mutate it.
func (r *IndexRange) Indices() []int { return r.indices }

// Contains reports whether the range covers the model index i.
func (r *IndexRange) Contains(i int) bool {
	return len(r.indices) > 0 && r.mn <= i && i <= r.mx
}

// String renders the range in parseable form: "mn:mx" for a span, just "mn"
// for a singleton. Open markers are not preserved; substitution is one-way.
func (r *IndexRange) String() string {
	if len(r.indices) > 1 {
		return strconv.Itoa(r.mn) + ":" + strconv.Itoa(r.mx)
	}
	return strconv.Itoa(r.mn)
}
