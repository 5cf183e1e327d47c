package indexblocks

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// dimensionKeys are the recognized dispatch keys, longest first so that
// suffix stripping cannot truncate a key that itself contains '_'
// (MATURITY_STATE, SHELL_CONDITION).
var dimensionKeys = []string{
	params.DimShellCondition,
	params.DimMaturityState,
	params.DimFishery,
	params.DimSurvey,
	params.DimYear,
	params.DimSize,
	params.DimSex,
}

// dispatchKey strips a trailing "_suffix" from a dimension-type token to get
// the key used for bounds resolution. "YEAR_RECRUITMENT" dispatches as
// "YEAR"; an unrecognized token strips at its first '_'.
func dispatchKey(typeText string) string {
	for _, k := range dimensionKeys {
		if typeText == k || strings.HasPrefix(typeText, k+"_") {
			return k
		}
	}
	if i := strings.IndexByte(typeText, '_'); i >= 0 {
		return typeText[:i]
	}
	return typeText
}

// IndexBlockSet is a numbered collection of index blocks over a single model
// dimension. The dimension type is set exactly once, fixing the bounds every
// member block substitutes for open range operands. Blocks are addressed by
// dense 1-based ids.
type IndexBlockSet struct {
	dims params.Dims

	typ            string // full type text, kept for identity
	key            string // dispatch key, suffix stripped
	modMin, modMax int

	blocks []*IndexBlock
}

// NewIndexBlockSet returns an untyped set resolving bounds against dims.
func NewIndexBlockSet(dims params.Dims) *IndexBlockSet {
	return &IndexBlockSet{dims: dims}
}

// SetType fixes the dimension type. The full text is retained as the set's
// identity; the suffix-stripped key resolves the bounds. An unrecognized key
// only warns: custom dimension types are permitted, but their bounds stay
// zero unless the author meant a standard key.
func (s *IndexBlockSet) SetType(typeText string) {
	s.typ = typeText
	s.key = dispatchKey(typeText)
	mn, mx, err := s.dims.IndexLimits(s.key)
	if err != nil {
		slog.Warn("Defining non-standard index dimension type",
			"type", typeText, "key", s.key)
		return
	}
	s.modMin, s.modMax = mn, mx
}

// Type returns the full dimension-type text the set was declared with.
func (s *IndexBlockSet) Type() string { return s.typ }

// Key returns the suffix-stripped dispatch key.
func (s *IndexBlockSet) Key() string { return s.key }

// Bounds returns the resolved dimension bounds.
func (s *IndexBlockSet) Bounds() (mn, mx int) { return s.modMin, s.modMax }

// Allocate pre-creates n empty blocks, each inheriting the set's current
// bounds.
func (s *IndexBlockSet) Allocate(n int) {
	s.blocks = make([]*IndexBlock, n)
	for i := range s.blocks {
		s.blocks[i] = NewIndexBlock(s.modMin, s.modMax)
	}
}

// Len returns the number of blocks.
func (s *IndexBlockSet) Len() int { return len(s.blocks) }

// Block returns the block with 1-based id. Ids outside 1..Len() are a
// caller error.
func (s *IndexBlockSet) Block(id int) *IndexBlock { return s.blocks[id-1] }

// Read parses a set body: the dimension type (unless already set), the block
// count, then count (id, blockText) pairs. Ids may arrive in any textual
// order but must cover 1..count exactly once each; a duplicate or
// out-of-range id is rejected rather than silently misfiled.
func (s *IndexBlockSet) Read(sc *tcsamio.Scanner) error {
	if s.typ == "" {
		tok, err := sc.Token()
		if err != nil {
			return err
		}
		s.SetType(tok)
	}
	n, err := sc.Int()
	if err != nil {
		return err
	}
	s.Allocate(n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		id, err := sc.Int()
		if err != nil {
			return err
		}
		if id < 1 || id > n {
			return sc.Wrap(fmt.Errorf("%w: block id %d outside 1..%d in %q set", ErrBounds, id, n, s.typ))
		}
		if seen[id-1] {
			return sc.Wrap(fmt.Errorf("%w: duplicate block id %d in %q set", ErrFormat, id, s.typ))
		}
		seen[id-1] = true
		if err := s.blocks[id-1].Read(sc); err != nil {
			return err
		}
	}
	return nil
}

// Write emits the set body in the annotated format Read consumes: type,
// block count, then each block's id and text in id order.
func (s *IndexBlockSet) Write(w io.Writer) error {
	tw := tcsamio.NewWriter(w)
	tw.Line(s.typ, "index type (dimension name)")
	tw.Line(len(s.blocks), "number of index blocks defined")
	tw.Comment("id  block")
	for i, b := range s.blocks {
		tw.Values(i+1, b)
	}
	return tw.Err()
}
