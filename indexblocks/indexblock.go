package indexblocks

import (
	"fmt"
	"strings"

	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// IndexBlock is an ordered union of index ranges over one model dimension,
// parsed from "[range;range;...]" text. After parsing it carries two lookup
// tables: a forward table from 1-based block position to model index, and a
// reverse table from model index back to block position (0 when the index is
// not a member).
//
// Ranges may overlap. The forward table keeps the duplicates; the reverse
// table takes the last range that wrote each model index. That last-write-
// wins rule is the documented overlap policy, not an accident.
type IndexBlock struct {
	modMin, modMax int
	ranges         []*IndexRange

	fwd    []int // fwd[p-1] is the model index at block position p
	rev    []int // rev[i-revMin] is the block position of model index i, or 0
	revMin int
}

// NewIndexBlock returns an empty block whose ranges will substitute the
// given dimension bounds for open operands.
func NewIndexBlock(modMin, modMax int) *IndexBlock {
	return &IndexBlock{modMin: modMin, modMax: modMax}
}

// Parse reads bracketed block text. The interior is split on ';' into one
// range expression apiece; each parses with this block's dimension bounds.
func (b *IndexBlock) Parse(text string) error {
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return fmt.Errorf("%w: index block %q must be bracketed as [...]", ErrFormat, text)
	}
	parts := strings.Split(text[1:len(text)-1], ";")
	b.ranges = make([]*IndexRange, 0, len(parts))
	for _, part := range parts {
		r := NewIndexRange(b.modMin, b.modMax)
		if err := r.Parse(part); err != nil {
			return fmt.Errorf("index block %q: %w", text, err)
		}
		b.ranges = append(b.ranges, r)
	}
	b.buildIndexMaps()
	return nil
}

// buildIndexMaps rebuilds the forward and reverse tables from the parsed
// ranges. The reverse table conservatively spans the model bounds as well as
// every index touched by a range, so membership probes anywhere in the
// dimension answer 0 instead of faulting.
func (b *IndexBlock) buildIndexMaps() {
	lo, hi := b.modMin, b.modMax
	n := 0
	for _, r := range b.ranges {
		lo = min(lo, r.Min())
		hi = max(hi, r.Max())
		n += r.Size()
	}
	b.fwd = make([]int, 0, n)
	b.revMin = lo
	b.rev = make([]int, hi-lo+1)
	pos := 0
	for _, r := range b.ranges {
		for _, i := range r.Indices() {
			pos++
			b.fwd = append(b.fwd, i)
			b.rev[i-lo] = pos
		}
	}
}

// Read consumes the next token from the scanner and parses it.
func (b *IndexBlock) Read(sc *tcsamio.Scanner) error {
	tok, err := sc.Token()
	if err != nil {
		return err
	}
	if err := b.Parse(tok); err != nil {
		return sc.Wrap(err)
	}
	return nil
}

// Size returns the number of block positions, counting overlap duplicates.
func (b *IndexBlock) Size() int { return len(b.fwd) }

// Ranges returns the member ranges in parse order.
func (b *IndexBlock) Ranges() []*IndexRange { return b.ranges }

// ModelIndex maps a 1-based block position to its model index. Positions
// outside 1..Size() are a caller error.
func (b *IndexBlock) ModelIndex(pos int) int { return b.fwd[pos-1] }

// ModelIndices returns the forward table: the model index at each block
// position, in range order, duplicates included.
func (b *IndexBlock) ModelIndices() []int { return b.fwd }

// Position maps a model index to its 1-based block position, or 0 when the
// index is not a member. Any integer is a valid probe.
func (b *IndexBlock) Position(modelIndex int) int {
	if modelIndex < b.revMin || modelIndex >= b.revMin+len(b.rev) {
		return 0
	}
	return b.rev[modelIndex-b.revMin]
}

// Contains reports whether the model index is a member of the block.
func (b *IndexBlock) Contains(modelIndex int) bool {
	return b.Position(modelIndex) != 0
}

// String renders the block in parseable bracket/semicolon form, member
// ranges in original order.
func (b *IndexBlock) String() string {
	parts := make([]string, len(b.ranges))
	for i, r := range b.ranges {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ";") + "]"
}
