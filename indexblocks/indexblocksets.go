package indexblocks

import (
	"fmt"
	"io"

	"github.com/wStockhausen/wtsTCSAM2015/params"
	"github.com/wStockhausen/wtsTCSAM2015/tcsamio"
)

// Keywords framing the top-level collection in configuration files.
const (
	KeywordSets = "INDEX_BLOCK_SETS"
	KeywordSet  = "INDEX_BLOCK_SET"
)

// IndexBlockSets is the top-level collection of index block sets, one per
// 1-based slot. Each slot holds a set with its own dimension type; types are
// assumed distinct but not enforced.
type IndexBlockSets struct {
	dims params.Dims
	sets []*IndexBlockSet
}

// NewIndexBlockSets returns an empty collection resolving dimension bounds
// against dims.
func NewIndexBlockSets(dims params.Dims) *IndexBlockSets {
	return &IndexBlockSets{dims: dims}
}

// CreateSets pre-creates n empty, untyped sets.
func (ss *IndexBlockSets) CreateSets(n int) {
	ss.sets = make([]*IndexBlockSet, n)
	for i := range ss.sets {
		ss.sets[i] = NewIndexBlockSet(ss.dims)
	}
}

// Len returns the number of slots.
func (ss *IndexBlockSets) Len() int { return len(ss.sets) }

// Set returns the set at 1-based slot. Slots outside 1..Len() are a caller
// error.
func (ss *IndexBlockSets) Set(slot int) *IndexBlockSet { return ss.sets[slot-1] }

// SetType sets the dimension type of the set at 1-based slot.
func (ss *IndexBlockSets) SetType(slot int, typeText string) {
	ss.sets[slot-1].SetType(typeText)
}

// ByType returns the first set (in slot order) declared with the given
// dimension-type text, or nil when no slot matches. Probing for an absent
// type is a supported non-error case.
func (ss *IndexBlockSets) ByType(typeText string) *IndexBlockSet {
	for _, s := range ss.sets {
		if s.Type() == typeText {
			return s
		}
	}
	return nil
}

// Read parses the whole collection: the INDEX_BLOCK_SETS keyword, the set
// count, then count (INDEX_BLOCK_SET, slot, set-body) triples. A mismatched
// keyword, an out-of-range slot, or a repeated slot all fail the read; this
// is the strict boundary of the grammar.
func (ss *IndexBlockSets) Read(sc *tcsamio.Scanner) error {
	if err := sc.Keyword(KeywordSets); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	n, err := sc.Int()
	if err != nil {
		return err
	}
	ss.sets = make([]*IndexBlockSet, n)
	for i := 0; i < n; i++ {
		kw, err := sc.Token()
		if err != nil {
			return err
		}
		if kw != KeywordSet {
			return sc.Wrap(fmt.Errorf("%w: expected keyword %q, got %q", ErrFormat, KeywordSet, kw))
		}
		slot, err := sc.Int()
		if err != nil {
			return err
		}
		if slot < 1 || slot > n {
			return sc.Wrap(fmt.Errorf("%w: %s slot %d outside 1..%d", ErrBounds, KeywordSet, slot, n))
		}
		if ss.sets[slot-1] != nil {
			return sc.Wrap(fmt.Errorf("%w: duplicate %s slot %d", ErrFormat, KeywordSet, slot))
		}
		ss.sets[slot-1] = NewIndexBlockSet(ss.dims)
		if err := ss.sets[slot-1].Read(sc); err != nil {
			return err
		}
	}
	return nil
}

// Write emits the collection in the annotated format Read consumes, slots in
// order.
func (ss *IndexBlockSets) Write(w io.Writer) error {
	tw := tcsamio.NewWriter(w)
	tw.Line(KeywordSets, "required keyword")
	tw.Line(len(ss.sets), "number of index block sets defined")
	if err := tw.Err(); err != nil {
		return err
	}
	for i, s := range ss.sets {
		tw.Values(KeywordSet, i+1)
		if err := tw.Err(); err != nil {
			return err
		}
		if err := s.Write(w); err != nil {
			return err
		}
	}
	return nil
}
