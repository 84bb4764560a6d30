package align

import (
	"fmt"
)

// Mask picks out a subset of the rows or columns of an alignment.
// The kept indices form a dense, trimmed space, 0..Size()-1, and the
// mask translates between that and the base space, 0..BaseSize()-1.
// A mask does not change after it is made.
type Mask struct {
	keep []bool
	fwd  []int // fwd[i] is the base index of trimmed index i
	rev  []int // rev[b] is the trimmed index of base b, or -1
}

// NewMask makes a mask from one flag per base index. The flags are
// copied, so the caller may reuse the slice.
func NewMask(keep []bool) *Mask {
	m := &Mask{
		keep: make([]bool, len(keep)),
		rev:  make([]int, len(keep)),
	}
	copy(m.keep, keep)
	for b, k := range keep {
		if k {
			m.rev[b] = len(m.fwd)
			m.fwd = append(m.fwd, b)
		} else {
			m.rev[b] = -1
		}
	}
	return m
}

// MaskFromIndices makes a mask over baseSize elements, keeping the
// indices in ndx. They must be strictly increasing and lie in
// [0, baseSize). If not, we return ErrValue and no mask.
func MaskFromIndices(ndx []int, baseSize int) (*Mask, error) {
	if baseSize < 0 {
		return nil, fmt.Errorf("negative base size %d: %w", baseSize, ErrValue)
	}
	keep := make([]bool, baseSize)
	prev := -1
	for i, b := range ndx {
		if b < 0 || b >= baseSize {
			return nil, fmt.Errorf("mask index %d at position %d not in [0, %d): %w", b, i, baseSize, ErrValue)
		}
		if b <= prev {
			return nil, fmt.Errorf("mask index %d at position %d follows %d, not increasing: %w", b, i, prev, ErrValue)
		}
		keep[b] = true
		prev = b
	}
	return NewMask(keep), nil
}

// AllMask keeps everything. It is what you get from a freshly
// loaded, trimmed alignment.
func AllMask(n int) *Mask {
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	return NewMask(keep)
}

// Size is the number of kept elements
func (m *Mask) Size() int { return len(m.fwd) }

// BaseSize is the size of the space being filtered.
func (m *Mask) BaseSize() int { return len(m.keep) }

// Get returns the base index of the i'th kept element. Negative i
// counts from the end. Anything outside [-Size(), Size()) is ErrIndex.
func (m *Mask) Get(i int) (int, error) {
	j, err := normNdx(i, len(m.fwd))
	if err != nil {
		return 0, err
	}
	return m.fwd[j], nil
}

// ToBase is Get under the name you want when you are thinking about
// coordinates rather than elements.
func (m *Mask) ToBase(i int) (int, error) { return m.Get(i) }

// ToTrimmed takes an index in the base space and says where it ended
// up after trimming. If the element was thrown away, the error is
// ErrDropped. Base indices follow the same negative index rule.
func (m *Mask) ToTrimmed(b int) (int, error) {
	j, err := normNdx(b, len(m.keep))
	if err != nil {
		return 0, err
	}
	if t := m.rev[j]; t >= 0 {
		return t, nil
	}
	return 0, fmt.Errorf("base index %d: %w", b, ErrDropped)
}

// Kept says if base index b survived. Out of range is just false.
func (m *Mask) Kept(b int) bool {
	j, err := normNdx(b, len(m.keep))
	return err == nil && m.keep[j]
}

// Keep returns a copy of the flags, one per base index.
func (m *Mask) Keep() []bool {
	k := make([]bool, len(m.keep))
	copy(k, m.keep)
	return k
}

// Indices returns a copy of the kept base indices, in increasing order.
func (m *Mask) Indices() []int {
	ndx := make([]int, len(m.fwd))
	copy(ndx, m.fwd)
	return ndx
}

// All says if nothing was dropped.
func (m *Mask) All() bool { return len(m.fwd) == len(m.keep) }

// String gives something like "39/46 kept".
func (m *Mask) String() string {
	return fmt.Sprintf("%d/%d kept", len(m.fwd), len(m.keep))
}
