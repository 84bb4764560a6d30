// 13 Oct 2026

package align

import (
	"fmt"
)

// Trimmed is an alignment seen through a sequence mask and a residue
// mask. It shares storage with the alignment it came from.
type Trimmed struct {
	m       *SeqMatrix
	seqMask *Mask
	resMask *Mask
}

// Trim applies the two masks to a. The sequence mask must cover every
// sequence and the residue mask every column, otherwise ErrShape.
// A nil mask keeps everything. Nothing is copied.
func Trim(a *Alignment, seqMask, resMask *Mask) (*Trimmed, error) {
	return newTrimmed(a.m, seqMask, resMask)
}

// NewTrimmed builds a trimmed alignment straight from names, sequences
// and one flag per sequence and per column. A nil mask keeps
// everything in that dimension.
func NewTrimmed(names, seqs []string, seqMask, resMask []bool) (*Trimmed, error) {
	m, err := NewSeqMatrix(names, seqs)
	if err != nil {
		return nil, err
	}
	var sm, rm *Mask
	if seqMask != nil {
		sm = NewMask(seqMask)
	}
	if resMask != nil {
		rm = NewMask(resMask)
	}
	return newTrimmed(m, sm, rm)
}

func newTrimmed(m *SeqMatrix, seqMask, resMask *Mask) (*Trimmed, error) {
	if seqMask == nil {
		seqMask = AllMask(m.NRow())
	}
	if resMask == nil {
		resMask = AllMask(m.NCol())
	}
	if seqMask.BaseSize() != m.NRow() {
		return nil, fmt.Errorf("sequence mask covers %d, alignment has %d sequences: %w",
			seqMask.BaseSize(), m.NRow(), ErrShape)
	}
	if resMask.BaseSize() != m.NCol() {
		return nil, fmt.Errorf("residue mask covers %d, alignment has %d columns: %w",
			resMask.BaseSize(), m.NCol(), ErrShape)
	}
	return &Trimmed{m: m, seqMask: seqMask, resMask: resMask}, nil
}

// LoadTrimmed reads an alignment which has already been trimmed. Both
// masks keep everything, so it looks just like the file.
func LoadTrimmed(src interface{}, f Format) (*Trimmed, error) {
	names, seqs, err := load(src, f)
	if err != nil {
		return nil, err
	}
	return NewTrimmed(names, seqs, nil, nil)
}

// SequencesMask says which sequences were kept.
func (t *Trimmed) SequencesMask() *Mask { return t.seqMask }

// ResiduesMask says which columns were kept.
func (t *Trimmed) ResiduesMask() *Mask { return t.resMask }

// Names returns the names of the kept sequences.
func (t *Trimmed) Names() []string {
	names := make([]string, t.seqMask.Size())
	for i, b := range t.seqMask.fwd {
		names[i] = t.m.names[b]
	}
	return names
}

// Sequences is the trimmed row view. Element i is the i'th kept
// sequence, with only the kept columns.
func (t *Trimmed) Sequences() Rows { return Rows{m: t.m, rows: t.seqMask, cols: t.resMask} }

// Residues is the trimmed column view. Element j is the j'th kept
// column, with only the kept sequences.
func (t *Trimmed) Residues() Cols { return Cols{m: t.m, rows: t.seqMask, cols: t.resMask} }

// OriginalAlignment throws away the masks and gives back the whole
// alignment, every sequence and every column. The storage is shared.
func (t *Trimmed) OriginalAlignment() *Alignment { return &Alignment{m: t.m} }

// Dump writes the trimmed alignment in fasta format to dst, a file
// name or an io.Writer.
func (t *Trimmed) Dump(dst interface{}) error { return t.DumpFormat(dst, Fasta) }

// DumpFormat is Dump, but you choose the format.
func (t *Trimmed) DumpFormat(dst interface{}, f Format) error {
	return dump(dst, f, t.Names(), t.Sequences())
}

// Dumps returns the trimmed alignment in fasta format.
func (t *Trimmed) Dumps() string { return dumps(Fasta, t.Names(), t.Sequences()) }
