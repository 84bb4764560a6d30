// 12 Oct 2026

// Package align holds multiple sequence alignments and trimmed views
// of them. An Alignment is a set of named sequences, all the same
// length. A Trimmed alignment is the same data seen through two masks,
// one for sequences and one for residue positions, so nothing gets
// copied when trimming and the original can always be recovered.
//
// Indexing follows one rule everywhere: i in [-n, n), with negative
// values counting back from the end. Anything else is ErrIndex.
package align

// Alignment is a set of aligned sequences.
type Alignment struct {
	m *SeqMatrix
}

// New makes an alignment from parallel slices of names and sequences.
// Both are copied. Sequences of different lengths, or a different
// number of names and sequences, give ErrShape.
func New(names, seqs []string) (*Alignment, error) {
	m, err := NewSeqMatrix(names, seqs)
	if err != nil {
		return nil, err
	}
	return &Alignment{m: m}, nil
}

// Matrix returns the underlying storage.
func (a *Alignment) Matrix() *SeqMatrix { return a.m }

// Names returns a copy of the sequence names.
func (a *Alignment) Names() []string {
	names := make([]string, len(a.m.names))
	copy(names, a.m.names)
	return names
}

// Sequences is the row view, one element per sequence.
func (a *Alignment) Sequences() Rows { return Rows{m: a.m} }

// Residues is the column view, one element per alignment position.
func (a *Alignment) Residues() Cols { return Cols{m: a.m} }

// Equal says if two alignments have the same names and sequences in
// the same order.
func (a *Alignment) Equal(b *Alignment) bool {
	if a.m == b.m {
		return true
	}
	if a.m.NRow() != b.m.NRow() || a.m.NCol() != b.m.NCol() {
		return false
	}
	for i := range a.m.names {
		if a.m.names[i] != b.m.names[i] || string(a.m.row(i)) != string(b.m.row(i)) {
			return false
		}
	}
	return true
}

// Dump writes the alignment in fasta format to dst, which is either
// a file name or an io.Writer.
func (a *Alignment) Dump(dst interface{}) error { return a.DumpFormat(dst, Fasta) }

// DumpFormat is Dump, but you choose the format.
func (a *Alignment) DumpFormat(dst interface{}, f Format) error {
	return dump(dst, f, a.m.names, a.Sequences())
}

// Dumps returns the alignment in fasta format as a string.
func (a *Alignment) Dumps() string { return dumps(Fasta, a.m.names, a.Sequences()) }

// Load reads an alignment from src, which is a file name or an
// io.Reader. Auto works out the format from the content.
func Load(src interface{}, f Format) (*Alignment, error) {
	names, seqs, err := load(src, f)
	if err != nil {
		return nil, err
	}
	return New(names, seqs)
}
