// 12 Oct 2026

package align

import (
	"fmt"

	"github.com/andrew-torda/msatrim/matrix"
)

// SeqMatrix holds the names and aligned sequences. It is the ground
// truth for coordinates. Once made, nothing changes it, so an
// Alignment and any number of trimmed views can point at the same one.
type SeqMatrix struct {
	names []string
	data  *matrix.BMatrix2d
}

// NewSeqMatrix copies names and seqs into a new matrix. There must be
// one name per sequence and all sequences must have the same length,
// otherwise we return ErrShape.
func NewSeqMatrix(names, seqs []string) (*SeqMatrix, error) {
	if len(names) != len(seqs) {
		return nil, fmt.Errorf("%d names but %d sequences: %w", len(names), len(seqs), ErrShape)
	}
	data, err := matrix.FromRows(seqs)
	if err != nil {
		return nil, fmt.Errorf("sequence %w: %w", err, ErrShape)
	}
	m := &SeqMatrix{names: make([]string, len(names)), data: data}
	copy(m.names, names)
	return m, nil
}

// NRow is the number of sequences
func (m *SeqMatrix) NRow() int { return len(m.names) }

// NCol is the alignment width
func (m *SeqMatrix) NCol() int {
	_, ncol := m.data.Size()
	return ncol
}

// Name returns the name of sequence i. Negative i counts from the end.
func (m *SeqMatrix) Name(i int) (string, error) {
	j, err := normNdx(i, len(m.names))
	if err != nil {
		return "", err
	}
	return m.names[j], nil
}

// row gives back the storage itself, so callers must not write to it.
func (m *SeqMatrix) row(i int) []byte { return m.data.Mat[i] }

func (m *SeqMatrix) at(i, j int) byte { return m.data.Mat[i][j] }
