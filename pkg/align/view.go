package align

// Rows and Cols are the two ways of looking into a SeqMatrix. They
// do not copy anything until you ask for an element. A nil mask means
// keep everything in that dimension, which is how a plain Alignment
// looks at its data.

// Rows is the row-major view. Element i is a sequence.
type Rows struct {
	m          *SeqMatrix
	rows, cols *Mask
}

// Cols is the column-major view. Element j is one residue position
// read down all the sequences.
type Cols struct {
	m          *SeqMatrix
	rows, cols *Mask
}

// dimSize is the size of one dimension after masking.
func dimSize(mask *Mask, base int) int {
	if mask == nil {
		return base
	}
	return mask.Size()
}

// toBase does the index check and translation for one dimension.
func toBase(mask *Mask, i, base int) (int, error) {
	if mask == nil {
		return normNdx(i, base)
	}
	return mask.Get(i)
}

// Len is the number of sequences in the view.
func (r Rows) Len() int { return dimSize(r.rows, r.m.NRow()) }

// At returns sequence i, restricted to the kept columns. Negative i
// counts from the end. Out of range gives ErrIndex.
func (r Rows) At(i int) (string, error) {
	b, err := toBase(r.rows, i, r.m.NRow())
	if err != nil {
		return "", err
	}
	return r.base(b), nil
}

// base builds the string for base row b.
func (r Rows) base(b int) string {
	row := r.m.row(b)
	if r.cols == nil {
		return string(row)
	}
	s := make([]byte, r.cols.Size())
	for j, c := range r.cols.fwd {
		s[j] = row[c]
	}
	return string(s)
}

// Strings returns every sequence in the view.
func (r Rows) Strings() []string {
	ss := make([]string, r.Len())
	for i := range ss {
		b := i
		if r.rows != nil {
			b = r.rows.fwd[i]
		}
		ss[i] = r.base(b)
	}
	return ss
}

// Len is the number of residue positions in the view.
func (c Cols) Len() int { return dimSize(c.cols, c.m.NCol()) }

// At returns column j, restricted to the kept rows, in row order.
// Negative j counts from the end. Out of range gives ErrIndex.
func (c Cols) At(j int) (string, error) {
	b, err := toBase(c.cols, j, c.m.NCol())
	if err != nil {
		return "", err
	}
	return c.base(b, nil), nil
}

// base builds the string for base column b, using buf as scratch.
func (c Cols) base(b int, buf []byte) string {
	if c.rows == nil {
		return string(c.m.data.Col(b, buf))
	}
	buf = buf[:0]
	for _, i := range c.rows.fwd {
		buf = append(buf, c.m.at(i, b))
	}
	return string(buf)
}

// Strings returns every column in the view.
func (c Cols) Strings() []string {
	ss := make([]string, c.Len())
	buf := make([]byte, 0, dimSize(c.rows, c.m.NRow()))
	for j := range ss {
		b := j
		if c.cols != nil {
			b = c.cols.fwd[j]
		}
		ss[j] = c.base(b, buf)
	}
	return ss
}
