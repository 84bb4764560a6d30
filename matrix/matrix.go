// Package matrix 7 feb 2018, cut down 12 oct 2026
// A two dimensional array of bytes, used to hold the rows of an
// alignment. All the rows live in one backing array, and Mat[i] is
// just a slice into it, so there is one allocation however many
// sequences there are.
// In the silly case of zero rows, we still remember the number of
// columns, so Size gives back what was asked for. With zero columns,
// every row is a zero length slice.

package matrix

import (
	"fmt"
)

// BMatrix2d is a two dimensional array of bytes
type BMatrix2d struct {
	Mat      [][]byte
	fullData []byte
	ncol     int
}

// fixSlices sets the pointers in a matrix.
// It is in its own function so we can call it for new objects
// or when resizing an old one.
func (mat *BMatrix2d) fixSlices(n_r, n_c int) {
	tmp := mat.fullData
	mat.Mat = make([][]byte, n_r)
	for i := range mat.Mat {
		mat.Mat[i] = tmp[:n_c:n_c] // cap stops an append from running into the next row
		tmp = tmp[n_c:]
	}
	mat.ncol = n_c
}

// NewBMatrix2d gives us a two dimensional matrix of m x n.
func NewBMatrix2d(n_r, n_c int) *BMatrix2d {
	if n_r < 0 || n_c < 0 {
		panic(fmt.Sprintf("NewBMatrix2d given %d x %d", n_r, n_c))
	}
	r := new(BMatrix2d)
	r.fullData = make([]byte, n_r*n_c)
	r.fixSlices(n_r, n_c)
	return r
}

// FromRows copies a set of strings into a new matrix. The strings
// must all be the same length. If they are not, we return an error
// naming the first row which does not fit.
func FromRows(rows []string) (*BMatrix2d, error) {
	var ncol int
	if len(rows) > 0 {
		ncol = len(rows[0])
	}
	for i, s := range rows {
		if len(s) != ncol {
			return nil, fmt.Errorf("row %d has length %d, first row has %d", i, len(s), ncol)
		}
	}
	mat := NewBMatrix2d(len(rows), ncol)
	for i, s := range rows {
		copy(mat.Mat[i], s)
	}
	return mat, nil
}

// Size acts on a BMatrix2d pointer and returns the number of rows and
// number of columns
func (mat *BMatrix2d) Size() (nrow, ncol int) {
	return len(mat.Mat), mat.ncol
}

// Col copies column j into dst, which is grown if necessary, and
// returns it. Rows are visited in order.
func (mat *BMatrix2d) Col(j int, dst []byte) []byte {
	dst = dst[:0]
	for _, row := range mat.Mat {
		dst = append(dst, row[j])
	}
	return dst
}

// String acts on a BMatrix2d pointer and returns a string with the
// Matrix printed out in a form that might be useful for debugging.
func (mat *BMatrix2d) String() (s string) {
	for _, row := range mat.Mat {
		s += fmt.Sprintf("%s\n", row)
	}
	return s
}
