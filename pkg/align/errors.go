package align

import (
	"errors"
	"fmt"
)

// Every error coming back from this package wraps one of these, or an
// error from package os for problems with paths. Use errors.Is.
var (
	ErrIndex   = errors.New("index out of range")
	ErrShape   = errors.New("shape mismatch")
	ErrValue   = errors.New("bad value")
	ErrParse   = errors.New("cannot parse alignment")
	ErrIsDir   = errors.New("is a directory")
	ErrType    = errors.New("not a path or byte stream")
	ErrDropped = errors.New("index not kept by mask")
)

// normNdx is the one place where indices get checked. Negative i
// counts back from the end, as in i = size + i. The check is done
// after the translation, so -size-1 and size both fail.
func normNdx(i, size int) (int, error) {
	j := i
	if j < 0 {
		j += size
	}
	if j < 0 || j >= size {
		return 0, fmt.Errorf("index %d out of range [%d, %d): %w", i, -size, size, ErrIndex)
	}
	return j, nil
}
