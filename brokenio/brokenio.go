// brokenio is a wrapper around an io.Reader. It allows us to set
// rates of failed read operations, so we can check that readers of
// alignments pass errors back up instead of quietly returning half
// an alignment.
// Typical use: You get a file pointer or some other reader. You write
// reader = brokenio.NewReader(reader) to wrap the old reader.
// Everything then functions as before, but with artificial errors.
// When we introduce an error, we return ErrBroken.
// When we introduce a failure on the first read, we return io.EOF
// without an error. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we make up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// The probabilities are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
// failAfter is deterministic. Once that many bytes have gone through,
// every read fails. A negative value turns it off.
type Reader struct {
	rdrOrig      io.Reader
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32
	failAfter    int
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failure.
// It must be between zero and 1.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have been delivered.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes that have been passed back so far.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left { //  Only hand over what we are allowed to, so
			p = p[:left] //    the next call is the one that breaks.
		}
	}
	if r.probFail > 0 && rand.Float32() < r.probFail {
		return 0, fmt.Errorf("call %d: %w", r.nCalled, ErrBroken)
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
