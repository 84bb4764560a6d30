// Reader and writer for fasta format alignments.

package align

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/andrew-torda/msatrim/pkg/white"
)

const (
	NL       = '\n'
	cmmtChar = '>' // and this introduces comments in fasta format
)

// lexer walks over the whole input, a line at a time. The state
// functions below decide what each line means.
type lexer struct {
	input  []byte
	lineno int
	names  []string
	seqs   []string
	cmmt   string // name of the record being read
	seq    []byte // partial sequence
	err    error
}

type stateFn func(*lexer) stateFn

// line returns the next line without its terminator, or false at the
// end of input.
func (l *lexer) line() ([]byte, bool) {
	if len(l.input) == 0 {
		return nil, false
	}
	l.lineno++
	var ln []byte
	if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
		ln, l.input = l.input, nil
	} else {
		ln, l.input = l.input[:ndx], l.input[ndx+1:]
	}
	return bytes.TrimSuffix(ln, []byte{'\r'}), true
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.err = fmt.Errorf("line %d: %s: %w", l.lineno, fmt.Sprintf(format, args...), ErrParse)
	return nil
}

// gstart skips blank lines until the first comment.
func gstart(l *lexer) stateFn {
	for {
		ln, ok := l.line()
		if !ok {
			return nil
		}
		if len(bytes.TrimSpace(ln)) == 0 {
			continue
		}
		if ln[0] != cmmtChar {
			return l.errorf("expected '%c' at start of fasta record", cmmtChar)
		}
		l.cmmt = string(ln[1:])
		return gseq
	}
}

// gseq collects sequence lines until the next comment or the end.
func gseq(l *lexer) stateFn {
	for {
		ln, ok := l.line()
		if ok && (len(ln) == 0 || ln[0] != cmmtChar) {
			l.seq = append(l.seq, ln...)
			continue
		}
		white.Remove(&l.seq)
		if len(l.seq) == 0 {
			return l.errorf("zero length sequence after %q", l.cmmt)
		}
		l.names = append(l.names, l.cmmt)
		l.seqs = append(l.seqs, string(l.seq))
		l.seq = l.seq[:0]
		if !ok {
			return nil
		}
		l.cmmt = string(ln[1:])
	}
}

// readFasta reads fasta formatted bytes. The results are copies, so
// data may be thrown away afterwards.
func readFasta(data []byte) (names, seqs []string, err error) {
	l := lexer{input: data}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, nil, l.err
	}
	return l.names, l.seqs, nil
}

// writeFasta writes one header line and one unbroken sequence line
// per record.
func writeFasta(w *bufio.Writer, names []string, rows Rows) error {
	for i, name := range names {
		s, err := rows.At(i)
		if err != nil {
			return err
		}
		w.WriteByte(cmmtChar)
		w.WriteString(name)
		w.WriteByte(NL)
		w.WriteString(s)
		if err := w.WriteByte(NL); err != nil {
			return err
		}
	}
	return nil
}
