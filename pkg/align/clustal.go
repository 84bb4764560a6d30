// 14 Oct 2026
// Clustal format. The first line starts with CLUSTAL. Then come
// blocks, separated by blank lines. Each line in a block is a name,
// some white space and a piece of the sequence, maybe followed by a
// running count. Lines starting with a space are the conservation
// markers, which we ignore on reading and do not write.

package align

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/msatrim/pkg/white"
)

const (
	clustalMagic   = "CLUSTAL"
	clustalPerLine = 60
)

// readClustal reads clustal formatted bytes. The name order is the
// order in the first block. A name which only turns up later is an
// error.
func readClustal(data []byte) (names, seqs []string, err error) {
	l := lexer{input: data}
	for {
		ln, ok := l.line()
		if !ok {
			l.errorf("no %s header", clustalMagic)
			return nil, nil, l.err
		}
		if len(bytes.TrimSpace(ln)) == 0 {
			continue
		}
		if !bytes.HasPrefix(ln, []byte(clustalMagic)) {
			l.errorf("first line does not start with %s", clustalMagic)
			return nil, nil, l.err
		}
		break
	}

	ndx := make(map[string]int)
	var chunks [][]byte
	block, inBlock := 0, false
	for ln, ok := l.line(); ok; ln, ok = l.line() {
		if len(bytes.TrimSpace(ln)) == 0 {
			if inBlock {
				block++
				inBlock = false
			}
			continue
		}
		if ln[0] == ' ' || ln[0] == '\t' { // conservation line
			continue
		}
		f := bytes.Fields(ln)
		switch len(f) {
		case 2:
		case 3:
			if _, err := strconv.Atoi(string(f[2])); err != nil {
				l.errorf("residue count %q is not a number", f[2])
				return nil, nil, l.err
			}
		default:
			l.errorf("want name and sequence, got %d fields", len(f))
			return nil, nil, l.err
		}
		inBlock = true
		name := string(f[0])
		i, seen := ndx[name]
		switch {
		case block == 0 && seen:
			l.errorf("name %q twice in first block", name)
			return nil, nil, l.err
		case block == 0:
			i = len(names)
			ndx[name] = i
			names = append(names, name)
			chunks = append(chunks, nil)
		case !seen:
			l.errorf("name %q not in first block", name)
			return nil, nil, l.err
		}
		chunks[i] = append(chunks[i], f[1]...)
	}
	seqs = make([]string, len(chunks))
	for i, c := range chunks {
		seqs[i] = string(c)
	}
	return names, seqs, nil
}

// clustalNames checks that every name is one field. A name with white
// space would be read back as a name plus sequence.
func clustalNames(names []string) error {
	for _, name := range names {
		if len(name) == 0 {
			return fmt.Errorf("empty name in clustal output: %w", ErrValue)
		}
		if white.Has([]byte(name)) {
			return fmt.Errorf("name %q has white space: %w", name, ErrValue)
		}
	}
	return nil
}

// writeClustal writes blocks of clustalPerLine columns, names padded
// so the sequences line up. Names are checked before anything is
// written.
func writeClustal(w *bufio.Writer, names []string, rows Rows) error {
	if err := clustalNames(names); err != nil {
		return err
	}
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	seqs := rows.Strings()
	w.WriteString(clustalMagic + " multiple sequence alignment\n")
	ncol := 0
	if len(seqs) > 0 {
		ncol = len(seqs[0])
	}
	for start := 0; start < ncol; start += clustalPerLine {
		end := start + clustalPerLine
		if end > ncol {
			end = ncol
		}
		w.WriteByte(NL)
		for i, name := range names {
			w.WriteString(name)
			w.WriteString(strings.Repeat(" ", width-len(name)+1))
			w.WriteString(seqs[i][start:end])
			w.WriteByte(NL)
		}
	}
	return nil
}
