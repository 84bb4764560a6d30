// 14 Oct 2026
// Getting alignments in and out of files and streams.
// A source or destination is either a file name (string) or a byte
// stream (io.Reader / io.Writer). Anything else, such as something
// that only deals in runes or strings, is ErrType.

package align

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	log "github.com/sirupsen/logrus"
)

// Format says how an alignment is written down.
type Format int

const (
	Auto    Format = iota // Look at the content. Means Fasta on output.
	Fasta                 //
	Clustal               //
)

var formatNames = [...]string{Auto: "auto", Fasta: "fasta", Clustal: "clustal"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat turns "fasta", "clustal" or "auto" into a Format.
// Case does not matter.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return Auto, fmt.Errorf("unknown format %q: %w", s, ErrValue)
}

// detect looks at the first non-blank line.
func detect(data []byte) (Format, error) {
	data = bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(data) == 0:
		return Auto, fmt.Errorf("no sequences found: %w", ErrParse)
	case data[0] == cmmtChar:
		return Fasta, nil
	case bytes.HasPrefix(data, []byte(clustalMagic)):
		return Clustal, nil
	}
	return Auto, fmt.Errorf("cannot recognise format: %w", ErrParse)
}

// parse reads an alignment from data, which it does not keep.
func parse(data []byte, f Format) (names, seqs []string, err error) {
	if f == Auto {
		if f, err = detect(data); err != nil {
			return nil, nil, err
		}
	}
	switch f {
	case Fasta:
		names, seqs, err = readFasta(data)
	case Clustal:
		names, seqs, err = readClustal(data)
	default:
		return nil, nil, fmt.Errorf("reading %v: %w", f, ErrValue)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(seqs) == 0 {
		return nil, nil, fmt.Errorf("no sequences found: %w", ErrParse)
	}
	iwant := len(seqs[0])
	for i, s := range seqs {
		if len(s) != iwant {
			return nil, nil, fmt.Errorf("sequence %d %q has length %d, first sequence length %d: %w",
				i, names[i], len(s), iwant, ErrParse)
		}
	}
	return names, seqs, nil
}

// load reads names and sequences from a file name or a stream.
func load(src interface{}, f Format) (names, seqs []string, err error) {
	switch s := src.(type) {
	case string:
		return loadPath(s, f)
	case io.Reader:
		data, err := io.ReadAll(s)
		if err != nil {
			return nil, nil, fmt.Errorf("reading alignment: %w", err)
		}
		return parse(data, f)
	}
	return nil, nil, fmt.Errorf("load from %T: %w", src, ErrType)
}

// loadPath maps the file, rather than reading it, and parses straight
// out of the mapping.
func loadPath(path string, f Format) (names, seqs []string, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if fi.IsDir() {
		return nil, nil, fmt.Errorf("load %s: %w", path, ErrIsDir)
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	if fi.Size() == 0 { // cannot map an empty file
		return parse(nil, f)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	defer mm.Unmap()
	if names, seqs, err = parse(mm, f); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %s: %d sequences, %d columns", path, len(seqs), len(seqs[0]))
	return names, seqs, nil
}

// write does the formatting for both files and streams.
func write(w io.Writer, f Format, names []string, rows Rows) error {
	bw := bufio.NewWriter(w)
	var err error
	switch f {
	case Auto, Fasta:
		err = writeFasta(bw, names, rows)
	case Clustal:
		err = writeClustal(bw, names, rows)
	default:
		return fmt.Errorf("writing %v: %w", f, ErrValue)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// dump sends the view to a file name or a stream.
func dump(dst interface{}, f Format, names []string, rows Rows) error {
	if f == Clustal {
		if err := clustalNames(names); err != nil {
			return err
		}
	}
	switch d := dst.(type) {
	case string:
		return dumpPath(d, f, names, rows)
	case io.Writer:
		log.Debugf("dumping %d sequences as %v to %T", len(names), f, d)
		return write(d, f, names, rows)
	}
	return fmt.Errorf("dump to %T: %w", dst, ErrType)
}

func dumpPath(path string, f Format, names []string, rows Rows) (err error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("dump %s: %w", path, ErrIsDir)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	log.Debugf("dumping %d sequences as %v to %s", len(names), f, path)
	return write(fp, f, names, rows)
}

// dumps is only used for fasta, which cannot fail on a
// strings.Builder. An error here is our mistake.
func dumps(f Format, names []string, rows Rows) string {
	var sb strings.Builder
	if err := write(&sb, f, names, rows); err != nil {
		panic("program bug: " + err.Error())
	}
	return sb.String()
}
