// 31 July 2020
// Random alignments in fasta format, for testing readers. The output
// has white space and newlines scattered through the sequences, the
// way real files do, and the caller also gets back the clean names and
// sequences to compare with.

package randseq

import (
	"fmt"
	"io"
	"math/rand"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

var aminos = []byte("acdefghiklmnpqrstvwy")

// RandSeqArgs is the set of arguments passed to Write
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
	Messy bool      // Scatter white space through the sequences
	MkErr bool      // Add an error, by changing a length
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(letters))
	for i := range ret {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, rnd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if rnd.Int31n(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	s = addInner(s, nNL, '\n', rnd)
	return s
}

// Write writes random aligned sequences to args.Wrtr and returns the
// names and sequences, without the white space. If MkErr is set, the
// last sequence is one residue short, in the file and in seqs.
func Write(args *RandSeqArgs) (names, seqs []string, err error) {
	letters := aminos
	if !args.NoGap { // gaps about 1 in 5
		letters = append([]byte{}, aminos...)
		letters = append(letters, []byte("-----")...)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprintf("%d", args.Nseq))
	for i := 0; i < args.Nseq; i++ {
		s := getseq(args.Len, letters, rnd)
		if args.MkErr && i == args.Nseq-1 && len(s) > 0 {
			s = s[:len(s)-1]
		}
		name := fmt.Sprintf("%s %[2]*d", args.Cmmt, width, i+1)
		names = append(names, name)
		seqs = append(seqs, string(s))
		if args.Messy {
			s = addspace(s, rnd)
		}
		if _, err = fmt.Fprintf(args.Wrtr, ">%s\n%s\n", name, s); err != nil {
			return nil, nil, err
		}
	}
	return names, seqs, nil
}
