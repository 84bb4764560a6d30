package align_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/andrew-torda/msatrim/pkg/align"
	"github.com/andrew-torda/msatrim/pkg/randseq"
)

// TestRandomFasta reads untidy random fasta and checks it against the
// sequences that went in.
func TestRandomFasta(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		var sb strings.Builder
		args := randseq.RandSeqArgs{
			Iseed: seed, Wrtr: &sb, Cmmt: "r", Nseq: 17, Len: 133, Messy: true,
		}
		names, seqs, err := randseq.Write(&args)
		if err != nil {
			t.Fatal(err)
		}
		a, err := Load(strings.NewReader(sb.String()), Auto)
		if err != nil {
			t.Fatal("seed", seed, err)
		}
		want, err := New(names, seqs)
		if err != nil {
			t.Fatal(err)
		}
		if !a.Equal(want) {
			t.Fatal("seed", seed, "loaded alignment differs")
		}
		res, sq := a.Residues(), a.Sequences()
		for j := 0; j < res.Len(); j++ {
			col := at(t, res, j)
			for i := 0; i < sq.Len(); i++ {
				if col[i] != seqs[i][j] {
					t.Fatalf("seed %d: residue %d sequence %d: got %c want %c",
						seed, j, i, col[i], seqs[i][j])
				}
			}
		}
	}
}

func TestRandomClustal(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Iseed: 5, Wrtr: &sb, Cmmt: "r", Nseq: 9, Len: 250}
	names, seqs, err := randseq.Write(&args)
	if err != nil {
		t.Fatal(err)
	}
	for i := range names { // clustal names cannot have spaces
		names[i] = strings.ReplaceAll(names[i], " ", "_")
	}
	a, err := New(names, seqs)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := a.DumpFormat(&out, Clustal); err != nil {
		t.Fatal(err)
	}
	b, err := Load(strings.NewReader(out.String()), Auto)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("clustal round trip changed the alignment")
	}
}

func TestRandomLengthErr(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Iseed: 3, Wrtr: &sb, Nseq: 4, Len: 30, Messy: true, MkErr: true}
	if _, _, err := randseq.Write(&args); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(strings.NewReader(sb.String()), Fasta); !errors.Is(err, ErrParse) {
		t.Fatal("short sequence should be ErrParse, got", err)
	}
}
