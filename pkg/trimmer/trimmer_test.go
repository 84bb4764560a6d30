package trimmer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/msatrim/pkg/align"
	. "github.com/andrew-torda/msatrim/pkg/trimmer"
)

var (
	names = []string{"Sp8", "Sp10", "Sp26", "Sp6"}
	seqs  = []string{
		"-----GLGKV",
		"-------DPA",
		"AAAAAAAAAL",
		"-----ASGAI",
	}
)

func testAlignment(t *testing.T) *align.Alignment {
	t.Helper()
	a, err := align.New(names, seqs)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// fixed is an engine double. It drops the first sequence and the first
// five columns, and remembers what it was given.
type fixed struct {
	got   Params
	calls int
}

func (f *fixed) Masks(names, seqs []string, p Params) ([]bool, []bool, error) {
	f.calls++
	f.got = p
	rows := make([]bool, len(seqs))
	for i := range rows {
		rows[i] = i != 0
	}
	cols := make([]bool, len(seqs[0]))
	for j := range cols {
		cols[j] = j >= 5
	}
	// scribble on what we were given, to show the caller does not care
	names[0] = "trashed"
	seqs[0] = "trashed"
	return rows, cols, nil
}

func TestAutomatic(t *testing.T) {
	a := testAlignment(t)
	eng := &fixed{}
	tr, err := NewAutomatic(GappyOut, eng)
	if err != nil {
		t.Fatal(err)
	}
	trimmed, err := tr.Trim(a)
	if err != nil {
		t.Fatal(err)
	}
	if eng.calls != 1 || eng.got.Kind != Automatic || eng.got.Method != GappyOut {
		t.Fatalf("engine called %d times with %v", eng.calls, eng.got)
	}
	if trimmed.Sequences().Len() != 3 || trimmed.Residues().Len() != 5 {
		t.Fatalf("trimmed to %d x %d", trimmed.Sequences().Len(), trimmed.Residues().Len())
	}
	if s, _ := trimmed.Sequences().At(0); s != "--DPA" {
		t.Fatalf("first trimmed sequence got %s", s)
	}
	if !trimmed.OriginalAlignment().Equal(a) {
		t.Fatal("original alignment lost")
	}
	if got := strings.Join(a.Names(), " "); got != "Sp8 Sp10 Sp26 Sp6" {
		t.Fatalf("engine changed the input names, %s", got)
	}
	if s, _ := a.Sequences().At(0); s != seqs[0] {
		t.Fatalf("engine changed the input sequences, %s", s)
	}
}

func TestManual(t *testing.T) {
	eng := &fixed{}
	opts := ManualOptions{GapThreshold: Float(0.9), ConservationPercentage: Float(60), Window: Int(3)}
	tr, err := NewManual(opts, eng)
	if err != nil {
		t.Fatal(err)
	}
	*opts.GapThreshold = 0.1 // must not reach the engine
	if _, err := tr.Trim(testAlignment(t)); err != nil {
		t.Fatal(err)
	}
	got := eng.got
	if got.Kind != Manual || *got.Options.GapThreshold != 0.9 || *got.Options.Window != 3 {
		t.Fatalf("engine got %v", got)
	}
	if got.Options.SimilarityThreshold != nil {
		t.Fatal("unset option reached the engine")
	}
	if s := got.String(); s != "manual {gap-threshold=0.9 conservation-percentage=60 window=3}" {
		t.Fatalf("params print as %s", s)
	}
}

func TestEngineError(t *testing.T) {
	bad := errors.New("native engine fell over")
	eng := EngineFunc(func(names, seqs []string, p Params) ([]bool, []bool, error) {
		return nil, nil, bad
	})
	tr, err := NewAutomatic(Strict, eng)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed, err := tr.Trim(testAlignment(t)); !errors.Is(err, bad) || trimmed != nil {
		t.Fatal("engine error not passed back, got", err)
	}
}

func TestEngineContract(t *testing.T) {
	short := EngineFunc(func(names, seqs []string, p Params) ([]bool, []bool, error) {
		return make([]bool, len(seqs)), make([]bool, len(seqs[0])-1), nil
	})
	tr, err := NewAutomatic(NoGaps, short)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("wrong length mask should panic")
		}
	}()
	tr.Trim(testAlignment(t))
}

func TestNewErrors(t *testing.T) {
	eng := &fixed{}
	if _, err := NewAutomatic(Method(17), eng); !errors.Is(err, align.ErrValue) {
		t.Fatal("bad method wanted ErrValue got", err)
	}
	if _, err := NewAutomatic(Strict, nil); !errors.Is(err, align.ErrValue) {
		t.Fatal("no engine wanted ErrValue got", err)
	}
	if _, err := NewManual(ManualOptions{}, nil); !errors.Is(err, align.ErrValue) {
		t.Fatal("no engine wanted ErrValue got", err)
	}
	var nilFunc EngineFunc
	if _, err := NewAutomatic(Strict, nilFunc); !errors.Is(err, align.ErrValue) {
		t.Fatal("nil EngineFunc wanted ErrValue got", err)
	}
	if _, err := NewManual(ManualOptions{}, nilFunc); !errors.Is(err, align.ErrValue) {
		t.Fatal("nil EngineFunc wanted ErrValue got", err)
	}
}

func TestMethods(t *testing.T) {
	for _, m := range []Method{Strict, StrictPlus, GappyOut, NoGaps, NoAllGaps, Automated1} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMethod(%s) got %v, %v", m, got, err)
		}
	}
	if m, err := ParseMethod("GappyOut"); err != nil || m != GappyOut {
		t.Fatal("ParseMethod should ignore case", err)
	}
	if _, err := ParseMethod("automated2"); !errors.Is(err, align.ErrValue) {
		t.Fatal("unknown method wanted ErrValue got", err)
	}
	if s := Method(-1).String(); s != "Method(-1)" {
		t.Fatalf("bad method prints as %s", s)
	}
}
