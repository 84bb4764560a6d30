package align_test

import (
	"errors"
	"testing"

	. "github.com/andrew-torda/msatrim/pkg/align"
)

func TestNormNdx(t *testing.T) {
	tests := []struct {
		i, size, want int
		ok            bool
	}{
		{0, 5, 0, true},
		{4, 5, 4, true},
		{-1, 5, 4, true},
		{-5, 5, 0, true},
		{5, 5, 0, false},
		{-6, 5, 0, false},
		{0, 0, 0, false},
		{-1, 0, 0, false},
	}
	for _, tt := range tests {
		got, err := NormNdx(tt.i, tt.size)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Fatalf("NormNdx(%d, %d) got %d, %v wanted %d", tt.i, tt.size, got, err, tt.want)
			}
		} else if !errors.Is(err, ErrIndex) {
			t.Fatalf("NormNdx(%d, %d) wanted ErrIndex, got %v", tt.i, tt.size, err)
		}
	}
}

func TestMaskForward(t *testing.T) {
	m := NewMask([]bool{false, true, true, false, true})
	if m.Size() != 3 || m.BaseSize() != 5 {
		t.Fatalf("size got %d/%d wanted 3/5", m.Size(), m.BaseSize())
	}
	want := []int{1, 2, 4}
	for i, w := range want {
		if b, err := m.Get(i); err != nil || b != w {
			t.Fatalf("Get(%d) got %d, %v wanted %d", i, b, err, w)
		}
		if b, err := m.ToBase(i - len(want)); err != nil || b != w {
			t.Fatalf("ToBase(%d) got %d, %v wanted %d", i-len(want), b, err, w)
		}
	}
	for _, i := range []int{3, -4, 100, -100} {
		if _, err := m.Get(i); !errors.Is(err, ErrIndex) {
			t.Fatalf("Get(%d) wanted ErrIndex got %v", i, err)
		}
	}
	if got := m.Indices(); len(got) != 3 || got[0] != 1 || got[2] != 4 {
		t.Fatalf("Indices got %v", got)
	}
	if m.String() != "3/5 kept" {
		t.Fatalf("String got %s", m)
	}
}

func TestMaskToTrimmed(t *testing.T) {
	m := NewMask([]bool{false, true, true, false, true})
	for b, w := range map[int]int{1: 0, 2: 1, 4: 2, -1: 2} {
		if got, err := m.ToTrimmed(b); err != nil || got != w {
			t.Fatalf("ToTrimmed(%d) got %d, %v wanted %d", b, got, err, w)
		}
	}
	for _, b := range []int{0, 3, -2} {
		if _, err := m.ToTrimmed(b); !errors.Is(err, ErrDropped) {
			t.Fatalf("ToTrimmed(%d) wanted ErrDropped got %v", b, err)
		}
		if m.Kept(b) {
			t.Fatalf("Kept(%d) should be false", b)
		}
	}
	if _, err := m.ToTrimmed(5); !errors.Is(err, ErrIndex) {
		t.Fatal("ToTrimmed past the end wanted ErrIndex, got", err)
	}
	if m.Kept(5) || m.Kept(-6) {
		t.Fatal("out of range should not be kept")
	}
}

// TestMaskCopies checks that nobody can change a mask from outside.
func TestMaskCopies(t *testing.T) {
	keep := []bool{true, false, true}
	m := NewMask(keep)
	keep[1] = true
	if m.Kept(1) {
		t.Fatal("mask followed the caller's slice")
	}
	k := m.Keep()
	k[0] = false
	if !m.Kept(0) {
		t.Fatal("Keep() handed out the mask's own slice")
	}
	ndx := m.Indices()
	ndx[0] = 2
	if b, _ := m.Get(0); b != 0 {
		t.Fatal("Indices() handed out the mask's own slice")
	}
}

func TestMaskFromIndices(t *testing.T) {
	m, err := MaskFromIndices([]int{0, 3, 4}, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, false, true, true, false}
	got := m.Keep()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flags got %v wanted %v", got, want)
		}
	}
	bad := [][]int{
		{3, 1},
		{1, 1},
		{0, 6},
		{-1, 2},
	}
	for _, ndx := range bad {
		if m, err := MaskFromIndices(ndx, 6); !errors.Is(err, ErrValue) || m != nil {
			t.Fatalf("MaskFromIndices(%v) wanted ErrValue and no mask, got %v %v", ndx, m, err)
		}
	}
	if m, err := MaskFromIndices(nil, 4); err != nil || m.Size() != 0 || m.BaseSize() != 4 {
		t.Fatal("empty index list should drop everything", err)
	}
}

func TestAllMask(t *testing.T) {
	m := AllMask(4)
	if !m.All() || m.Size() != 4 {
		t.Fatalf("AllMask(4) got %v", m)
	}
	if b, _ := m.Get(-1); b != 3 {
		t.Fatalf("AllMask last got %d", b)
	}
	if NewMask([]bool{true, false}).All() {
		t.Fatal("All() true with a dropped element")
	}
}
