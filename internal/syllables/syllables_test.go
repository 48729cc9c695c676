package syllables

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 7))
}

// indexFor finds an available tile showing syllable s.
func indexFor(r *Round, s string) int {
	for i, t := range r.Tiles() {
		if t == s && r.Available(i) {
			return i
		}
	}
	return -1
}

func TestInOrderReachesSuccess(t *testing.T) {
	words := [][]string{
		{"CA", "SA"},
		{"BO", "NE", "CA"},
		{"PA", "PA", "I"},
		{"BA", "NA", "NA"},
	}
	for seed := uint64(0); seed < 20; seed++ {
		for _, w := range words {
			r := NewRound(w, testRNG(seed))
			for k, s := range w {
				got := r.Pick(indexFor(r, s))
				want := Continue
				if k == len(w)-1 {
					want = Success
				}
				if got != want {
					t.Fatalf("%v seed %d pick %d (%s) = %v, want %v", w, seed, k, s, got, want)
				}
			}
			if !r.Done() {
				t.Fatalf("%v not done", w)
			}
		}
	}
}

func TestTilesArePermutation(t *testing.T) {
	target := []string{"BA", "NA", "NA"}
	r := NewRound(target, testRNG(3))
	tiles := r.Tiles()
	slices.Sort(tiles)
	want := slices.Clone(target)
	slices.Sort(want)
	if !slices.Equal(tiles, want) {
		t.Errorf("tiles = %v, want permutation of %v", r.Tiles(), target)
	}
}

func TestMismatchThenClear(t *testing.T) {
	r := NewRound([]string{"BO", "NE", "CA"}, testRNG(1))

	if got := r.Pick(indexFor(r, "NE")); got != Mismatch {
		t.Fatalf("wrong first syllable = %v, want mismatch", got)
	}
	r.Clear()
	if len(r.Selection()) != 0 {
		t.Fatalf("selection after clear = %v", r.Selection())
	}

	r.Pick(indexFor(r, "BO"))
	if got := r.Pick(indexFor(r, "CA")); got != Mismatch {
		t.Fatalf("skipped syllable = %v, want mismatch", got)
	}
	r.Clear()

	for _, s := range []string{"BO", "NE"} {
		if got := r.Pick(indexFor(r, s)); got != Continue {
			t.Fatalf("pick %s = %v", s, got)
		}
	}
	if got := r.Pick(indexFor(r, "CA")); got != Success {
		t.Fatalf("final pick = %v, want success", got)
	}
}

func TestDuplicateSyllablesUpToCount(t *testing.T) {
	r := NewRound([]string{"PA", "PA", "I"}, testRNG(9))

	first := indexFor(r, "PA")
	if r.Pick(first) != Continue {
		t.Fatal("first PA rejected")
	}
	if r.Pick(first) != Unavailable {
		t.Fatal("same tile picked twice")
	}
	second := indexFor(r, "PA")
	if second < 0 || second == first {
		t.Fatal("second PA tile should still be available")
	}
	if r.Pick(second) != Continue {
		t.Fatal("second PA rejected")
	}
	if indexFor(r, "PA") != -1 {
		t.Fatal("PA available beyond its count")
	}
}

func TestFinishedAndOutOfRange(t *testing.T) {
	r := NewRound([]string{"SOL"}, testRNG(0))
	if r.Pick(5) != Unavailable || r.Pick(-1) != Unavailable {
		t.Fatal("out of range tile accepted")
	}
	if r.Pick(0) != Success {
		t.Fatal("single syllable word")
	}
	if r.Pick(0) != Finished {
		t.Fatal("pick after success")
	}
	r.Clear()
	if got := r.Selection(); len(got) != 1 {
		t.Errorf("clear after success changed selection: %v", got)
	}
}
