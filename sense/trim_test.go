package sense

import (
	"math/rand"
	"sort"
	"testing"
)

// reference: sort a copy, sum indices 2..9, shift by 3.
func referenceTrimmedMean(b Batch) uint16 {
	s := make([]uint16, len(b))
	copy(s, b[:])
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	var sum uint32
	for _, v := range s[2:10] {
		sum += uint32(v)
	}
	return uint16(sum >> 3)
}

func TestTrimmedMeanMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 500; n++ {
		var b Batch
		for i := range b {
			b[i] = uint16(rng.Intn(4096))
		}
		want := referenceTrimmedMean(b)
		got := b.TrimmedMean()
		if got != want {
			t.Fatalf("batch %d: TrimmedMean = %d, want %d (%v)", n, got, want, b)
		}
	}
}

func TestTrimmedMeanOrderIndependent(t *testing.T) {
	base := Batch{100, 105, 95, 102, 98, 101, 99, 103, 97, 104, 3000, 0}
	want := base.TrimmedMean() // sorts in place, result fixed from here on

	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 100; n++ {
		b := base
		rng.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		if got := b.TrimmedMean(); got != want {
			t.Fatalf("shuffle %d: TrimmedMean = %d, want %d", n, got, want)
		}
	}
}

func TestTrimmedMeanDropsSpikes(t *testing.T) {
	// Two low and two high outliers must not influence the result.
	b := Batch{2048, 2048, 2048, 2048, 2048, 2048, 2048, 2048, 0, 0, 4095, 4095}
	if got := b.TrimmedMean(); got != 2048 {
		t.Fatalf("TrimmedMean = %d, want 2048", got)
	}
}

func TestTrimmedMeanTruncates(t *testing.T) {
	// Remaining eight values sum to 15: 15 >> 3 == 1.
	b := Batch{0, 0, 1, 2, 2, 2, 2, 2, 2, 2, 4095, 4095}
	if got := b.TrimmedMean(); got != 1 {
		t.Fatalf("TrimmedMean = %d, want 1", got)
	}
}

func TestInsertionSortOrders(t *testing.T) {
	a := []uint16{5, 1, 4, 1, 3, 2}
	insertionSort(a)
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			t.Fatalf("not sorted: %v", a)
		}
	}
}
