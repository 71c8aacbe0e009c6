package sense

// BatchSize is the number of raw conversions collected per period in the
// trimmed profile. trimEach values are discarded from each end after sorting.
const (
	BatchSize = 12
	trimEach  = 2
)

// Batch is one period's raw conversions. Reducing it sorts it in place.
type Batch [BatchSize]uint16

// TrimmedMean sorts the batch ascending, drops the two smallest and two
// largest values, and averages the remaining eight with a truncating shift.
// Trims sporadic single-sample spikes without the cost of a median filter
// (the "averaging of N-X samples" technique from ST AN4073).
func (b *Batch) TrimmedMean() uint16 {
	insertionSort(b[:])
	var sum uint32
	for _, v := range b[trimEach : BatchSize-trimEach] {
		sum += uint32(v)
	}
	return uint16(sum >> 3)
}

// n is 12; no need for a general-purpose sort routine.
func insertionSort(a []uint16) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
