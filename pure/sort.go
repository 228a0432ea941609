package pure

import "cmp"

// MergeSort sorts s in place in ascending order. The sort is stable.
func MergeSort[T cmp.Ordered](s []T) {
	MergeSortFunc(s, cmp.Compare[T])
}

// MergeSortFunc sorts s in place using cmp, which returns a negative number
// when a < b, a positive number when a > b and zero otherwise.
// Equal elements keep their original order.
func MergeSortFunc[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, make([]T, len(s)), cmp)
}

// buf must have the same length as s.
func mergeSort[T any](s, buf []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], cmp)
	mergeSort(s[mid:], buf[mid:], cmp)
	if cmp(s[mid-1], s[mid]) <= 0 {
		return
	}

	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if cmp(buf[j], buf[i]) < 0 {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	// leftovers of the right half are already in place
	copy(s[k:], buf[i:mid])
}
