package pure

import (
	"cmp"
	"slices"
)

// BinarySearch returns the index of target in the ascending slice sorted,
// or -1 if it is absent. With duplicates, any matching index may be returned.
func BinarySearch[T cmp.Ordered](sorted []T, target T) int {
	idx, found := slices.BinarySearch(sorted, target)
	if !found {
		return -1
	}
	return idx
}
