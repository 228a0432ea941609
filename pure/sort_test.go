package pure_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestMergeSort(t *testing.T) {
	arr := []int{38, 27, 43, 3, 9, 82}
	pure.MergeSort(arr)
	assert.Equal(t, []int{3, 9, 27, 38, 43, 82}, arr)
}

func TestMergeSort_EdgeCases(t *testing.T) {
	empty := []int{}
	pure.MergeSort(empty)
	assert.Empty(t, empty)

	single := []int{42}
	pure.MergeSort(single)
	assert.Equal(t, []int{42}, single)

	sevens := slices.Repeat([]int{7}, 50)
	pure.MergeSort(sevens)
	assert.Equal(t, slices.Repeat([]int{7}, 50), sevens)

	mixed := []int{-3, 1, -1, 0, 5, -10, 3}
	pure.MergeSort(mixed)
	assert.Equal(t, []int{-10, -3, -1, 0, 1, 3, 5}, mixed)
}

func TestMergeSort_SortedAndReversed(t *testing.T) {
	asc := make([]int, 100)
	desc := make([]int, 100)
	for i := range asc {
		asc[i] = i
		desc[i] = 100 - i
	}
	want := slices.Clone(asc)
	pure.MergeSort(asc)
	assert.Equal(t, want, asc)

	want = slices.Sorted(slices.Values(desc))
	pure.MergeSort(desc)
	assert.Equal(t, want, desc)
}

func TestMergeSort_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for n := 0; n < 200; n++ {
		arr := make([]float64, rng.IntN(40))
		for i := range arr {
			arr[i] = rng.NormFloat64() * 1e10
		}
		want := slices.Clone(arr)
		slices.Sort(want)
		pure.MergeSort(arr)
		assert.Equal(t, want, arr)
	}
}

func TestMergeSortFunc_IsStable(t *testing.T) {
	words := []string{"bb", "a", "cc", "d", "ee", "f"}
	pure.MergeSortFunc(words, func(a, b string) int {
		return len(a) - len(b)
	})
	assert.Equal(t, []string{"a", "d", "f", "bb", "cc", "ee"}, words)

	pure.MergeSortFunc(words, strings.Compare)
	assert.Equal(t, []string{"a", "bb", "cc", "d", "ee", "f"}, words)
}
