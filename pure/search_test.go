package pure_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestBinarySearch_Found(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, 8, pure.BinarySearch(arr, 9))
	assert.Equal(t, 0, pure.BinarySearch(arr, 1))
	assert.Equal(t, 4, pure.BinarySearch(arr, 5))
}

func TestBinarySearch_Missing(t *testing.T) {
	assert.Equal(t, -1, pure.BinarySearch([]int{1, 3, 5}, 4))
	assert.Equal(t, -1, pure.BinarySearch([]int{1, 3, 5}, 0))
	assert.Equal(t, -1, pure.BinarySearch([]int{1, 3, 5}, 6))
	assert.Equal(t, -1, pure.BinarySearch([]int{}, 1))
	assert.Equal(t, -1, pure.BinarySearch([]int{42}, 1))
}

func TestBinarySearch_DuplicatesAndNegatives(t *testing.T) {
	arr := []int{-20, -3, -3, -3, 0, 7, 7}
	for _, target := range []int{-20, -3, 0, 7} {
		idx := pure.BinarySearch(arr, target)
		if assert.NotEqual(t, -1, idx) {
			assert.Equal(t, target, arr[idx])
		}
	}

	same := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	assert.Equal(t, 1, same[pure.BinarySearch(same, 1)])
	assert.Equal(t, -1, pure.BinarySearch(same, 2))
}

func TestBinarySearch_Strings(t *testing.T) {
	assert.Equal(t, 1, pure.BinarySearch([]string{"a", "b", "c"}, "b"))
}
