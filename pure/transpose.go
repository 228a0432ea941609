package pure

import (
	"errors"
	"fmt"
)

var ErrRaggedMatrix = errors.New("matrix rows have different lengths")

// Transpose returns a new matrix whose rows are the columns of matrix.
// The input is left untouched. An empty matrix transposes to an empty matrix.
func Transpose[T any](matrix [][]T) ([][]T, error) {
	if len(matrix) == 0 {
		return [][]T{}, nil
	}
	cols := len(matrix[0])
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrRaggedMatrix, i, len(row), cols)
		}
	}

	transposed := make([][]T, cols)
	for j := range transposed {
		transposed[j] = make([]T, len(matrix))
		for i, row := range matrix {
			transposed[j][i] = row[j]
		}
	}
	return transposed, nil
}
