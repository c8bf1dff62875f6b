package layout_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/layout"
	"github.com/stretchr/testify/require"
)

func TestCoefficients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lengths []int
		order   layout.Order
		want    []int
	}{
		{"row 2x3", []int{2, 3}, layout.RowMajor, []int{3, 1}},
		{"col 2x3", []int{2, 3}, layout.ColumnMajor, []int{1, 2}},
		{"row 2x3x4", []int{2, 3, 4}, layout.RowMajor, []int{12, 4, 1}},
		{"col 2x3x4", []int{2, 3, 4}, layout.ColumnMajor, []int{1, 2, 6}},
		{"row 1d", []int{7}, layout.RowMajor, []int{1}},
		{"col 1d", []int{7}, layout.ColumnMajor, []int{1}},
		{"row zero middle", []int{2, 0, 4}, layout.RowMajor, []int{0, 4, 1}},
		{"col zero middle", []int{2, 0, 4}, layout.ColumnMajor, []int{1, 2, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, layout.Coefficients(tc.lengths, tc.order))
		})
	}
}

// TestCoefficientsOrderDuality checks the 2-D (R, C) strides in both orders.
func TestCoefficientsOrderDuality(t *testing.T) {
	const r, c = 5, 9
	row := layout.Coefficients([]int{r, c}, layout.RowMajor)
	col := layout.Coefficients([]int{r, c}, layout.ColumnMajor)

	require.Equal(t, c, row[0])
	require.Equal(t, 1, row[1])
	require.Equal(t, 1, col[0])
	require.Equal(t, r, col[1])
}

func TestSize(t *testing.T) {
	require.Equal(t, 24, layout.Size([]int{2, 3, 4}))
	require.Equal(t, 0, layout.Size([]int{2, 0, 4}))
	require.Equal(t, 1, layout.Size([]int{1, 1}))
}

// TestFlattenCorners flattens the zero index and the last valid index of a
// few shapes in both orders.
func TestFlattenCorners(t *testing.T) {
	shapes := [][]int{{1}, {6}, {2, 3}, {3, 2}, {2, 3, 4}, {4, 1, 3, 2}, {2, 2, 2, 2, 2}}

	for _, lengths := range shapes {
		for _, o := range []layout.Order{layout.RowMajor, layout.ColumnMajor} {
			coeffs := layout.Coefficients(lengths, o)
			last := make([]int, len(lengths))
			for i, l := range lengths {
				last[i] = l - 1
			}
			require.Zero(t, layout.Flatten(make([]int, len(lengths)), coeffs), "%v %v", lengths, o)
			require.Equal(t, layout.Size(lengths)-1, layout.Flatten(last, coeffs), "%v %v", lengths, o)
		}
	}
}

func TestFlattenScenario(t *testing.T) {
	row := layout.Coefficients([]int{2, 3}, layout.RowMajor)
	require.Equal(t, 0, layout.Flatten([]int{0, 0}, row))
	require.Equal(t, 2, layout.Flatten([]int{0, 2}, row))
	require.Equal(t, 3, layout.Flatten([]int{1, 0}, row))
	require.Equal(t, 5, layout.Flatten([]int{1, 2}, row))

	col := layout.Coefficients([]int{2, 3}, layout.ColumnMajor)
	require.Equal(t, 1, layout.Flatten([]int{1, 0}, col))
	require.Equal(t, 2, layout.Flatten([]int{0, 1}, col))
	require.Equal(t, 4, layout.Flatten([]int{0, 2}, col))
	require.Equal(t, 5, layout.Flatten([]int{1, 2}, col))
}
