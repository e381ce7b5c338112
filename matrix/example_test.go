package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densematrix/matrix"
)

// ExampleDense_Determinant shows the cofactor expansion on a 3×3 integer matrix.
func ExampleDense_Determinant() {
	m, _ := matrix.NewFromRows([][]int{
		{6, 1, 1},
		{4, -2, 5},
		{2, 8, 7},
	})
	det, err := m.Determinant()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("det =", det)

	_, err = matrix.New[int]().Determinant()
	fmt.Println(errors.Is(err, matrix.ErrInvalidArgument))

	// Output:
	// det = -306
	// true
}

// ExampleAdd adds two matrices and prints the text rendering.
func ExampleAdd() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{0.5, 0.5}, {0.5, 0.5}})

	sum, err := matrix.Add[float64](a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sum)

	_, err = matrix.Add[float64](a, matrix.New[float64]())
	fmt.Println(err)

	// Output:
	// 1.5 2.5
	// 3.5 4.5
	// Add: ValidateBinarySameShape: ValidateNotEmpty: matrix: invalid argument: empty matrix
}

// ExampleDense_Take demonstrates the move contract: the source ends up 0×0.
func ExampleDense_Take() {
	src, _ := matrix.NewFromRows([][]int{{1, 2, 3}})
	dst := src.Take()

	fmt.Println(dst.Shape(), src.Shape())
	fmt.Print(dst)

	// Output:
	// {1 3} {0 0}
	// 1 2 3
}

// ExampleDense_Minor removes row 0 and column 1.
func ExampleDense_Minor() {
	m, _ := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	minor, _ := m.Minor(0, 1)
	fmt.Print(minor)

	_, err := m.Minor(2, 0)
	fmt.Println(err)

	// Output:
	// 4 6
	// Minor: Dense.Minor(2,0): matrix: index out of range
}
