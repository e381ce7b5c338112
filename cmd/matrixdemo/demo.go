package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/densematrix/matrix"
)

// walkthrough prints the fixed demonstration sequence to w.
// Any matrix error aborts the sequence and is returned to the caller.
func walkthrough[T matrix.Number](w io.Writer) error {
	mat1, err := matrix.NewDense[T](3, 3)
	if err != nil {
		return err
	}
	var v T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v++
			p, err := mat1.Ref(i, j)
			if err != nil {
				return err
			}
			*p = v
		}
	}
	if err = section(w, "mat1", mat1); err != nil {
		return err
	}

	// Copy, then modify the copy only.
	mat2 := matrix.New[T]()
	if err = mat2.Assign(mat1); err != nil {
		return err
	}
	if err = mat2.Set(0, 0, 10); err != nil {
		return err
	}
	if err = section(w, "mat2 after modification", mat2); err != nil {
		return err
	}

	verdict := "mat1 and mat2 are NOT equal."
	if mat1.Equal(mat2) {
		verdict = "mat1 and mat2 are equal."
	}
	if _, err = fmt.Fprintln(w, verdict); err != nil {
		return err
	}

	mat3, err := matrix.Add[T](mat1, mat2)
	if err != nil {
		return err
	}
	if err = section(w, "mat3 (mat1 + mat2)", mat3); err != nil {
		return err
	}

	mat4, err := matrix.NewFromRows([][]T{{4, 7}, {2, 6}})
	if err != nil {
		return err
	}
	if err = section(w, "mat4", mat4); err != nil {
		return err
	}
	det, err := mat4.Determinant()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, "det(mat4):", det); err != nil {
		return err
	}

	if err = section(w, "mat1 transposed", mat1.Transpose()); err != nil {
		return err
	}

	return nil
}

// section prints a titled matrix followed by a blank line.
// The first write error is returned.
func section[T matrix.Number](w io.Writer, title string, m *matrix.Dense[T]) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	if _, err := m.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}

func printDet[T matrix.Number](w io.Writer, literal string, parse func(string) (T, error)) error {
	m, err := parseLiteral(literal, parse)
	if err != nil {
		return err
	}
	det, err := m.Determinant()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, det)

	return err
}

func printTranspose[T matrix.Number](w io.Writer, literal string, parse func(string) (T, error)) error {
	m, err := parseLiteral(literal, parse)
	if err != nil {
		return err
	}
	_, err = m.Transpose().WriteTo(w)

	return err
}
