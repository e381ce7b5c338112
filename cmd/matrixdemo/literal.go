package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/densematrix/matrix"
)

// parseLiteral reads "a b c; d e f" into a matrix: rows are separated by ';'
// and elements by whitespace. A blank literal is the empty matrix.
func parseLiteral[T matrix.Number](s string, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	if strings.TrimSpace(s) == "" {
		return matrix.New[T](), nil
	}

	var rows [][]T
	for i, line := range strings.Split(s, ";") {
		fields := strings.Fields(line)
		row := make([]T, 0, len(fields))
		for _, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return matrix.NewFromRows(rows)
}

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
