package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

const wantWalkthrough = `mat1:
1 2 3
4 5 6
7 8 9

mat2 after modification:
10 2 3
4 5 6
7 8 9

mat1 and mat2 are NOT equal.
mat3 (mat1 + mat2):
11 4 6
8 10 12
14 16 18

mat4:
4 7
2 6

det(mat4): 10
mat1 transposed:
1 4 7
2 5 8
3 6 9

`

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestWalkthrough(t *testing.T) {
	for _, args := range [][]string{nil, {"--float"}} {
		out, err := execute(t, args...)
		require.NoError(t, err)
		require.Equal(t, wantWalkthrough, out)
	}
}

var errSink = errors.New("sink closed")

// limitWriter accepts n bytes and then fails every write.
type limitWriter struct{ n int }

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errSink
	}
	w.n -= len(p)

	return len(p), nil
}

// TestWalkthroughWriteError cuts the output at several offsets, including
// inside the first matrix body, and expects the write error every time.
func TestWalkthroughWriteError(t *testing.T) {
	for _, n := range []int{0, 3, 8, len("mat1:\n1 2 3\n4 5"), len(wantWalkthrough) - 1} {
		require.ErrorIsf(t, walkthrough[int](&limitWriter{n: n}), errSink, "limit %d", n)
		require.ErrorIsf(t, walkthrough[float64](&limitWriter{n: n}), errSink, "limit %d", n)
	}
	require.NoError(t, walkthrough[int](&limitWriter{n: len(wantWalkthrough)}))
}

func TestDetCommand(t *testing.T) {
	out, err := execute(t, "det", "6 1 1; 4 -2 5; 2 8 7")
	require.NoError(t, err)
	require.Equal(t, "-306\n", out)

	out, err = execute(t, "det", "--float", "0.5 0.25; 0.125 1")
	require.NoError(t, err)
	require.Equal(t, "0.46875\n", out)

	_, err = execute(t, "det", "1 2 3; 4 5 6")
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = execute(t, "det", "1 2; 3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = execute(t, "det", "1 x; 3 4")
	require.Error(t, err)
}

func TestTransposeCommand(t *testing.T) {
	out, err := execute(t, "transpose", "1 2 3; 4 5 6")
	require.NoError(t, err)
	require.Equal(t, "1 4\n2 5\n3 6\n", out)

	out, err = execute(t, "transpose", "")
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestParseLiteral(t *testing.T) {
	m, err := parseLiteral("  1 2 ;3   4 ", parseInt)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, m.Shape())

	_, err = parseLiteral("1.5", parseInt)
	require.ErrorContains(t, err, "row 0")
}
