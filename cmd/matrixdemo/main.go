// Command matrixdemo walks through the matrix package: construction, copy and
// assignment, equality, addition, determinant and transpose. It also exposes
// small det/transpose subcommands that operate on a matrix literal.
//
// Usage:
//
//	matrixdemo [--float]
//	matrixdemo det [--float] "6 1 1; 4 -2 5; 2 8 7"
//	matrixdemo transpose "1 2 3; 4 5 6"
package main

import "os"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("error:", err)
		os.Exit(1)
	}
}
