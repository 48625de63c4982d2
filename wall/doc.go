// Package wall builds number walls of a sequence.
//
// What:
//
//	The number wall of S[0..n) is the table W whose row r, column c holds
//	the (r-1)×(r-1) Toeplitz determinant det[S[c+i-j]]. Rows 0 and 1 are
//	constant 0 and 1, row 2 is the sequence itself and every further row
//	follows from the cross rule
//
//	    W(r,c) = (W(r-1,c)² − W(r-1,c-1)·W(r-1,c+1)) / W(r-2,c)
//
//	The wall is a trapezoid: row r > 2 is defined on columns
//	r-2 … n-r+1.
//
// Why:
//
//	A sequence satisfies a linear recurrence of order k exactly when row
//	k+2 of its wall vanishes. The last non-zero row is constant up to sign,
//	and walls built over rational functions expose the characteristic
//	polynomial of the recurrence.
//
// Zero windows:
//
//	Zeros in a wall come in squares. A run of g ≥ 2 zeros opens a g×g
//	ZeroWindow; the cross rule cannot see past it, so the row below the
//	window is filled by the horseshoe rules from the geometric ratios
//	(factors) along the window's four frames. A single zero needs only
//	the long cross rule two rows below it.
//
// Evaluation:
//
//	Each cell gets exactly one Rule, whose dependencies are registered in a
//	dag.Scheduler[grid.Cell]. Build adds rules row by row and drains the
//	scheduler after each row. Cells that cannot be computed stay
//	number.Absent.
package wall
