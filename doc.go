// Package numberwall computes number walls: the tables of Toeplitz
// determinants of a sequence, evaluated with exact arithmetic and a
// dependency-driven scheduler so that zero windows never stall the build.
//
// What is a number wall?
//
//	Row 0 is all zeros, row 1 all ones, row 2 the sequence itself. Every
//	later entry follows the cross rule
//
//		W(r, c) = (W(r-1, c)² - W(r-1, c-1)·W(r-1, c+1)) / W(r-2, c)
//
//	and equals the (r-1)×(r-1) Toeplitz determinant of the sequence at c.
//	Zeros group into square windows; cells around a window are computed
//	with the long cross and horseshoe rules instead. A sequence satisfies
//	a linear recurrence of order k exactly when row k+2 is entirely zero.
//
// Layout:
//
//	number/:    Value contract, Absent sentinel, exact Fraction
//	grid/:      Cell, Direction and the sparse Table
//	dag/:       generic dependency scheduler with cycle detection
//	wall/:      frames, zero windows, rules and the NumberWall builder
//	algebra/:   Polynomial, Rational (a Value), Gaussian elimination, Padé
//	transform/: difference tables, Newton interpolation, Akiyama–Tanigawa
//	cmd/numberwall: command line front end
//	examples/:  runnable scenarios
//
// Quick start:
//
//	w, err := wall.New(number.Ints(1, 1, 2, 3, 5, 8, 13))
//	if err != nil { … }
//	if err := w.Build(); err != nil { … }
//	fmt.Println(w.Table())
package numberwall
