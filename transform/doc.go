// Package transform holds sequence transforms that sit beside the number
// wall: the finite difference table with its Newton interpolating
// polynomial, and the Akiyama–Tanigawa transform with its inverse.
package transform
