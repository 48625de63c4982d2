// Package grid provides the addressing and storage layer of the number wall:
// integer cells with directional stepping, and a growable sparse table of
// number.Value entries.
//
// What:
//
//   - Cell: an immutable (Row, Col) coordinate, comparable, usable as a map key.
//   - Direction: Right, Up, Down, Left, each with a fixed Outer direction
//     used by zero-window frames.
//   - Table: rows × cols grid of values where unfilled slots hold
//     number.Absent. Reads outside the grid return Absent; writes outside it
//     return ErrOutOfRange.
//
// Key operations:
//
//   - NewTable / AddRow with a Filler that may read already placed cells
//   - AllInRow: row-wide predicate that tolerates Absent entries
//   - TruncateZeroRows: drop trailing "all zero" rows
//   - String / WriteTSV: printable grid and tab separated export
//
// Complexity:
//
//   - At/Set: O(1)
//   - AddRow, AllInRow: O(cols)
//   - TruncateZeroRows: O(rows × cols)
package grid
