// Package terminal is the tcell frontend: it draws frames into a terminal and turns mouse presses into taps
package terminal

import "github.com/lixenwraith/tapgrid/constants"

// The logical pixel space maps one column to one x unit and one row to CellAspect y units,
// so dots laid out in it render round on cells about twice as tall as wide

// LogicalSize converts a terminal size to the logical space handed to the session
func LogicalSize(cols, rows int) (width, height int) {
	return cols, rows * constants.CellAspect
}

// CellToLogical returns the logical point at the center of a terminal cell
func CellToLogical(col, row int) (x, y int) {
	return col, row*constants.CellAspect + constants.CellAspect/2
}

// LogicalToCell returns the terminal cell containing a logical point
func LogicalToCell(x, y int) (col, row int) {
	return x, y / constants.CellAspect
}
