package board

import (
	"github.com/Faultbox/colorgrid/pkg/math"
)

// CellRect returns the device-space rectangle of the cell at (row, col) on a
// rows x cols grid covering [-1, 1] on both axes. Cell (0, 0) has its top-left
// corner at (-1, 1). Edges are computed from the grid line index, so neighbors
// share identical edge values and the outer edges land exactly on -1 and 1.
func CellRect(row, col, rows, cols int) math.Rect {
	return math.Rect{
		Left:   gridLine(col, cols),
		Right:  gridLine(col+1, cols),
		Top:    -gridLine(row, rows),
		Bottom: -gridLine(row+1, rows),
	}
}

// gridLine returns the position of line i of n divisions along [-1, 1].
func gridLine(i, n int) float32 {
	return float32(i)/float32(n)*2 - 1
}

// ScreenToCell maps a pixel position on a width x height surface to the index of
// the cell under it. Rectangles are scanned in row-major order with inclusive
// edges, so a point on a shared edge belongs to the cell scanned first.
// The second result is false when no cell contains the point.
func ScreenToCell(px, py float64, width, height, rows, cols int) (int, bool) {
	if width <= 0 || height <= 0 || rows <= 0 || cols <= 0 {
		return -1, false
	}

	p := math.ScreenToDevice(float32(px), float32(py), float32(width), float32(height))
	for row := range rows {
		for col := range cols {
			if CellRect(row, col, rows, cols).Contains(p) {
				return row*cols + col, true
			}
		}
	}
	return -1, false
}

// CellAt is ScreenToCell for this board's dimensions.
func (b *Board) CellAt(px, py float64, width, height int) (int, bool) {
	return ScreenToCell(px, py, width, height, b.rows, b.cols)
}
