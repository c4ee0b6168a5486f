package board

import "errors"

var (
	// ErrInvalidPaletteSize is returned when a palette would hold no colors.
	ErrInvalidPaletteSize = errors.New("palette size must be positive")

	// ErrInvalidDimensions is returned for a board with a non-positive row or column count.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")

	// ErrCellOutOfRange is returned when a cell index falls outside the board.
	ErrCellOutOfRange = errors.New("cell index out of range")

	// ErrColorIndexOutOfRange is returned when a cell references a color the palette does not have.
	ErrColorIndexOutOfRange = errors.New("color index out of range")
)
