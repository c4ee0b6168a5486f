// Package board implements the color grid: palette generation, the cell model with its
// color-match rule, screen to cell mapping and the vertex data used to draw the grid.
package board

import (
	"fmt"
	"math/rand"
)

// Default board settings.
const (
	DefaultRows        = 10
	DefaultCols        = 10
	DefaultPaletteSize = 25
)

// Cell is one grid position.
type Cell struct {
	ColorIndex int
	Cleared    bool
}

// Board owns rows*cols cells addressed by row*cols + col.
// Dimensions and palette size never change after construction. Between deals
// only the Cleared flags change: ApplyColorMatch never touches a color index.
// Reset counts as re-creating the board, so it is the one operation that
// draws new color indices (and restarts the population counter).
type Board struct {
	rows        int
	cols        int
	paletteSize int
	cells       []Cell

	// population holds how many cells were dealt each color index.
	// It is not updated when cells are cleared.
	population []int
}

// Match describes the outcome of a color match.
type Match struct {
	ColorIndex int   // Palette index of the clicked cell
	Population int   // Cells dealt that color when the board was created
	Changed    []int // Cells whose Cleared flag flipped on this call
}

// New creates a board and deals every cell an independent, uniformly drawn color index.
func New(rows, cols int, palette Palette, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new board %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if palette.Len() == 0 {
		return nil, fmt.Errorf("new board: %w", ErrInvalidPaletteSize)
	}

	b := &Board{
		rows:        rows,
		cols:        cols,
		paletteSize: palette.Len(),
		cells:       make([]Cell, rows*cols),
		population:  make([]int, palette.Len()),
	}
	b.deal(rng)
	return b, nil
}

// FromColorIndices creates a board with a fixed layout. indices is in row-major order.
func FromColorIndices(rows, cols, paletteSize int, indices []int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board from indices %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if paletteSize <= 0 {
		return nil, fmt.Errorf("board from indices: %w", ErrInvalidPaletteSize)
	}
	if len(indices) != rows*cols {
		return nil, fmt.Errorf("board from indices: got %d indices for %d cells", len(indices), rows*cols)
	}

	b := &Board{
		rows:        rows,
		cols:        cols,
		paletteSize: paletteSize,
		cells:       make([]Cell, rows*cols),
		population:  make([]int, paletteSize),
	}
	for i, idx := range indices {
		if idx < 0 || idx >= paletteSize {
			return nil, fmt.Errorf("cell %d color %d: %w", i, idx, ErrColorIndexOutOfRange)
		}
		b.cells[i] = Cell{ColorIndex: idx}
		b.population[idx]++
	}
	return b, nil
}

func (b *Board) deal(rng *rand.Rand) {
	clear(b.population)
	for i := range b.cells {
		idx := rng.Intn(b.paletteSize)
		b.cells[i] = Cell{ColorIndex: idx}
		b.population[idx]++
	}
}

// Reset re-deals every cell and clears all Cleared flags. Dimensions and palette size stay.
func (b *Board) Reset(rng *rand.Rand) {
	b.deal(rng)
}

// ApplyColorMatch clears every cell sharing the color index of the cell at index,
// regardless of where it is on the board.
func (b *Board) ApplyColorMatch(index int) (Match, error) {
	if index < 0 || index >= len(b.cells) {
		return Match{}, fmt.Errorf("color match at %d: %w", index, ErrCellOutOfRange)
	}

	target := b.cells[index].ColorIndex
	m := Match{
		ColorIndex: target,
		Population: b.population[target],
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.ColorIndex == target && !c.Cleared {
			c.Cleared = true
			m.Changed = append(m.Changed, i)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// PaletteSize returns the number of colors cells may reference.
func (b *Board) PaletteSize() int { return b.paletteSize }

// Cell returns a copy of the cell at index. Panics if index is out of range.
func (b *Board) Cell(index int) Cell {
	return b.cells[index]
}

// Population returns how many cells were dealt colorIndex.
func (b *Board) Population(colorIndex int) int {
	if colorIndex < 0 || colorIndex >= len(b.population) {
		return 0
	}
	return b.population[colorIndex]
}

// Remaining returns the number of cells not yet cleared.
func (b *Board) Remaining() int {
	n := 0
	for _, c := range b.cells {
		if !c.Cleared {
			n++
		}
	}
	return n
}
