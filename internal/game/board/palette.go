package board

import (
	"fmt"
	"math/rand"
)

// Color is an RGB color with float components (0.0 to 1.0).
type Color struct {
	R, G, B float32
}

// Black is the color of a cleared cell.
var Black = Color{0, 0, 0}

// Palette is the fixed, ordered set of colors cells refer to by index.
type Palette []Color

// GeneratePalette returns count colors with every channel drawn uniformly from [0, 1].
// Colors are not deduplicated.
func GeneratePalette(rng *rand.Rand, count int) (Palette, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate palette of %d colors: %w", count, ErrInvalidPaletteSize)
	}

	p := make(Palette, count)
	for i := range p {
		p[i] = Color{
			R: rng.Float32(),
			G: rng.Float32(),
			B: rng.Float32(),
		}
	}
	return p, nil
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p)
}

// Valid reports whether idx addresses a color in the palette.
func (p Palette) Valid(idx int) bool {
	return idx >= 0 && idx < len(p)
}
