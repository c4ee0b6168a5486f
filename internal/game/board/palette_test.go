package board

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGeneratePalette(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{1, 2, 25, 256} {
		p, err := GeneratePalette(rng, count)
		if err != nil {
			t.Fatalf("GeneratePalette(%d) error: %v", count, err)
		}
		if p.Len() != count {
			t.Errorf("GeneratePalette(%d) returned %d colors", count, p.Len())
		}
		for i, c := range p {
			for _, ch := range []float32{c.R, c.G, c.B} {
				if ch < 0 || ch > 1 {
					t.Errorf("color %d channel %f outside [0, 1]", i, ch)
				}
			}
		}
	}
}

func TestGeneratePaletteInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{0, -1} {
		_, err := GeneratePalette(rng, count)
		if !errors.Is(err, ErrInvalidPaletteSize) {
			t.Errorf("GeneratePalette(%d) error = %v, want ErrInvalidPaletteSize", count, err)
		}
	}
}

func TestGeneratePaletteSeeded(t *testing.T) {
	a, _ := GeneratePalette(rand.New(rand.NewSource(42)), 8)
	b, _ := GeneratePalette(rand.New(rand.NewSource(42)), 8)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("color %d differs with the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPaletteValid(t *testing.T) {
	p := Palette{{1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		idx  int
		want bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
	}
	for _, tt := range tests {
		if got := p.Valid(tt.idx); got != tt.want {
			t.Errorf("Valid(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}
