package renderer

import "testing"

func TestCellOffset(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 120},
		{99, 99 * 6 * 5 * 4},
	}

	for _, tt := range tests {
		if got := CellOffset(tt.index, 6, 5); got != tt.want {
			t.Errorf("CellOffset(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	tests := []Config{
		{Cells: 0, VerticesPerCell: 6, FloatsPerVertex: 5},
		{Cells: 4, VerticesPerCell: 0, FloatsPerVertex: 5},
		{Cells: 4, VerticesPerCell: 6, FloatsPerVertex: 3},
	}

	for _, cfg := range tests {
		if _, err := New(cfg); err == nil {
			t.Errorf("New(%+v) should fail before touching OpenGL", cfg)
		}
	}
}
