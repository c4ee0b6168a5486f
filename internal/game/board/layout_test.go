package board

import "testing"

func TestScreenToCell(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   int
	}{
		{"top-left pixel", 0, 0, 0},
		{"bottom-right pixel", 799, 599, 99},
		// (400, 300) is device (0, 0), the corner shared by cells 44, 45, 54 and 55.
		// Row-major scan with inclusive edges reaches 44 first.
		{"center pixel", 400, 300, 44},
		{"first row second column", 120, 10, 1},
		{"second row first column", 10, 70, 10},
		{"right edge", 800, 0, 9},
		{"bottom edge", 0, 600, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScreenToCell(tt.px, tt.py, 800, 600, 10, 10)
			if !ok {
				t.Fatalf("ScreenToCell(%v, %v) found no cell", tt.px, tt.py)
			}
			if got != tt.want {
				t.Errorf("ScreenToCell(%v, %v) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestScreenToCellOutside(t *testing.T) {
	tests := []struct {
		name          string
		px, py        float64
		width, height int
		rows, cols    int
	}{
		{"left of window", -5, 100, 800, 600, 10, 10},
		{"below window", 100, 601, 800, 600, 10, 10},
		{"zero width", 10, 10, 0, 600, 10, 10},
		{"zero rows", 10, 10, 800, 600, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if idx, ok := ScreenToCell(tt.px, tt.py, tt.width, tt.height, tt.rows, tt.cols); ok {
				t.Errorf("expected no cell, got %d", idx)
			}
		})
	}
}

func TestScreenToCellEveryCellCenter(t *testing.T) {
	const rows, cols, w, h = 7, 5, 640, 480

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			px := (float64(col) + 0.5) * w / cols
			py := (float64(row) + 0.5) * h / rows
			got, ok := ScreenToCell(px, py, w, h, rows, cols)
			if !ok || got != row*cols+col {
				t.Errorf("center of (%d,%d) mapped to %d (ok=%v), want %d", row, col, got, ok, row*cols+col)
			}
		}
	}
}

func TestCellRectCoversDevice(t *testing.T) {
	first := CellRect(0, 0, 10, 10)
	if first.Left != -1 || first.Top != 1 {
		t.Errorf("cell 0 top-left = (%v, %v), want (-1, 1)", first.Left, first.Top)
	}
	last := CellRect(9, 9, 10, 10)
	if last.Right != 1 || last.Bottom != -1 {
		t.Errorf("cell 99 bottom-right = (%v, %v), want (1, -1)", last.Right, last.Bottom)
	}

	// Neighbors share edges exactly.
	for col := 0; col < 9; col++ {
		a, b := CellRect(0, col, 10, 10), CellRect(0, col+1, 10, 10)
		if a.Right != b.Left {
			t.Errorf("gap between columns %d and %d: %v != %v", col, col+1, a.Right, b.Left)
		}
	}
}

func TestBoardCellAt(t *testing.T) {
	b, err := FromColorIndices(2, 2, 2, []int{0, 1, 0, 1})
	if err != nil {
		t.Fatalf("FromColorIndices: %v", err)
	}

	got, ok := b.CellAt(300, 100, 400, 400)
	if !ok || got != 1 {
		t.Errorf("CellAt = %d (ok=%v), want 1", got, ok)
	}
}
