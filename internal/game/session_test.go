package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Faultbox/colorgrid/internal/config"
	"github.com/Faultbox/colorgrid/internal/game/board"
)

type upload struct {
	cell   int // -1 for a full upload
	floats []float32
}

type fakeUploader struct {
	uploads []upload
	err     error
}

func (f *fakeUploader) UploadAll(data []float32) error {
	f.uploads = append(f.uploads, upload{cell: -1, floats: append([]float32(nil), data...)})
	return f.err
}

func (f *fakeUploader) UploadCell(index int, data []float32) error {
	f.uploads = append(f.uploads, upload{cell: index, floats: append([]float32(nil), data...)})
	return f.err
}

func newTwoByTwo(t *testing.T) *Session {
	t.Helper()

	p := board.Palette{{0.9, 0.1, 0.1}, {0.1, 0.8, 0.3}}
	b, err := board.FromColorIndices(2, 2, p.Len(), []int{0, 1, 0, 1})
	if err != nil {
		t.Fatalf("FromColorIndices: %v", err)
	}
	s, err := NewSessionWithBoard(b, p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSessionWithBoard: %v", err)
	}
	return s
}

func TestNewSessionSeeded(t *testing.T) {
	cfg := config.BoardConfig{Rows: 10, Cols: 10, Colors: 25, Seed: 42}

	a, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
	for i := 0; i < a.Board().Len(); i++ {
		if a.Board().Cell(i) != b.Board().Cell(i) {
			t.Fatalf("cell %d differs between sessions with the same seed", i)
		}
	}
	for i := range a.Palette() {
		if a.Palette()[i] != b.Palette()[i] {
			t.Fatalf("palette color %d differs between sessions with the same seed", i)
		}
	}
}

func TestNewSessionClockSeed(t *testing.T) {
	s, err := NewSession(config.BoardConfig{Rows: 2, Cols: 2, Colors: 2})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Seed() == 0 {
		t.Error("zero seed should be replaced by a clock-based seed")
	}
}

func TestNewSessionInvalid(t *testing.T) {
	if _, err := NewSession(config.BoardConfig{Rows: 2, Cols: 2, Colors: 0}); !errors.Is(err, board.ErrInvalidPaletteSize) {
		t.Errorf("expected ErrInvalidPaletteSize, got %v", err)
	}
	if _, err := NewSession(config.BoardConfig{Rows: 0, Cols: 2, Colors: 2}); !errors.Is(err, board.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewSessionWithBoardMismatch(t *testing.T) {
	b, _ := board.FromColorIndices(1, 1, 3, []int{2})
	if _, err := NewSessionWithBoard(b, board.Palette{{1, 1, 1}}, nil); err == nil {
		t.Error("expected palette size mismatch error")
	}
}

func TestHandleClickEndToEnd(t *testing.T) {
	s := newTwoByTwo(t)

	m, ok := s.HandleClick(10, 10, 400, 400)
	if !ok {
		t.Fatal("click inside the board was ignored")
	}
	if m.ColorIndex != 0 || len(m.Changed) != 2 {
		t.Errorf("match = %+v, want color 0 clearing 2 cells", m)
	}

	want := []bool{true, false, true, false}
	for i, cleared := range want {
		if s.Board().Cell(i).Cleared != cleared {
			t.Errorf("cell %d cleared = %v, want %v", i, s.Board().Cell(i).Cleared, cleared)
		}
	}
}

func TestHandleClickOutside(t *testing.T) {
	s := newTwoByTwo(t)

	if _, ok := s.HandleClick(-1, 10, 400, 400); ok {
		t.Error("click left of the window should be ignored")
	}
	if s.Board().Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4", s.Board().Remaining())
	}
}

func TestFlushFullThenPartial(t *testing.T) {
	s := newTwoByTwo(t)
	up := &fakeUploader{}

	if err := s.Flush(up); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(up.uploads) != 1 || up.uploads[0].cell != -1 {
		t.Fatalf("first flush should upload everything, got %+v", up.uploads)
	}
	if n := len(up.uploads[0].floats); n != 4*board.FloatsPerCell {
		t.Errorf("full upload has %d floats, want %d", n, 4*board.FloatsPerCell)
	}

	// Nothing changed: nothing to upload.
	up.uploads = nil
	if err := s.Flush(up); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(up.uploads) != 0 {
		t.Errorf("idle flush uploaded %d times", len(up.uploads))
	}

	// Clicking cell 1 clears cells 1 and 3.
	s.HandleClick(300, 100, 400, 400)
	if err := s.Flush(up); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(up.uploads) != 2 || up.uploads[0].cell != 1 || up.uploads[1].cell != 3 {
		t.Fatalf("expected uploads of cells 1 and 3, got %+v", up.uploads)
	}
	for _, u := range up.uploads {
		if len(u.floats) != board.FloatsPerCell {
			t.Errorf("cell %d upload has %d floats", u.cell, len(u.floats))
		}
		for v := 0; v < board.VerticesPerCell; v++ {
			rgb := u.floats[v*board.FloatsPerVertex+2 : v*board.FloatsPerVertex+5]
			if rgb[0] != 0 || rgb[1] != 0 || rgb[2] != 0 {
				t.Errorf("cell %d vertex %d color %v, want black", u.cell, v, rgb)
			}
		}
	}
}

func TestResetForcesFullUpload(t *testing.T) {
	s := newTwoByTwo(t)
	up := &fakeUploader{}
	s.Flush(up)

	s.HandleClick(10, 10, 400, 400)
	s.Reset()
	up.uploads = nil
	if err := s.Flush(up); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(up.uploads) != 1 || up.uploads[0].cell != -1 {
		t.Errorf("flush after reset should be a single full upload, got %d uploads", len(up.uploads))
	}
	if s.Board().Remaining() != 4 {
		t.Errorf("Remaining() after reset = %d, want 4", s.Board().Remaining())
	}
}

func TestFlushError(t *testing.T) {
	s := newTwoByTwo(t)
	want := errors.New("buffer lost")

	if err := s.Flush(&fakeUploader{err: want}); !errors.Is(err, want) {
		t.Errorf("Flush error = %v, want %v", err, want)
	}
}
