package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/colorgrid/internal/config"
	"github.com/Faultbox/colorgrid/internal/game/board"
	"github.com/Faultbox/colorgrid/internal/logger"
)

// Uploader receives vertex data for the grid buffer.
type Uploader interface {
	UploadAll(data []float32) error
	UploadCell(index int, data []float32) error
}

// Session is the state one run of the game owns: the random source, the palette
// and the board. Nothing here touches OpenGL.
type Session struct {
	seed    int64
	rng     *rand.Rand
	palette board.Palette
	board   *board.Board
	log     *zap.Logger

	// Vertex upload bookkeeping
	fullUpload bool
	dirty      []int
	scratch    [board.VerticesPerCell]board.Vertex
	floats     []float32
}

// NewSession seeds the random source once and deals a new board.
// A zero seed is replaced with a clock-based one.
func NewSession(cfg config.BoardConfig) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	palette, err := board.GeneratePalette(rng, cfg.Colors)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	b, err := board.New(cfg.Rows, cfg.Cols, palette, rng)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	s := newSession(b, palette, rng)
	s.seed = seed
	s.log.Info("board dealt",
		zap.Int64("seed", seed),
		zap.Int("rows", b.Rows()),
		zap.Int("cols", b.Cols()),
		zap.Int("colors", palette.Len()),
	)
	return s, nil
}

// NewSessionWithBoard wraps an existing board and palette.
// rng is used by Reset; it may be nil if the session is never reset.
func NewSessionWithBoard(b *board.Board, palette board.Palette, rng *rand.Rand) (*Session, error) {
	if b.PaletteSize() != palette.Len() {
		return nil, fmt.Errorf("board uses %d colors, palette has %d", b.PaletteSize(), palette.Len())
	}
	return newSession(b, palette, rng), nil
}

func newSession(b *board.Board, palette board.Palette, rng *rand.Rand) *Session {
	return &Session{
		rng:        rng,
		palette:    palette,
		board:      b,
		log:        logger.Named("session"),
		fullUpload: true,
		floats:     make([]float32, 0, b.Len()*board.FloatsPerCell),
	}
}

// Board returns the session's board.
func (s *Session) Board() *board.Board { return s.board }

// Palette returns the session's palette.
func (s *Session) Palette() board.Palette { return s.palette }

// Seed returns the seed the random source started from, or 0 for an injected board.
func (s *Session) Seed() int64 { return s.seed }

// HandleClick maps a pixel position on a width x height window to a cell and
// applies the color match. Clicks outside every cell are ignored.
func (s *Session) HandleClick(px, py float64, width, height int) (board.Match, bool) {
	idx, ok := s.board.CellAt(px, py, width, height)
	if !ok {
		s.log.Debug("click outside board",
			zap.Float64("x", px),
			zap.Float64("y", py),
		)
		return board.Match{}, false
	}

	m, err := s.board.ApplyColorMatch(idx)
	if err != nil {
		// CellAt only returns valid indices.
		s.log.Error("color match failed", zap.Int("cell", idx), zap.Error(err))
		return board.Match{}, false
	}

	s.log.Info("cell clicked",
		zap.Int("cell", idx),
		zap.Int("colorIndex", m.ColorIndex),
		zap.Int("population", m.Population),
		zap.Int("cleared", len(m.Changed)),
		zap.Int("remaining", s.board.Remaining()),
	)
	s.dirty = append(s.dirty, m.Changed...)
	return m, true
}

// Reset re-deals the board with the session's random source.
func (s *Session) Reset() {
	if s.rng == nil {
		s.log.Warn("reset ignored: session has no random source")
		return
	}
	s.board.Reset(s.rng)
	s.fullUpload = true
	s.dirty = s.dirty[:0]
	s.log.Info("board reset")
}

// Flush sends pending vertex changes to up: the whole board on the first frame
// and after a reset, otherwise only the cells cleared since the last flush.
func (s *Session) Flush(up Uploader) error {
	if s.fullUpload {
		s.floats = board.Flatten(s.floats[:0], board.BuildVertices(s.board, s.palette))
		if err := up.UploadAll(s.floats); err != nil {
			return err
		}
		s.fullUpload = false
		s.dirty = s.dirty[:0]
		return nil
	}

	for _, idx := range s.dirty {
		board.CellVertices(s.board, s.palette, idx, s.scratch[:])
		s.floats = board.Flatten(s.floats[:0], s.scratch[:])
		if err := up.UploadCell(idx, s.floats); err != nil {
			return err
		}
	}
	s.dirty = s.dirty[:0]
	return nil
}
