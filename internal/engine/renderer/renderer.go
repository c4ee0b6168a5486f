// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/colorgrid/internal/engine/shader"
	"github.com/Faultbox/colorgrid/internal/logger"
)

const floatSize = 4

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// Buffer layout. Every cell owns VerticesPerCell consecutive vertices of
	// FloatsPerVertex floats: position (2) followed by color (3).
	Cells           int
	VerticesPerCell int
	FloatsPerVertex int

	ClearColor [3]float32
}

// Renderer draws the grid from a single vertex buffer with fixed-size cell slots.
type Renderer struct {
	config Config
	log    *zap.Logger

	shaderProgram uint32
	vao           uint32
	vbo           uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Cells <= 0 || cfg.VerticesPerCell <= 0 || cfg.FloatsPerVertex < 5 {
		return nil, fmt.Errorf("invalid buffer layout: %d cells, %d vertices, %d floats",
			cfg.Cells, cfg.VerticesPerCell, cfg.FloatsPerVertex)
	}

	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.shaderProgram, err = shader.CompileProgram(shader.GridVertexShader, shader.GridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	return r, nil
}

// createBuffers allocates the VAO and a VBO large enough for every cell.
func (r *Renderer) createBuffers() {
	stride := int32(r.config.FloatsPerVertex * floatSize)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.bufferSize(), nil, gl.DYNAMIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("grid buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Int("bytes", r.bufferSize()),
	)
}

// Close releases GL objects in reverse order of creation.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UploadAll replaces the whole buffer. data must hold every cell.
func (r *Renderer) UploadAll(data []float32) error {
	if len(data) != r.config.Cells*r.cellFloats() {
		return fmt.Errorf("upload all: got %d floats, want %d", len(data), r.config.Cells*r.cellFloats())
	}
	r.subData(0, data)
	return nil
}

// UploadCell rewrites the slot of one cell.
func (r *Renderer) UploadCell(index int, data []float32) error {
	if index < 0 || index >= r.config.Cells {
		return fmt.Errorf("upload cell %d: out of range [0, %d)", index, r.config.Cells)
	}
	if len(data) != r.cellFloats() {
		return fmt.Errorf("upload cell %d: got %d floats, want %d", index, len(data), r.cellFloats())
	}
	r.subData(CellOffset(index, r.config.VerticesPerCell, r.config.FloatsPerVertex), data)
	return nil
}

func (r *Renderer) subData(offset int, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data)*floatSize, unsafe.Pointer(&data[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// DrawCells draws every cell slot.
func (r *Renderer) DrawCells() {
	gl.UseProgram(r.shaderProgram)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(r.config.Cells*r.config.VerticesPerCell))
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, w, h
	}
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) cellFloats() int {
	return r.config.VerticesPerCell * r.config.FloatsPerVertex
}

func (r *Renderer) bufferSize() int {
	return r.config.Cells * r.cellFloats() * floatSize
}

// CellOffset returns the byte offset of cell index in the vertex buffer.
func CellOffset(index, verticesPerCell, floatsPerVertex int) int {
	return index * verticesPerCell * floatsPerVertex * floatSize
}
