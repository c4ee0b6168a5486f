package board

// Vertex buffer layout. Every cell occupies a fixed-size slot so a single cell
// can be rewritten in place.
const (
	VerticesPerCell = 6
	FloatsPerVertex = 5 // x, y, r, g, b
	FloatsPerCell   = VerticesPerCell * FloatsPerVertex
)

// Vertex is a device-space position with an RGB color.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// CellColor returns the color a cell is drawn with.
func CellColor(c Cell, p Palette) Color {
	if c.Cleared {
		return Black
	}
	return p[c.ColorIndex]
}

// CellVertices writes the two triangles covering cell i into dst, which must
// hold at least VerticesPerCell vertices. Order and winding are fixed:
// (x,y) (x+w,y) (x+w,y-h) then (x,y) (x+w,y-h) (x,y-h).
func CellVertices(b *Board, p Palette, i int, dst []Vertex) {
	r := CellRect(i/b.cols, i%b.cols, b.rows, b.cols)
	c := CellColor(b.cells[i], p)

	corners := [VerticesPerCell][2]float32{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
	}
	for k, pos := range corners {
		dst[k] = Vertex{X: pos[0], Y: pos[1], R: c.R, G: c.G, B: c.B}
	}
}

// BuildVertices returns the vertex stream for the whole board in row-major cell order.
func BuildVertices(b *Board, p Palette) []Vertex {
	out := make([]Vertex, b.Len()*VerticesPerCell)
	for i := range b.cells {
		CellVertices(b, p, i, out[i*VerticesPerCell:])
	}
	return out
}

// Flatten appends vs to dst as interleaved floats ready for upload.
func Flatten(dst []float32, vs []Vertex) []float32 {
	for _, v := range vs {
		dst = append(dst, v.X, v.Y, v.R, v.G, v.B)
	}
	return dst
}
