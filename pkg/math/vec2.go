// Package math provides small 2D math types for device-space geometry.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// ScreenToDevice converts a pixel position (origin top-left, Y down) on a
// width x height surface to normalized device coordinates (origin center, Y up).
func ScreenToDevice(px, py float32, width, height float32) Vec2 {
	return Vec2{
		X: (px/width)*2 - 1,
		Y: -((py/height)*2 - 1),
	}
}
