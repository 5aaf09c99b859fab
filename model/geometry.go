package model

import "math"

// Point represents a 2D point in page coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in top-origin page coordinates.
// Top is the smallest Y of the box and Bottom the largest, matching the
// orientation used by text extraction engines.
type BBox struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// NewBBox creates a bounding box from edge coordinates
func NewBBox(top, left, bottom, right float64) BBox {
	return BBox{Top: top, Left: left, Bottom: bottom, Right: right}
}

// BBoxFromValues builds a bounding box from a raw (x0, y0, x1, y1) value
// sequence as produced by extraction engines. A sequence with fewer than
// four values degrades to the zero box so one malformed record cannot
// abort processing of a whole page.
func BBoxFromValues(values []float64) BBox {
	if len(values) < 4 {
		return BBox{}
	}
	return BBox{
		Left:   values[0],
		Top:    values[1],
		Right:  values[2],
		Bottom: values[3],
	}
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.Left + b.Right) / 2,
		Y: (b.Top + b.Bottom) / 2,
	}
}

// MidY returns the vertical midpoint
func (b BBox) MidY() float64 {
	return (b.Top + b.Bottom) / 2
}

// IsZero returns true if all edges are zero (the degenerate/absent box)
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Union returns the smallest box containing both boxes.
// Union with the zero box is the identity.
func (b BBox) Union(other BBox) BBox {
	if other.IsZero() {
		return b
	}
	if b.IsZero() {
		return other
	}
	return BBox{
		Top:    math.Min(b.Top, other.Top),
		Left:   math.Min(b.Left, other.Left),
		Bottom: math.Max(b.Bottom, other.Bottom),
		Right:  math.Max(b.Right, other.Right),
	}
}

// UnionAll returns the union of all given boxes
func UnionAll(boxes []BBox) BBox {
	var result BBox
	for _, box := range boxes {
		result = result.Union(box)
	}
	return result
}

// Intersects checks if two bounding boxes overlap with positive area
func (b BBox) Intersects(other BBox) bool {
	return b.IntersectsPad(other, 0)
}

// IntersectsPad checks for positive-area overlap after expanding the
// receiver by pad on all sides
func (b BBox) IntersectsPad(other BBox, pad float64) bool {
	left := b.Left - pad
	top := b.Top - pad
	right := b.Right + pad
	bottom := b.Bottom + pad
	return math.Min(right, other.Right)-math.Max(left, other.Left) > 0 &&
		math.Min(bottom, other.Bottom)-math.Max(top, other.Top) > 0
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		Top:    b.Top - margin,
		Left:   b.Left - margin,
		Bottom: b.Bottom + margin,
		Right:  b.Right + margin,
	}
}
