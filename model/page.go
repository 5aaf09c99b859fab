package model

// Drawing represents a vector primitive on a page: either an explicit
// line segment between two points, or a rectangle.
type Drawing struct {
	Start Point
	End   Point
	Rect  BBox
	// IsRect is true when the primitive is a rectangle; Start/End are
	// meaningful only when it is false.
	IsRect bool
}

// NewLineDrawing creates a line-segment drawing
func NewLineDrawing(start, end Point) Drawing {
	return Drawing{Start: start, End: end}
}

// NewRectDrawing creates a rectangle drawing
func NewRectDrawing(rect BBox) Drawing {
	return Drawing{Rect: rect, IsRect: true}
}

// Link represents a hyperlink region on a page. URI is empty for internal
// (intra-document) links.
type Link struct {
	URI  string
	BBox BBox
}

// Page holds the externally produced feeds for a single page: text spans,
// vector drawing primitives, and hyperlink regions. The clustering core
// consumes a Page; it never reads files or renders content itself.
type Page struct {
	Spans    []Span
	Drawings []Drawing
	Links    []Link
}
