package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FontStyle describes the font attributes of a span
type FontStyle struct {
	Name   string
	Size   float64
	Bold   bool
	Italic bool
}

// Span represents one contiguous run of text with uniform font style
// and a single bounding box, as extracted from a page.
type Span struct {
	Text  string
	BBox  BBox
	Style FontStyle

	// Color is the encoded RGB fill color of the span's text as reported
	// by the extraction engine (0xRRGGBB). Used only by watermark detection.
	Color int
}

// NewSpan creates a span with trimmed, NFC-normalized text. The span feed
// may deliver decomposed Unicode; normalizing here means every character
// heuristic downstream sees composed runes. A span whose text trims to
// empty has Text == "" and should be skipped by the caller.
func NewSpan(text string, bbox BBox, style FontStyle) Span {
	return Span{
		Text:  norm.NFC.String(strings.TrimSpace(text)),
		BBox:  bbox,
		Style: style,
	}
}

// Block is the clustering output unit: a merged group of spans forming one
// semantic text region. A block owns its spans exclusively; spans are never
// shared across blocks.
type Block struct {
	// BBox is the envelope of all constituent spans
	BBox BBox

	// Text is the merged text of the block in reading order
	Text string

	// Style is the representative font style of the block
	Style FontStyle

	// Spans are the constituent spans in reading order
	Spans []Span
}
