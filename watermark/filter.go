package watermark

import "github.com/tsawler/textblock/model"

// Filter is the consumer-facing result of watermark detection: a set of
// excluded box regions queried by a pure intersection test. A zero Filter
// excludes nothing.
type Filter struct {
	boxes []model.BBox
	pad   float64
}

// Excludes reports whether the span overlaps any candidate region once the
// regions are padded by the configured amount.
func (f Filter) Excludes(span model.Span) bool {
	for _, box := range f.boxes {
		if box.IntersectsPad(span.BBox, f.pad) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter has no excluded regions
func (f Filter) Empty() bool {
	return len(f.boxes) == 0
}

// Apply returns the spans that survive the filter, preserving order
func (f Filter) Apply(spans []model.Span) []model.Span {
	if f.Empty() {
		return spans
	}
	kept := make([]model.Span, 0, len(spans))
	for _, span := range spans {
		if !f.Excludes(span) {
			kept = append(kept, span)
		}
	}
	return kept
}
