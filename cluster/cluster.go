package cluster

import (
	"errors"
	"sort"

	"github.com/tsawler/textblock/model"
)

// ErrEmptyPage is returned when clustering is invoked with no text spans.
// An empty page is a terminal condition for that page, not retried here.
var ErrEmptyPage = errors.New("cluster: no text spans on page")

// Config holds configuration for span clustering
type Config struct {
	// DistanceThreshold is the maximum Euclidean distance (in points)
	// between span centers for the spans to join the same block
	DistanceThreshold float64 `yaml:"distance_threshold"`

	// VerticalTolerance is the maximum difference (in points) between
	// vertical midpoints for spans to count as the same line
	VerticalTolerance float64 `yaml:"vertical_tolerance"`

	// OverlapTolerance is the maximum horizontal gap or overlap (in points)
	// between span edges for same-line adjacency
	OverlapTolerance float64 `yaml:"overlap_tolerance"`

	// ShortSpanLimit is the minimum text length (in runes) for a span to
	// avoid being fused into its reading-order neighbor
	ShortSpanLimit int `yaml:"short_span_limit"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		DistanceThreshold: 65.0,
		VerticalTolerance: 5.0,
		OverlapTolerance:  3.0,
		ShortSpanLimit:    4,
	}
}

// Clusterer groups text spans into blocks by spatial proximity.
// It builds a span-adjacency graph, extracts its connected components,
// merges short fragments within each component, and assembles one Block
// per component.
type Clusterer struct {
	config Config
}

// NewClusterer creates a clusterer with default configuration
func NewClusterer() *Clusterer {
	return &Clusterer{config: DefaultConfig()}
}

// NewClustererWithConfig creates a clusterer with custom configuration.
// Out-of-range thresholds are not validated; a negative distance threshold
// simply yields no center-distance edges.
func NewClustererWithConfig(config Config) *Clusterer {
	return &Clusterer{config: config}
}

// Cluster groups the given spans into blocks. Every span appears in exactly
// one block, directly or fused into a neighboring span's text. The returned
// blocks are in component-discovery order; callers wanting positional order
// sort by (Top, Left) afterwards.
//
// Returns ErrEmptyPage when spans is empty.
func (c *Clusterer) Cluster(spans []model.Span) ([]model.Block, error) {
	if len(spans) == 0 {
		return nil, ErrEmptyPage
	}

	adjacency := buildAdjacency(spans, c.config)
	components := connectedComponents(adjacency)

	blocks := make([]model.Block, 0, len(components))
	for _, component := range components {
		blocks = append(blocks, c.assembleBlock(spans, component))
	}

	return blocks, nil
}

// assembleBlock builds one Block from the spans of a connected component:
// sorts them into reading order, fuses short fragments, and computes the
// envelope box, merged text, and representative style.
func (c *Clusterer) assembleBlock(spans []model.Span, component []int) model.Block {
	items := make([]model.Span, 0, len(component))
	for _, idx := range component {
		items = append(items, spans[idx])
	}
	sortReadingOrder(items)
	items = mergeShortSpans(items, c.config.ShortSpanLimit)

	var envelope model.BBox
	text := ""
	for _, span := range items {
		envelope = envelope.Union(span.BBox)
		text = JoinText(text, span.Text)
	}

	// Font name and italic come from the first span in reading order; the
	// smallest size tends to be body text, and bold wins if any span is bold.
	style := model.FontStyle{
		Name:   items[0].Style.Name,
		Size:   items[0].Style.Size,
		Italic: items[0].Style.Italic,
	}
	for _, span := range items {
		if span.Style.Size < style.Size {
			style.Size = span.Style.Size
		}
		if span.Style.Bold {
			style.Bold = true
		}
	}

	return model.Block{
		BBox:  envelope,
		Text:  text,
		Style: style,
		Spans: items,
	}
}

// sortReadingOrder sorts spans ascending by (top, left), keeping input
// order on ties.
func sortReadingOrder(spans []model.Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].BBox.Top != spans[j].BBox.Top {
			return spans[i].BBox.Top < spans[j].BBox.Top
		}
		return spans[i].BBox.Left < spans[j].BBox.Left
	})
}

// SortBlocks sorts blocks ascending by (top, left), keeping input order on
// ties. This is the final output order of the pipeline.
func SortBlocks(blocks []model.Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].BBox.Top != blocks[j].BBox.Top {
			return blocks[i].BBox.Top < blocks[j].BBox.Top
		}
		return blocks[i].BBox.Left < blocks[j].BBox.Left
	})
}
