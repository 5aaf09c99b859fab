package textblock

import (
	"github.com/tsawler/textblock/cluster"
	"github.com/tsawler/textblock/model"
	"github.com/tsawler/textblock/underline"
	"github.com/tsawler/textblock/watermark"
)

// Pipeline provides a fluent interface for clustering one page's spans
// into blocks. Each configuration method returns a new Pipeline instance,
// making chains safe to share and reuse.
type Pipeline struct {
	page    model.Page
	options Options

	// Accumulated error (fail-fast)
	err error
}

// From creates a Pipeline over the given page with default options.
//
// Example:
//
//	blocks, warnings, err := textblock.From(page).Blocks()
func From(page model.Page) *Pipeline {
	return &Pipeline{page: page, options: DefaultOptions()}
}

// FromOptions creates a Pipeline over the given page with the given
// options (for example, parsed from a YAML document via ParseOptions).
func FromOptions(page model.Page, options Options) *Pipeline {
	options.applyDefaults()
	return &Pipeline{page: page, options: options}
}

// clone creates a copy of the Pipeline so chain methods never mutate the
// receiver.
func (p *Pipeline) clone() *Pipeline {
	cloned := *p
	return &cloned
}

// WithClusterConfig sets the clustering configuration
func (p *Pipeline) WithClusterConfig(config cluster.Config) *Pipeline {
	cloned := p.clone()
	cloned.options.Cluster = config
	cloned.options.applyDefaults()
	return cloned
}

// WithWatermarkConfig sets the watermark filter configuration
func (p *Pipeline) WithWatermarkConfig(config watermark.Config) *Pipeline {
	cloned := p.clone()
	cloned.options.Watermark = config
	cloned.options.applyDefaults()
	return cloned
}

// WithUnderlineConfig sets the underline synthesis configuration
func (p *Pipeline) WithUnderlineConfig(config underline.Config) *Pipeline {
	cloned := p.clone()
	cloned.options.Underline = config
	cloned.options.applyDefaults()
	return cloned
}

// KeepWatermarks disables the watermark exclusion filter
func (p *Pipeline) KeepWatermarks() *Pipeline {
	cloned := p.clone()
	cloned.options.KeepWatermarks = true
	return cloned
}

// SkipUnderlines disables signature-line synthesis
func (p *Pipeline) SkipUnderlines() *Pipeline {
	cloned := p.clone()
	cloned.options.SkipUnderlines = true
	return cloned
}

// Blocks runs the pipeline and returns the page's blocks sorted by
// (top, left), warnings for non-fatal issues, and an error if processing
// failed. Returns ErrEmptyPage when no spans survive the input stage.
func (p *Pipeline) Blocks() ([]model.Block, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	var warnings []Warning

	spans, w := usableSpans(p.page.Spans)
	warnings = append(warnings, w...)

	if !p.options.KeepWatermarks && len(spans) > 0 {
		detector, err := watermark.NewDetectorWithConfig(p.options.Watermark)
		if err != nil {
			return nil, warnings, err
		}
		filter := detector.BuildFilter(spans, p.page.Links)
		filtered := filter.Apply(spans)
		if len(filtered) == 0 && !filter.Empty() {
			warnings = append(warnings, warningf("all-watermarks",
				"all %d spans excluded as watermarks", len(spans)))
		}
		spans = filtered
	}

	clusterer := cluster.NewClustererWithConfig(p.options.Cluster)
	blocks, err := clusterer.Cluster(spans)
	if err != nil {
		return nil, warnings, err
	}

	if !p.options.SkipUnderlines {
		injector, err := underline.NewInjectorWithConfig(p.options.Underline)
		if err != nil {
			return nil, warnings, err
		}
		blocks = injector.Inject(blocks, p.page.Drawings)
	}

	cluster.SortBlocks(blocks)
	return blocks, warnings, nil
}

// Candidates runs the standalone watermark detector over the page's spans
// with color hints enabled, returning the scored candidates without
// filtering anything. Useful for diagnosing why spans were (or were not)
// suppressed.
func (p *Pipeline) Candidates() ([]watermark.Candidate, error) {
	if p.err != nil {
		return nil, p.err
	}

	config := p.options.Watermark
	config.UseColorHint = true
	detector, err := watermark.NewDetectorWithConfig(config)
	if err != nil {
		return nil, err
	}

	spans, _ := usableSpans(p.page.Spans)
	return detector.FindCandidates(spans, p.page.Links), nil
}

// usableSpans drops spans whose text is empty after trimming, reporting
// each as a warning. The span feed contract promises non-empty text, so an
// empty span indicates an upstream extraction oddity worth surfacing.
func usableSpans(spans []model.Span) ([]model.Span, []Warning) {
	var warnings []Warning
	kept := make([]model.Span, 0, len(spans))
	for i, span := range spans {
		normalized := model.NewSpan(span.Text, span.BBox, span.Style)
		normalized.Color = span.Color
		if normalized.Text == "" {
			warnings = append(warnings, warningf("empty-span",
				"span %d has no text after trimming", i))
			continue
		}
		kept = append(kept, normalized)
	}
	return kept, warnings
}
