package textblock

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/textblock/cluster"
	"github.com/tsawler/textblock/underline"
	"github.com/tsawler/textblock/watermark"
)

// Options holds the full tunable surface of the pipeline. The zero value
// of any field falls back to the corresponding default, so a partial
// options document only overrides what it names.
type Options struct {
	// Cluster configures span adjacency and short-fragment merging
	Cluster cluster.Config `yaml:"cluster"`

	// Watermark configures the exclusion filter applied before clustering
	Watermark watermark.Config `yaml:"watermark"`

	// Underline configures signature-line synthesis
	Underline underline.Config `yaml:"underline"`

	// KeepWatermarks disables the watermark filter entirely
	KeepWatermarks bool `yaml:"keep_watermarks"`

	// SkipUnderlines disables signature-line synthesis
	SkipUnderlines bool `yaml:"skip_underlines"`
}

// DefaultOptions returns the default pipeline options
func DefaultOptions() Options {
	return Options{
		Cluster:   cluster.DefaultConfig(),
		Watermark: watermark.DefaultFilterConfig(),
		Underline: underline.DefaultConfig(),
	}
}

// ParseOptions decodes a YAML options document, applying defaults for
// every omitted field. This makes thresholds, signal patterns, and locale
// vocabularies deployable as data rather than code.
//
// Example document:
//
//	cluster:
//	  distance_threshold: 80
//	underline:
//	  labels: [director, manager, deputy]
func ParseOptions(data []byte) (Options, error) {
	options := DefaultOptions()
	if err := yaml.Unmarshal(data, &options); err != nil {
		return Options{}, fmt.Errorf("textblock: parse options: %w", err)
	}
	options.applyDefaults()
	return options, nil
}

// applyDefaults fills zero-valued fields with defaults, so explicitly
// constructed Options behave like parsed ones.
func (o *Options) applyDefaults() {
	defaults := DefaultOptions()

	if o.Cluster.DistanceThreshold == 0 {
		o.Cluster.DistanceThreshold = defaults.Cluster.DistanceThreshold
	}
	if o.Cluster.VerticalTolerance == 0 {
		o.Cluster.VerticalTolerance = defaults.Cluster.VerticalTolerance
	}
	if o.Cluster.OverlapTolerance == 0 {
		o.Cluster.OverlapTolerance = defaults.Cluster.OverlapTolerance
	}
	if o.Cluster.ShortSpanLimit == 0 {
		o.Cluster.ShortSpanLimit = defaults.Cluster.ShortSpanLimit
	}

	if o.Watermark.DomainPattern == "" {
		o.Watermark.DomainPattern = defaults.Watermark.DomainPattern
	}
	if o.Watermark.EmailPattern == "" {
		o.Watermark.EmailPattern = defaults.Watermark.EmailPattern
	}
	if o.Watermark.NearWhiteThreshold == 0 {
		o.Watermark.NearWhiteThreshold = defaults.Watermark.NearWhiteThreshold
	}
	if o.Watermark.Pad == 0 {
		o.Watermark.Pad = defaults.Watermark.Pad
	}

	if o.Underline.YTolerance == 0 {
		o.Underline.YTolerance = defaults.Underline.YTolerance
	}
	if o.Underline.MinLength == 0 {
		o.Underline.MinLength = defaults.Underline.MinLength
	}
	if o.Underline.MinSegments == 0 {
		o.Underline.MinSegments = defaults.Underline.MinSegments
	}
	if o.Underline.SameLineYTolerance == 0 {
		o.Underline.SameLineYTolerance = defaults.Underline.SameLineYTolerance
	}
	if o.Underline.RightMinGap == 0 {
		o.Underline.RightMinGap = defaults.Underline.RightMinGap
	}
	if o.Underline.PixelsPerChar == 0 {
		o.Underline.PixelsPerChar = defaults.Underline.PixelsPerChar
	}
	if o.Underline.MinChars == 0 {
		o.Underline.MinChars = defaults.Underline.MinChars
	}
	if o.Underline.YPad == 0 {
		o.Underline.YPad = defaults.Underline.YPad
	}
	if o.Underline.FontName == "" {
		o.Underline.FontName = defaults.Underline.FontName
	}
	if o.Underline.FontSize == 0 {
		o.Underline.FontSize = defaults.Underline.FontSize
	}
	if len(o.Underline.Labels) == 0 {
		o.Underline.Labels = defaults.Underline.Labels
	}
}
