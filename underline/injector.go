package underline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/textblock/model"
)

// DefaultLabels is the default vocabulary of role words that introduce a
// signature field. The list is locale data, not behavior: replace it via
// Config.Labels for other locales.
var DefaultLabels = []string{
	"руководитель",
	"директор",
	"проректор",
	"заведующий",
	"начальник",
}

// Config holds configuration for underline synthesis
type Config struct {
	// YTolerance is the maximum vertical extent (in points) for a drawing
	// to count as a horizontal line
	YTolerance float64 `yaml:"y_tolerance"`

	// MinLength is the minimum horizontal extent (in points) for a drawing
	// to count as a signature line
	MinLength float64 `yaml:"min_length"`

	// MinSegments is the minimum underscore run (or count of
	// whitespace-separated underscore groups) for text to already
	// represent an underline
	MinSegments int `yaml:"min_segments"`

	// SameLineYTolerance is the maximum distance between vertical
	// midpoints for a block to count as sharing the label's line, and the
	// tolerance for vertical overlap between label box and drawn line
	SameLineYTolerance float64 `yaml:"same_line_y_tolerance"`

	// RightMinGap is the minimum distance the line's right edge must
	// extend past the label's right edge
	RightMinGap float64 `yaml:"right_min_gap"`

	// PixelsPerChar is the rough width of one underscore, used to size the
	// synthesized run
	PixelsPerChar float64 `yaml:"pixels_per_char"`

	// MinChars is the minimum length of a synthesized underscore run
	MinChars int `yaml:"min_chars"`

	// YPad is the vertical padding applied to the synthesized span's box
	YPad float64 `yaml:"y_pad"`

	// FontName and FontSize define the placeholder style of synthesized
	// spans
	FontName string  `yaml:"font_name"`
	FontSize float64 `yaml:"font_size"`

	// Labels is the locale-specific vocabulary of signature-field words
	Labels []string `yaml:"labels"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		YTolerance:         4.0,
		MinLength:          30.0,
		MinSegments:        4,
		SameLineYTolerance: 16.0,
		RightMinGap:        5.0,
		PixelsPerChar:      7.0,
		MinChars:           5,
		YPad:               1.0,
		FontName:           "Times New Roman",
		FontSize:           14.0,
		Labels:             DefaultLabels,
	}
}

// Injector synthesizes placeholder underline blocks for signature fields
// drawn as vector lines instead of underscore characters.
type Injector struct {
	config  Config
	labelRE *regexp.Regexp
}

// NewInjector creates an injector with default configuration
func NewInjector() *Injector {
	inj, err := NewInjectorWithConfig(DefaultConfig())
	if err != nil {
		// The default vocabulary always compiles.
		panic(err)
	}
	return inj
}

// NewInjectorWithConfig creates an injector with custom configuration.
// Returns an error when the label vocabulary is empty.
func NewInjectorWithConfig(config Config) (*Injector, error) {
	if len(config.Labels) == 0 {
		return nil, fmt.Errorf("underline: empty label vocabulary")
	}

	quoted := make([]string, len(config.Labels))
	for i, label := range config.Labels {
		quoted[i] = regexp.QuoteMeta(label)
	}
	labelRE, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("underline: compile label pattern: %w", err)
	}

	return &Injector{config: config, labelRE: labelRE}, nil
}

// Inject scans blocks for signature labels and appends one synthetic
// underscore block per label whose drawn line has no captured underscore
// text. The input slice is not modified; the result shares its backing
// blocks. Unmatched labels are silent no-ops. Callers re-sort the result
// into positional order.
func (inj *Injector) Inject(blocks []model.Block, drawings []model.Drawing) []model.Block {
	lines := collectHorizontalLines(drawings, inj.config.YTolerance, inj.config.MinLength)
	if len(lines) == 0 {
		return blocks
	}

	result := blocks
	for _, label := range blocks {
		if !inj.labelRE.MatchString(label.Text) {
			continue
		}
		if inj.lineAlreadyCaptured(blocks, label.BBox.MidY()) {
			continue
		}

		line, ok := inj.findLineForLabel(lines, label.BBox)
		if !ok {
			continue
		}
		result = append(result, inj.synthesize(line))
	}

	return result
}

// lineAlreadyCaptured reports whether some block on the same horizontal
// band already contains enough underscore text to represent the field.
func (inj *Injector) lineAlreadyCaptured(blocks []model.Block, midY float64) bool {
	for _, block := range blocks {
		if absFloat(block.BBox.MidY()-midY) > inj.config.SameLineYTolerance {
			continue
		}
		if hasUnderscoreRun(block.Text, inj.config.MinSegments) {
			return true
		}
	}
	return false
}

// findLineForLabel returns the first drawn line, in scan order, that
// vertically overlaps the label's box within tolerance and extends far
// enough past its right edge.
func (inj *Injector) findLineForLabel(lines []hline, label model.BBox) (hline, bool) {
	tol := inj.config.SameLineYTolerance
	for _, line := range lines {
		overlapsVertically := !(line.Y1 < label.Top-tol || line.Y0 > label.Bottom+tol)
		if overlapsVertically && line.X1 > label.Right+inj.config.RightMinGap {
			return line, true
		}
	}
	return hline{}, false
}

// synthesize builds the one-span placeholder block for a drawn line
func (inj *Injector) synthesize(line hline) model.Block {
	count := int((line.X1 - line.X0) / inj.config.PixelsPerChar)
	if count < inj.config.MinChars {
		count = inj.config.MinChars
	}

	span := model.Span{
		Text: strings.Repeat("_", count),
		BBox: model.BBox{
			Top:    line.Y0 - inj.config.YPad,
			Left:   line.X0,
			Bottom: line.Y1 + inj.config.YPad,
			Right:  line.X1,
		},
		Style: model.FontStyle{
			Name: inj.config.FontName,
			Size: inj.config.FontSize,
		},
	}

	return model.Block{
		BBox:  span.BBox,
		Text:  span.Text,
		Style: span.Style,
		Spans: []model.Span{span},
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
