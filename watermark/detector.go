package watermark

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/tsawler/textblock/model"
)

// Signal tags recorded on candidates to explain why a span looks like a
// watermark.
const (
	SignalURLText   = "URL_TEXT"
	SignalEmailText = "EMAIL_TEXT"
	SignalLinkHit   = "LINK_HIT"
	SignalNearWhite = "NEAR_WHITE"
)

// Default signal patterns. They are configuration data, not fixed
// behavior: Config can replace them for other locales or corpora.
const (
	// DefaultDomainPattern matches URL-like domain text such as
	// "example.com" or "https://example.com/page".
	DefaultDomainPattern = `(?i)\b(?:https?://)?(?:[a-z0-9-]+\.)+[a-z]{2,}\b`

	// DefaultEmailPattern matches email addresses.
	DefaultEmailPattern = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`
)

// DefaultNearWhiteThreshold is the encoded RGB value at or above which a
// span's fill color counts as near white (light gray and up).
const DefaultNearWhiteThreshold = 0xF0F0F0

// DefaultPad is the padding (in points) applied around candidate boxes
// when testing spans against the exclusion filter.
const DefaultPad = 0.5

// strongSignalWeight is the score weight of url/email/link signals versus
// the near-white hint.
const strongSignalWeight = 3

// Config holds configuration for watermark detection
type Config struct {
	// DomainPattern is the regular expression for URL-like text
	DomainPattern string `yaml:"domain_pattern"`

	// EmailPattern is the regular expression for email addresses
	EmailPattern string `yaml:"email_pattern"`

	// NearWhiteThreshold is the encoded RGB value treated as near white
	NearWhiteThreshold int `yaml:"near_white_threshold"`

	// Pad is the padding around candidate boxes when filtering spans
	Pad float64 `yaml:"pad"`

	// UseColorHint enables the near-white color signal
	UseColorHint bool `yaml:"use_color_hint"`

	// AllLinks considers every hyperlink rectangle for the link-hit
	// signal; when false only links carrying an external URI count
	AllLinks bool `yaml:"all_links"`
}

// DefaultConfig returns the configuration of the standalone detector:
// color hints enabled, external links only.
func DefaultConfig() Config {
	return Config{
		DomainPattern:      DefaultDomainPattern,
		EmailPattern:       DefaultEmailPattern,
		NearWhiteThreshold: DefaultNearWhiteThreshold,
		Pad:                DefaultPad,
		UseColorHint:       true,
	}
}

// DefaultFilterConfig returns the configuration used when building the
// exclusion filter ahead of clustering. It differs from DefaultConfig only
// in disabling the color hint: excluding spans on color alone upstream of
// clustering drops too much legitimate light-colored text.
func DefaultFilterConfig() Config {
	config := DefaultConfig()
	config.UseColorHint = false
	return config
}

// Candidate is a span flagged by heuristic signals as likely page
// furniture rather than content. Candidates are ephemeral: they exist to
// build the exclusion filter and to explain detection results.
type Candidate struct {
	BBox    model.BBox
	Text    string
	Signals []string
	Score   int
}

// Detector scores spans against watermark signals
type Detector struct {
	config   Config
	domainRE *regexp.Regexp
	emailRE  *regexp.Regexp
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	d, err := NewDetectorWithConfig(DefaultConfig())
	if err != nil {
		// Default patterns are compile-checked by tests.
		panic(err)
	}
	return d
}

// NewDetectorWithConfig creates a detector with custom configuration.
// Returns an error if a signal pattern does not compile.
func NewDetectorWithConfig(config Config) (*Detector, error) {
	if config.DomainPattern == "" {
		config.DomainPattern = DefaultDomainPattern
	}
	if config.EmailPattern == "" {
		config.EmailPattern = DefaultEmailPattern
	}
	if config.NearWhiteThreshold == 0 {
		config.NearWhiteThreshold = DefaultNearWhiteThreshold
	}
	if config.Pad == 0 {
		config.Pad = DefaultPad
	}

	domainRE, err := regexp.Compile(config.DomainPattern)
	if err != nil {
		return nil, fmt.Errorf("watermark: compile domain pattern: %w", err)
	}
	emailRE, err := regexp.Compile(config.EmailPattern)
	if err != nil {
		return nil, fmt.Errorf("watermark: compile email pattern: %w", err)
	}

	return &Detector{config: config, domainRE: domainRE, emailRE: emailRE}, nil
}

// FindCandidates scores every span on the page against the watermark
// signals and returns the candidates sorted by descending score, then
// top-to-bottom, then left-to-right.
//
// A span becomes a candidate only with at least one strong signal (url,
// email, or link hit); the near-white hint alone never qualifies, it only
// raises the score. Score = 3 x strong signals + 1 x near-white.
func (d *Detector) FindCandidates(spans []model.Span, links []model.Link) []Candidate {
	linkRects := d.linkRects(links)

	var candidates []Candidate
	for _, span := range spans {
		if span.Text == "" {
			continue
		}

		hasURL := d.domainRE.MatchString(span.Text)
		hasEmail := d.emailRE.MatchString(span.Text)
		linkHit := false
		for _, rect := range linkRects {
			if span.BBox.Intersects(rect) {
				linkHit = true
				break
			}
		}
		nearWhite := d.config.UseColorHint && span.Color >= d.config.NearWhiteThreshold

		var signals []string
		if hasURL {
			signals = append(signals, SignalURLText)
		}
		if hasEmail {
			signals = append(signals, SignalEmailText)
		}
		if linkHit {
			signals = append(signals, SignalLinkHit)
		}
		if nearWhite {
			signals = append(signals, SignalNearWhite)
		}

		strong := boolToInt(hasURL) + boolToInt(hasEmail) + boolToInt(linkHit)
		if strong == 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			BBox:    span.BBox,
			Text:    span.Text,
			Signals: signals,
			Score:   strong*strongSignalWeight + boolToInt(nearWhite),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].BBox.Top != candidates[j].BBox.Top {
			return candidates[i].BBox.Top < candidates[j].BBox.Top
		}
		return candidates[i].BBox.Left < candidates[j].BBox.Left
	})

	return candidates
}

// BuildFilter detects watermark candidates and returns the exclusion
// filter over their boxes. The filter is applied once, before graph
// construction, to keep watermark spans out of clustering input entirely.
func (d *Detector) BuildFilter(spans []model.Span, links []model.Link) Filter {
	candidates := d.FindCandidates(spans, links)
	boxes := make([]model.BBox, 0, len(candidates))
	for _, candidate := range candidates {
		boxes = append(boxes, candidate.BBox)
	}
	return Filter{boxes: boxes, pad: d.config.Pad}
}

func (d *Detector) linkRects(links []model.Link) []model.BBox {
	var rects []model.BBox
	for _, link := range links {
		if !d.config.AllLinks && link.URI == "" {
			continue
		}
		rects = append(rects, link.BBox)
	}
	return rects
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
