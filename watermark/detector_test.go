package watermark

import (
	"testing"

	"github.com/tsawler/textblock/model"
)

func span(text string, top, left, bottom, right float64) model.Span {
	return model.NewSpan(text, model.NewBBox(top, left, bottom, right), model.FontStyle{Name: "Helvetica", Size: 9})
}

func TestFindCandidatesSignals(t *testing.T) {
	link := model.Link{URI: "https://vendor.example", BBox: model.NewBBox(0, 0, 20, 100)}

	tests := []struct {
		name        string
		span        model.Span
		links       []model.Link
		config      Config
		wantScore   int
		wantSignals []string
	}{
		{
			name:        "url text",
			span:        span("visit example.com today", 500, 0, 510, 100),
			config:      DefaultFilterConfig(),
			wantScore:   3,
			wantSignals: []string{SignalURLText},
		},
		{
			name:        "email text",
			span:        span("mail sales@vendor.example", 500, 0, 510, 100),
			config:      DefaultFilterConfig(),
			wantScore:   6, // domain pattern also matches the email host
			wantSignals: []string{SignalURLText, SignalEmailText},
		},
		{
			name:        "link hit",
			span:        span("Trial Version", 5, 10, 15, 80),
			links:       []model.Link{link},
			config:      DefaultFilterConfig(),
			wantScore:   3,
			wantSignals: []string{SignalLinkHit},
		},
		{
			name: "near white raises score when hint enabled",
			span: func() model.Span {
				s := span("watermark.example", 500, 0, 510, 100)
				s.Color = 0xFAFAFA
				return s
			}(),
			config:      DefaultConfig(),
			wantScore:   4,
			wantSignals: []string{SignalURLText, SignalNearWhite},
		},
		{
			name: "near white ignored when hint disabled",
			span: func() model.Span {
				s := span("watermark.example", 500, 0, 510, 100)
				s.Color = 0xFAFAFA
				return s
			}(),
			config:      DefaultFilterConfig(),
			wantScore:   3,
			wantSignals: []string{SignalURLText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector, err := NewDetectorWithConfig(tt.config)
			if err != nil {
				t.Fatalf("NewDetectorWithConfig() error = %v", err)
			}

			candidates := detector.FindCandidates([]model.Span{tt.span}, tt.links)
			if len(candidates) != 1 {
				t.Fatalf("got %d candidates, want 1", len(candidates))
			}
			c := candidates[0]
			if c.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", c.Score, tt.wantScore)
			}
			if len(c.Signals) != len(tt.wantSignals) {
				t.Fatalf("signals = %v, want %v", c.Signals, tt.wantSignals)
			}
			for i := range tt.wantSignals {
				if c.Signals[i] != tt.wantSignals[i] {
					t.Errorf("signals = %v, want %v", c.Signals, tt.wantSignals)
					break
				}
			}
		})
	}
}

func TestFindCandidatesNoStrongSignal(t *testing.T) {
	// Near-white alone never qualifies, even with the hint enabled.
	s := span("ordinary light text", 100, 0, 110, 80)
	s.Color = 0xFFFFFF

	detector := NewDetector()
	if candidates := detector.FindCandidates([]model.Span{s}, nil); len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}

func TestFindCandidatesPlainTextNotCandidate(t *testing.T) {
	detector := NewDetector()
	spans := []model.Span{
		span("Chapter 1. Introduction", 100, 50, 112, 200),
		span("Plain body text without any signal", 120, 50, 132, 300),
	}
	if candidates := detector.FindCandidates(spans, nil); len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}

func TestFindCandidatesOrdering(t *testing.T) {
	lowScore := span("see example.com", 50, 10, 60, 90)
	highScore := span("sales@vendor.example at vendor.example", 300, 10, 310, 200)
	sameScoreLower := span("also example.org", 200, 10, 210, 90)

	detector := NewDetector()
	candidates := detector.FindCandidates([]model.Span{sameScoreLower, highScore, lowScore}, nil)

	if len(candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(candidates))
	}
	if candidates[0].Text != highScore.Text {
		t.Errorf("first candidate = %q, want highest score first", candidates[0].Text)
	}
	if candidates[1].Text != lowScore.Text {
		t.Errorf("second candidate = %q, want top-most of equal scores", candidates[1].Text)
	}
	if candidates[2].Text != sameScoreLower.Text {
		t.Errorf("third candidate = %q", candidates[2].Text)
	}
}

func TestExternalLinksOnly(t *testing.T) {
	internal := model.Link{BBox: model.NewBBox(0, 0, 20, 100)}
	s := span("Go to appendix", 5, 10, 15, 80)

	detector := NewDetector()
	if candidates := detector.FindCandidates([]model.Span{s}, []model.Link{internal}); len(candidates) != 0 {
		t.Error("internal link counted as hit with external-only config")
	}

	config := DefaultConfig()
	config.AllLinks = true
	allLinks, err := NewDetectorWithConfig(config)
	if err != nil {
		t.Fatalf("NewDetectorWithConfig() error = %v", err)
	}
	if candidates := allLinks.FindCandidates([]model.Span{s}, []model.Link{internal}); len(candidates) != 1 {
		t.Error("internal link ignored with AllLinks config")
	}
}

func TestBuildFilter(t *testing.T) {
	watermarkSpan := span("visit example.com", 400, 100, 410, 200)
	touching := span("caught by padding", 400, 200.3, 410, 280) // within 0.5 pad
	clear := span("normal paragraph text", 100, 50, 112, 250)

	detector, err := NewDetectorWithConfig(DefaultFilterConfig())
	if err != nil {
		t.Fatalf("NewDetectorWithConfig() error = %v", err)
	}
	filter := detector.BuildFilter([]model.Span{watermarkSpan, touching, clear}, nil)

	if filter.Empty() {
		t.Fatal("filter is empty, want one region")
	}
	if !filter.Excludes(watermarkSpan) {
		t.Error("watermark span not excluded")
	}
	if !filter.Excludes(touching) {
		t.Error("span within pad of candidate not excluded")
	}
	if filter.Excludes(clear) {
		t.Error("clear span excluded")
	}

	kept := filter.Apply([]model.Span{watermarkSpan, touching, clear})
	if len(kept) != 1 || kept[0].Text != clear.Text {
		t.Errorf("Apply() kept %d spans, want only the clear span", len(kept))
	}
}

func TestEmptyFilterExcludesNothing(t *testing.T) {
	var filter Filter
	if filter.Excludes(span("anything", 0, 0, 10, 10)) {
		t.Error("zero filter excluded a span")
	}
	if !filter.Empty() {
		t.Error("zero filter not empty")
	}
}

func TestBadPatternRejected(t *testing.T) {
	config := DefaultConfig()
	config.DomainPattern = "("
	if _, err := NewDetectorWithConfig(config); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
