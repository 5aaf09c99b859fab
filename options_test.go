package textblock

import "testing"

func TestParseOptionsDefaults(t *testing.T) {
	options, err := ParseOptions([]byte(""))
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	defaults := DefaultOptions()
	if options.Cluster != defaults.Cluster {
		t.Errorf("cluster config = %+v, want defaults %+v", options.Cluster, defaults.Cluster)
	}
	if options.Watermark != defaults.Watermark {
		t.Errorf("watermark config = %+v, want defaults %+v", options.Watermark, defaults.Watermark)
	}
	if len(options.Underline.Labels) == 0 {
		t.Error("default label vocabulary missing")
	}
}

func TestParseOptionsPartialOverride(t *testing.T) {
	doc := `
cluster:
  distance_threshold: 80
watermark:
  near_white_threshold: 15000000
underline:
  labels: [director, manager, deputy]
  min_chars: 8
`
	options, err := ParseOptions([]byte(doc))
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}

	if options.Cluster.DistanceThreshold != 80 {
		t.Errorf("distance threshold = %v, want 80", options.Cluster.DistanceThreshold)
	}
	// Unnamed fields keep their defaults.
	if options.Cluster.ShortSpanLimit != 4 {
		t.Errorf("short span limit = %v, want default 4", options.Cluster.ShortSpanLimit)
	}
	if options.Watermark.NearWhiteThreshold != 15000000 {
		t.Errorf("near white threshold = %v, want 15000000", options.Watermark.NearWhiteThreshold)
	}
	if options.Watermark.Pad != 0.5 {
		t.Errorf("pad = %v, want default 0.5", options.Watermark.Pad)
	}
	if len(options.Underline.Labels) != 3 {
		t.Errorf("labels = %v, want 3 overrides", options.Underline.Labels)
	}
	if options.Underline.MinChars != 8 {
		t.Errorf("min chars = %v, want 8", options.Underline.MinChars)
	}
	if options.Underline.PixelsPerChar != 7 {
		t.Errorf("pixels per char = %v, want default 7", options.Underline.PixelsPerChar)
	}
}

func TestParseOptionsRejectsBadYAML(t *testing.T) {
	if _, err := ParseOptions([]byte("cluster: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
