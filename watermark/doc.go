// Package watermark detects text spans that are page furniture rather
// than content: vendor URLs, contact emails, link-anchored stamps, and
// near-white overlay text.
//
// Each span is scored against four signals — URL-like text, email text,
// hyperlink-box overlap, and a near-white fill color. Strong signals
// weigh 3, the color hint weighs 1, and a span with no strong signal is
// never a candidate.
//
// The consumer-facing contract is a [Filter]: the set of candidate boxes
// queried by padded intersection. The clustering pipeline applies it once,
// before graph construction:
//
//	detector, _ := watermark.NewDetectorWithConfig(watermark.DefaultFilterConfig())
//	filter := detector.BuildFilter(page.Spans, page.Links)
//	spans := filter.Apply(page.Spans)
package watermark
