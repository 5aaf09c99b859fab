package cluster

import "github.com/tsawler/textblock/model"

// mergeShortSpans walks reading-order-sorted spans and fuses runs of very
// short fragments into the preceding span. A span whose text is shorter
// than limit (in runes) is absorbed: its box is unioned into the current
// accumulation and its text appended. The separator is empty when both
// sides consist solely of underscores, or solely of dash characters, which
// preserves the visual continuity of rule lines; otherwise a single space.
// A span at or above the limit starts a new accumulation group.
func mergeShortSpans(spans []model.Span, limit int) []model.Span {
	if len(spans) == 0 {
		return nil
	}

	merged := []model.Span{spans[0]}
	for _, current := range spans[1:] {
		if runeLen(current.Text) >= limit {
			merged = append(merged, current)
			continue
		}

		prev := &merged[len(merged)-1]
		sep := " "
		if (onlyUnderscores(prev.Text) && onlyUnderscores(current.Text)) ||
			(onlyDashes(prev.Text) && onlyDashes(current.Text)) {
			sep = ""
		}
		prev.Text = prev.Text + sep + current.Text
		prev.BBox = prev.BBox.Union(current.BBox)
	}

	return merged
}

// onlyUnderscores reports whether text is a non-empty run of underscores
func onlyUnderscores(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r != '_' {
			return false
		}
	}
	return true
}

// onlyDashes reports whether text is a non-empty run of hyphens,
// en dashes, or em dashes
func onlyDashes(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r != '-' && r != '–' && r != '—' {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
