package underline

import "strings"

// hasUnderscoreRun reports whether text already contains a drawn-out
// underline: either a run of at least minSegments consecutive underscores,
// or at least minSegments consecutive whitespace-separated underscore
// groups.
func hasUnderscoreRun(text string, minSegments int) bool {
	run := 0
	for _, r := range text {
		if r == '_' {
			run++
			if run >= minSegments {
				return true
			}
		} else {
			run = 0
		}
	}

	groups := 0
	for _, field := range strings.Fields(text) {
		if isUnderscoreField(field) {
			groups++
			if groups >= minSegments {
				return true
			}
		} else {
			groups = 0
		}
	}

	return false
}

func isUnderscoreField(field string) bool {
	for _, r := range field {
		if r != '_' {
			return false
		}
	}
	return field != ""
}
