// Package textblock groups raw text spans extracted from a document page
// into semantic text blocks, suppressing spans that are watermarks or page
// furniture and reconstructing signature underlines drawn as vector rules.
//
// Basic usage:
//
//	blocks, warnings, err := textblock.From(page).Blocks()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textblock.FormatWarnings(warnings))
//	}
//
// With options:
//
//	blocks, _, err := textblock.From(page).
//	    KeepWatermarks().
//	    WithClusterConfig(cluster.Config{DistanceThreshold: 80}).
//	    Blocks()
//
// The package performs no file I/O and no rendering: the Page record
// carries externally produced span, drawing, and hyperlink feeds, and the
// result is an ordered Block sequence. For advanced use the lower-level
// cluster, watermark, and underline packages are also available.
package textblock

import (
	"fmt"
	"strings"

	"github.com/tsawler/textblock/cluster"
)

// ErrEmptyPage is returned by Blocks when the page has no text spans.
var ErrEmptyPage = cluster.ErrEmptyPage

// Warning represents a non-fatal issue encountered while processing a
// page. Warnings never stop the pipeline; they explain output oddities.
type Warning struct {
	// Code identifies the warning class ("empty-span", "all-watermarks")
	Code string

	// Message is a human-readable description
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated string
// for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

func warningf(code, format string, args ...interface{}) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustBlocks wraps a call to Blocks() and panics if the error is non-nil,
// discarding warnings. It is intended for scripts and tests.
//
// Example:
//
//	blocks := textblock.MustBlocks(textblock.From(page).Blocks())
func MustBlocks[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
