// Package underline reconstructs blank signature fields that pages render
// as vector-drawn rules rather than underscore characters.
//
// Extraction engines capture "Director ____________" as text when the
// underline is typed, but a drawn rule produces no span at all, so the
// blank field silently disappears from output. The [Injector] scans blocks
// for signature-label vocabulary, finds the drawn horizontal line to the
// right of each label, and appends a placeholder block whose text is an
// underscore run sized to the line's length. Labels with no matching line,
// and lines already represented by captured underscore text, are silent
// no-ops.
package underline
