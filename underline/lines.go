package underline

import "github.com/tsawler/textblock/model"

// hline is a drawn horizontal line normalized so X0 <= X1. Y0 and Y1 are
// kept separately: a line may slope slightly within tolerance.
type hline struct {
	X0, Y0, X1, Y1 float64
}

// collectHorizontalLines extracts line-like primitives from the drawing
// feed: rectangles and explicit segments whose vertical extent is within
// yTolerance and whose horizontal extent is at least minLength.
func collectHorizontalLines(drawings []model.Drawing, yTolerance, minLength float64) []hline {
	var lines []hline
	for _, d := range drawings {
		if d.IsRect {
			r := d.Rect
			if absFloat(r.Bottom-r.Top) <= yTolerance && r.Right-r.Left >= minLength {
				lines = append(lines, hline{X0: r.Left, Y0: r.Top, X1: r.Right, Y1: r.Bottom})
			}
			continue
		}

		if absFloat(d.Start.Y-d.End.Y) <= yTolerance && absFloat(d.End.X-d.Start.X) >= minLength {
			x0, x1 := d.Start.X, d.End.X
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			lines = append(lines, hline{X0: x0, Y0: d.Start.Y, X1: x1, Y1: d.End.Y})
		}
	}
	return lines
}
