// Package model defines the data types shared across the textblock
// pipeline: geometry primitives (Point, BBox), the Span input unit, the
// Block output unit, and the Page record that carries the externally
// produced span, drawing, and link feeds.
//
// All types are plain values. BBox uses top-origin page coordinates
// (Top <= Bottom), the orientation delivered by text extraction engines.
package model
