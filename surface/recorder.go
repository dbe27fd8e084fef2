// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear     OpKind = iota // Clear the whole surface
	OpFillRect                // Composite a flat color over a rectangle
	OpDrawImage               // Blit an image sub-rectangle
)

var opKindNames = [...]string{
	OpClear:     "Clear",
	OpFillRect:  "FillRect",
	OpDrawImage: "DrawImage",
}

// String returns the operation name.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one recorded drawing operation. Only the fields relevant to Kind
// are set.
type Op struct {
	Kind OpKind

	// Color is set for OpClear and OpFillRect.
	Color color.Color

	// Rect is the fill rectangle for OpFillRect and the destination for
	// OpDrawImage.
	Rect image.Rectangle

	// Image, Src and Options are set for OpDrawImage.
	Image   image.Image
	Src     image.Rectangle
	Options DrawImageOptions
}

// Recorder is a Surface that captures operations instead of rasterizing
// them. When created with a target, every operation is also forwarded to
// it, so a Recorder can wrap a real surface to trace a frame.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	target        Surface
	ops           []Op
	closed        bool
}

// NewRecorder creates a recorder of the given size with no target.
func NewRecorder(width, height int) *Recorder {
	width, height = clampSize(width, height)
	return &Recorder{width: width, height: height}
}

// NewRecorderFor creates a recorder that forwards to target.
func NewRecorderFor(target Surface) *Recorder {
	return &Recorder{
		width:  target.Width(),
		height: target.Height(),
		target: target,
	}
}

// Width returns the surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height.
func (r *Recorder) Height() int { return r.height }

// Clear records an OpClear.
func (r *Recorder) Clear(c color.Color) {
	if r.closed {
		return
	}
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
	if r.target != nil {
		r.target.Clear(c)
	}
}

// FillRect records an OpFillRect.
func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	if r.closed {
		return
	}
	r.ops = append(r.ops, Op{Kind: OpFillRect, Color: c, Rect: rect})
	if r.target != nil {
		r.target.FillRect(rect, c)
	}
}

// DrawImage records an OpDrawImage.
func (r *Recorder) DrawImage(img image.Image, src, dst image.Rectangle, opts *DrawImageOptions) {
	if r.closed {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}
	r.ops = append(r.ops, Op{
		Kind:    OpDrawImage,
		Rect:    dst,
		Image:   img,
		Src:     src,
		Options: *opts,
	})
	if r.target != nil {
		r.target.DrawImage(img, src, dst, opts)
	}
}

// Snapshot returns the target's snapshot, or a transparent image when the
// recorder has no target.
func (r *Recorder) Snapshot() *image.RGBA {
	if r.closed {
		return nil
	}
	if r.target != nil {
		return r.target.Snapshot()
	}
	return image.NewRGBA(image.Rect(0, 0, r.width, r.height))
}

// Close closes the recorder. The target, if any, is left open.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards recorded operations, typically between frames.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
