// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target a shading draws on.
//
// Surfaces are NOT thread-safe. A surface belongs to the goroutine that
// runs the draw pass.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color, replacing
	// existing content.
	Clear(c color.Color)

	// FillRect composites c over the pixels of r. Parts of r outside the
	// surface are ignored.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImage scales the src sub-rectangle of img into dst and composites
	// it over existing content. If opts is nil, DefaultDrawImageOptions is used.
	DrawImage(img image.Image, src, dst image.Rectangle, opts *DrawImageOptions)

	// Snapshot returns a copy of the current contents as an RGBA image.
	Snapshot() *image.RGBA

	// Close releases the surface. After Close all drawing calls are
	// ignored. Close is idempotent.
	Close() error
}

// Filter specifies the interpolation mode for image scaling.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest Filter = iota

	// FilterBilinear uses bilinear interpolation.
	FilterBilinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// DrawImageOptions controls how DrawImage samples and quantizes.
type DrawImageOptions struct {
	// Filter is the interpolation mode used when src and dst differ in size.
	Filter Filter

	// Dither enables error diffusion when the target has a limited palette.
	Dither bool

	// AntiAlias smooths the edges of the destination rectangle. Axis-aligned
	// integer rectangles have no partial coverage, so ImageSurface ignores it.
	AntiAlias bool
}

// DefaultDrawImageOptions returns DrawImageOptions with default values.
func DefaultDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{
		Filter: FilterNearest,
	}
}
