// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU-based surface that renders into an in-memory image.
//
// It is backed either by an *image.RGBA (NewImageSurface) or by an
// *image.Paletted (NewPalettedSurface). Scaling goes through
// golang.org/x/image/draw; on paletted targets DrawImage honors
// DrawImageOptions.Dither with Floyd-Steinberg error diffusion.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(0, 0, 800, 600), color.RGBA{A: 128})
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    draw.Image

	// paletted is non-nil when img is an *image.Paletted.
	paletted *image.Paletted

	closed bool
}

// NewImageSurface creates a new RGBA surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = clampSize(width, height)
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface that renders directly into img.
// The image bounds must start at the origin.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

// NewPalettedSurface creates a surface backed by an *image.Paletted using
// the given palette. Paletted surfaces are what GIF encoders consume.
func NewPalettedSurface(width, height int, p color.Palette) *ImageSurface {
	width, height = clampSize(width, height)
	pm := image.NewPaletted(image.Rect(0, 0, width, height), p)
	return &ImageSurface{
		width:    width,
		height:   height,
		img:      pm,
		paletted: pm,
	}
}

func clampSize(width, height int) (int, int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over r, clipped to the surface.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed || c == nil {
		return
	}
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage scales the src part of img into dst.
//
// src is clipped to the image bounds and dst to the surface; if either
// ends up empty nothing is drawn. Clipping dst does not re-map src, so
// callers that need exact sub-pixel correspondence must pass rectangles
// that already lie inside both spaces.
func (s *ImageSurface) DrawImage(img image.Image, src, dst image.Rectangle, opts *DrawImageOptions) {
	if s.closed || img == nil {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}

	src = src.Intersect(img.Bounds())
	if src.Empty() || dst.Intersect(s.img.Bounds()).Empty() {
		return
	}

	scaler := scalerFor(opts.Filter)

	if s.paletted == nil || !opts.Dither {
		scaler.Scale(s.img, dst, img, src, draw.Over, nil)
		return
	}

	// Compose over the current content in full color first, then quantize
	// the tile into the palette with error diffusion. The tile covers only
	// the visible part of dst; the scaler still maps src onto all of dst.
	clip := dst.Intersect(s.img.Bounds())
	tile := image.NewRGBA(clip)
	draw.Draw(tile, clip, s.img, clip.Min, draw.Src)
	scaler.Scale(tile, dst, img, src, draw.Over, nil)
	draw.FloydSteinberg.Draw(s.paletted, clip, tile, clip.Min)
}

func scalerFor(f Filter) draw.Scaler {
	if f == FilterBilinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

// Snapshot returns a copy of the surface as an *image.RGBA.
// Returns nil after Close.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.paletted = nil
	return nil
}

// Image returns the underlying image. This is a direct reference, not a copy.
func (s *ImageSurface) Image() draw.Image {
	return s.img
}

// Paletted returns the underlying paletted image, or nil for RGBA surfaces.
func (s *ImageSurface) Paletted() *image.Paletted {
	return s.paletted
}
