// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the rendering targets that fold shadings draw on.
//
// A fold shading never touches pixels itself. Once per frame it asks a
// Surface to paint a flat overlay over the panel bounds and, optionally, to
// blit a sub-rectangle of an image into a destination rectangle. Surface is
// the contract for those two operations; hosts with their own renderer
// implement it directly.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into an *image.RGBA or *image.Paletted,
//     scaling with golang.org/x/image/draw
//   - Recorder: captures operations as Op values and optionally forwards
//     them to another Surface
//
// # Usage
//
//	s := surface.NewImageSurface(320, 480)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(0, 0, 320, 240), color.RGBA{A: 96})
//	s.DrawImage(img, image.Rect(0, 0, 640, 200), image.Rect(0, 240, 320, 340),
//	    &surface.DrawImageOptions{Filter: surface.FilterBilinear, Dither: true})
//
//	png.Encode(w, s.Snapshot())
package surface
